// Package scene describes which primitives are drawn and how each one is
// placed and animated.
package scene

import (
	"fmt"
	gomath "math"
	"time"

	"github.com/Faultbox/phong-primitives/internal/engine/mesh"
	"github.com/Faultbox/phong-primitives/pkg/math"
	"github.com/Faultbox/phong-primitives/pkg/transform"
)

// Pulse animates one scale component as Offset + Amplitude*sin(Rate*t).
type Pulse struct {
	Axis      int     // 0=X, 1=Y, 2=Z
	Rate      float32 // radians per second
	Offset    float32
	Amplitude float32
}

// At returns the animated scale component at elapsed time t.
func (p Pulse) At(t time.Duration) float32 {
	return p.Offset + p.Amplitude*float32(gomath.Sin(float64(p.Rate)*t.Seconds()))
}

// Object is one drawn instance of a primitive.
type Object struct {
	Name      string
	Primitive string
	Transform transform.Params
	Pulse     *Pulse
}

// TransformAt returns the object's transform at elapsed time t.
func (o Object) TransformAt(t time.Duration) transform.Params {
	p := o.Transform
	if o.Pulse != nil {
		p.Scale = p.Scale.WithComponent(o.Pulse.Axis, o.Pulse.At(t))
	}
	return p
}

// Scene is an ordered list of objects.
type Scene struct {
	Objects []Object
}

// Default returns the two cubes, the floor plane and the pulsing sphere.
func Default() *Scene {
	one := math.Vec3{X: 1, Y: 1, Z: 1}
	return &Scene{Objects: []Object{
		{
			Name:      "cube",
			Primitive: mesh.NameCube,
			Transform: transform.Params{
				Scale:    one,
				Rotation: math.Vec3{X: gomath.Pi / 2.5},
			},
		},
		{
			Name:      "cube_flipped",
			Primitive: mesh.NameCube,
			Transform: transform.Params{
				Scale:       one,
				Rotation:    math.Vec3{X: gomath.Pi / 2.5, Y: gomath.Pi, Z: gomath.Pi},
				Translation: math.Vec3{Z: 0.5},
			},
		},
		{
			Name:      "floor",
			Primitive: mesh.NamePlane,
			Transform: transform.Params{Scale: math.Vec3{X: 2, Y: 2, Z: 2}},
		},
		{
			Name:      "sphere",
			Primitive: mesh.NameSphere,
			Transform: transform.Params{
				Scale:       one,
				Translation: math.Vec3{X: 1, Y: 1},
			},
			Pulse: &Pulse{Axis: 0, Rate: 1.5, Offset: 0.6, Amplitude: 0.4},
		},
	}}
}

// Validate checks that every object names a known primitive and axis.
func (s *Scene) Validate() error {
	if len(s.Objects) == 0 {
		return fmt.Errorf("scene has no objects")
	}
	for i, o := range s.Objects {
		if _, err := mesh.ByName(o.Primitive); err != nil {
			return fmt.Errorf("object %d (%s): %w", i, o.Name, err)
		}
		if o.Pulse != nil && (o.Pulse.Axis < 0 || o.Pulse.Axis > 2) {
			return fmt.Errorf("object %d (%s): pulse axis %d out of range", i, o.Name, o.Pulse.Axis)
		}
	}
	return nil
}

// Meshes builds each distinct primitive once, keyed by primitive name.
func (s *Scene) Meshes() (map[string]*mesh.Mesh, error) {
	meshes := make(map[string]*mesh.Mesh)
	for _, o := range s.Objects {
		if _, ok := meshes[o.Primitive]; ok {
			continue
		}
		m, err := mesh.ByName(o.Primitive)
		if err != nil {
			return nil, fmt.Errorf("object %s: %w", o.Name, err)
		}
		if err := m.Validate(); err != nil {
			return nil, err
		}
		meshes[o.Primitive] = m
	}
	return meshes, nil
}
