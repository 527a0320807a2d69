// Package frame turns slider values, elapsed time and a scene into
// everything a renderer needs to draw one frame.
package frame

import (
	"time"

	"github.com/Faultbox/phong-primitives/internal/controls"
	"github.com/Faultbox/phong-primitives/internal/engine/camera"
	"github.com/Faultbox/phong-primitives/internal/engine/lighting"
	"github.com/Faultbox/phong-primitives/internal/scene"
	"github.com/Faultbox/phong-primitives/pkg/math"
	"github.com/Faultbox/phong-primitives/pkg/shading"
	"github.com/Faultbox/phong-primitives/pkg/transform"
)

// ObjectState is one object's composed transform for the frame.
type ObjectState struct {
	Name      string
	Primitive string
	Params    transform.Params
	transform.Result
}

// State is the complete per-frame input to a renderer.
type State struct {
	Elapsed        time.Duration
	CameraPosition math.Vec3
	Light          lighting.DirectionalLight
	View           math.Mat4
	Projection     math.Mat4
	Objects        []ObjectState
}

// Camera returns the orbit camera described by the slider values.
func Camera(v controls.Values) *camera.OrbitCamera {
	p := v.Camera()
	cam := camera.NewOrbitCamera()
	cam.Azimuth = p.Azimuth
	cam.Polar = p.Polar
	cam.Distance = p.Distance
	cam.FieldOfView = p.FieldOfView
	return cam
}

// Build recomputes the frame from scratch. It has no side effects.
func Build(v controls.Values, elapsed time.Duration, aspect float32, s *scene.Scene) State {
	cam := Camera(v)
	lp := v.Light()

	st := State{
		Elapsed:        elapsed,
		CameraPosition: cam.Position(),
		Light:          lighting.NewDirectionalLight(lp.Azimuth, lp.Polar),
		View:           cam.ViewMatrix(),
		Projection:     cam.ProjectionMatrix(aspect),
	}

	if s == nil {
		return st
	}

	st.Objects = make([]ObjectState, len(s.Objects))
	for i, o := range s.Objects {
		params := o.TransformAt(elapsed)
		st.Objects[i] = ObjectState{
			Name:      o.Name,
			Primitive: o.Primitive,
			Params:    params,
			Result:    transform.ComposeWith(params, st.View, st.Projection),
		}
	}
	return st
}

// Material returns base with its light color tinted by the frame's light.
func (s State) Material(base shading.Material) shading.Material {
	base.LightColor = base.LightColor.Mul(s.Light.Color)
	return base
}

// Aspect returns width/height, or 1 for an empty surface.
func Aspect(width, height int) float32 {
	if width <= 0 || height <= 0 {
		return 1
	}
	return float32(width) / float32(height)
}

// PingPong returns the elapsed time for offline frame i of n, sweeping from
// zero up to duration over the first half and back down over the second.
func PingPong(i, n int, duration time.Duration) time.Duration {
	if n <= 1 || i <= 0 {
		return 0
	}
	half := n / 2
	if half == 0 {
		half = 1
	}
	step := i
	if i > half {
		step = n - i
	}
	step = max(step, 0)
	return time.Duration(int64(duration) * int64(step) / int64(half))
}
