package scene

import (
	"fmt"
	"strings"

	"github.com/Faultbox/phong-primitives/internal/config"
	"github.com/Faultbox/phong-primitives/pkg/math"
	"github.com/Faultbox/phong-primitives/pkg/transform"
)

// FromConfig builds a scene from the config's object list.
// An empty list yields Default.
func FromConfig(cfg config.SceneConfig) (*Scene, error) {
	if len(cfg.Objects) == 0 {
		return Default(), nil
	}

	s := &Scene{Objects: make([]Object, 0, len(cfg.Objects))}
	for i, oc := range cfg.Objects {
		o := Object{
			Name:      oc.Name,
			Primitive: strings.ToLower(oc.Primitive),
			Transform: transform.Params{
				Scale:       math.Vec3{X: 1, Y: 1, Z: 1},
				Rotation:    vec3(oc.Rotation),
				Translation: vec3(oc.Translation),
			},
		}
		if o.Name == "" {
			o.Name = fmt.Sprintf("%s_%d", o.Primitive, i)
		}
		if oc.Scale != nil {
			o.Transform.Scale = vec3(*oc.Scale)
		}
		if oc.Pulse != nil {
			axis, err := parseAxis(oc.Pulse.Axis)
			if err != nil {
				return nil, fmt.Errorf("object %d (%s): %w", i, o.Name, err)
			}
			o.Pulse = &Pulse{
				Axis:      axis,
				Rate:      oc.Pulse.Rate,
				Offset:    oc.Pulse.Offset,
				Amplitude: oc.Pulse.Amplitude,
			}
		}
		s.Objects = append(s.Objects, o)
	}

	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

func parseAxis(s string) (int, error) {
	switch strings.ToLower(s) {
	case "x", "":
		return 0, nil
	case "y":
		return 1, nil
	case "z":
		return 2, nil
	}
	return 0, fmt.Errorf("unknown pulse axis %q", s)
}

func vec3(a [3]float32) math.Vec3 {
	return math.Vec3{X: a[0], Y: a[1], Z: a[2]}
}
