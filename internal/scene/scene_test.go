package scene

import (
	"testing"
	"time"

	"github.com/Faultbox/phong-primitives/internal/config"
	"github.com/Faultbox/phong-primitives/pkg/math"
)

func TestDefaultValidates(t *testing.T) {
	s := Default()
	if err := s.Validate(); err != nil {
		t.Fatalf("default scene invalid: %v", err)
	}
	if len(s.Objects) != 4 {
		t.Errorf("expected 4 objects, got %d", len(s.Objects))
	}
}

func TestPulseOnlyTouchesItsAxis(t *testing.T) {
	o := Object{
		Name:      "s",
		Primitive: "sphere",
		Transform: Default().Objects[3].Transform,
		Pulse:     &Pulse{Axis: 0, Rate: 1, Offset: 1, Amplitude: 0.5},
	}

	tests := []struct {
		at    time.Duration
		wantX float32
	}{
		{0, 1},
		{time.Duration(float64(time.Second) * 1.5707963), 1.5},
		{time.Duration(float64(time.Second) * 4.712389), 0.5},
	}

	for _, tt := range tests {
		p := o.TransformAt(tt.at)
		if d := p.Scale.X - tt.wantX; d > 1e-4 || d < -1e-4 {
			t.Errorf("at %v: scale.x = %f, want %f", tt.at, p.Scale.X, tt.wantX)
		}
		if p.Scale.Y != 1 || p.Scale.Z != 1 {
			t.Errorf("at %v: pulse leaked into other axes: %+v", tt.at, p.Scale)
		}
		if p.Translation != o.Transform.Translation {
			t.Errorf("at %v: translation changed", tt.at)
		}
	}
}

func TestDefaultPulseStaysPositive(t *testing.T) {
	sphere := Default().Objects[3]
	for ms := 0; ms < 10000; ms += 37 {
		p := sphere.TransformAt(time.Duration(ms) * time.Millisecond)
		if p.Scale.X <= 0 {
			t.Fatalf("at %dms: scale.x = %f", ms, p.Scale.X)
		}
	}
}

func TestMeshesDeduplicates(t *testing.T) {
	meshes, err := Default().Meshes()
	if err != nil {
		t.Fatalf("Meshes: %v", err)
	}
	if len(meshes) != 3 {
		t.Errorf("expected 3 distinct meshes, got %d", len(meshes))
	}
	for name, m := range meshes {
		if m.TriangleCount() == 0 {
			t.Errorf("mesh %s is empty", name)
		}
	}
}

func TestValidateErrors(t *testing.T) {
	tests := []struct {
		name  string
		scene *Scene
	}{
		{"empty", &Scene{}},
		{"unknown primitive", &Scene{Objects: []Object{{Name: "x", Primitive: "teapot"}}}},
		{"bad axis", &Scene{Objects: []Object{{Name: "x", Primitive: "cube", Pulse: &Pulse{Axis: 3}}}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.scene.Validate(); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestFromConfig(t *testing.T) {
	s, err := FromConfig(config.SceneConfig{})
	if err != nil {
		t.Fatalf("empty config: %v", err)
	}
	if len(s.Objects) != len(Default().Objects) {
		t.Errorf("empty config should give the default scene")
	}

	scale := [3]float32{2, 3, 4}
	s, err = FromConfig(config.SceneConfig{Objects: []config.ObjectConfig{
		{Primitive: "Cube", Translation: [3]float32{1, 2, 3}},
		{Name: "ball", Primitive: "sphere", Scale: &scale, Pulse: &config.PulseConfig{Axis: "y", Rate: 2, Offset: 1, Amplitude: 0.25}},
	}})
	if err != nil {
		t.Fatalf("FromConfig: %v", err)
	}

	cube := s.Objects[0]
	if cube.Name != "cube_0" || cube.Primitive != "cube" {
		t.Errorf("unexpected cube object: %+v", cube)
	}
	if cube.Transform.Scale != (math.Vec3{X: 1, Y: 1, Z: 1}) {
		t.Errorf("missing scale should default to 1, got %+v", cube.Transform.Scale)
	}
	if cube.Transform.Translation != (math.Vec3{X: 1, Y: 2, Z: 3}) {
		t.Errorf("translation = %+v", cube.Transform.Translation)
	}

	ball := s.Objects[1]
	if ball.Transform.Scale != (math.Vec3{X: 2, Y: 3, Z: 4}) {
		t.Errorf("scale = %+v", ball.Transform.Scale)
	}
	if ball.Pulse == nil || ball.Pulse.Axis != 1 {
		t.Errorf("pulse = %+v", ball.Pulse)
	}
}

func TestFromConfigErrors(t *testing.T) {
	tests := []struct {
		name string
		obj  config.ObjectConfig
	}{
		{"unknown primitive", config.ObjectConfig{Primitive: "torus"}},
		{"unknown axis", config.ObjectConfig{Primitive: "cube", Pulse: &config.PulseConfig{Axis: "w"}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := FromConfig(config.SceneConfig{Objects: []config.ObjectConfig{tt.obj}}); err == nil {
				t.Error("expected error")
			}
		})
	}
}
