package lighting

import (
	gomath "math"
	"testing"

	"github.com/Faultbox/phong-primitives/pkg/math"
)

func TestDirection(t *testing.T) {
	tests := []struct {
		name           string
		azimuth, polar float32
		want           math.Vec3
	}{
		{"pole", 0, 0, math.Vec3{Z: 1}},
		{"equator +X", 0, gomath.Pi / 2, math.Vec3{X: 1}},
		{"equator +Y", gomath.Pi / 2, gomath.Pi / 2, math.Vec3{Y: 1}},
		{"opposite pole", 1.3, gomath.Pi, math.Vec3{Z: -1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Direction(tt.azimuth, tt.polar)
			if got.Distance(tt.want) > 1e-5 {
				t.Errorf("Direction(%f, %f) = %v, want %v", tt.azimuth, tt.polar, got, tt.want)
			}
		})
	}
}

func TestDirectionUnitLength(t *testing.T) {
	for a := float32(0); a < 2*gomath.Pi; a += 0.37 {
		for p := float32(0); p <= gomath.Pi; p += 0.29 {
			l := Direction(a, p).Length()
			if l < 0.9999 || l > 1.0001 {
				t.Fatalf("Direction(%f, %f) has length %f", a, p, l)
			}
		}
	}
}

func TestNewDirectionalLight(t *testing.T) {
	l := NewDirectionalLight(0, 0)
	if l.Color != (math.Vec3{X: 1, Y: 1, Z: 1}) {
		t.Errorf("Color = %v, want white", l.Color)
	}
	if l.Direction.Distance(math.Vec3{Z: 1}) > 1e-5 {
		t.Errorf("Direction = %v, want +Z", l.Direction)
	}
}
