package shading

import (
	"testing"

	"github.com/Faultbox/phong-primitives/pkg/math"
)

const eps = 1e-4

func near(a, b float32) bool {
	d := a - b
	return d <= eps && d >= -eps
}

func TestEvaluateRedFacingLight(t *testing.T) {
	m := Material{
		Ambient:    0.1,
		Diffuse:    0.9,
		Specular:   0,
		Shininess:  16,
		LightColor: math.Vec3{X: 1, Y: 1, Z: 1},
		Gamma:      2.2,
	}
	f := Fragment{
		Normal:         math.Vec3{Z: 1},
		ViewDirection:  math.Vec3{Z: 1},
		LightDirection: math.Vec3{Z: 1},
		BaseColor:      math.Vec3{X: 1},
	}

	lin := Linear(f, m)
	if !near(lin.X, 1) || !near(lin.Y, 0) || !near(lin.Z, 0) {
		t.Errorf("pre-gamma color = %v, want (1, 0, 0)", lin)
	}

	got := Evaluate(f, m)
	want := math.Vec4{1, 0, 0, 1}
	for i := range got {
		if !near(got[i], want[i]) {
			t.Errorf("final[%d] = %f, want %f", i, got[i], want[i])
		}
	}
}

func TestDiffuseTermClampsBackLight(t *testing.T) {
	n := math.Vec3{Z: 1}
	tests := []math.Vec3{
		{Z: -1},
		{X: 1},
		math.Vec3{X: 1, Z: -1}.Normalize(),
	}
	for _, l := range tests {
		if got := DiffuseTerm(n, l); got != 0 {
			t.Errorf("DiffuseTerm(n, %v) = %f, want 0", l, got)
		}
	}
}

func TestDiffuseTermMonotonic(t *testing.T) {
	n := math.Vec3{Z: 1}
	prev := float32(-1)
	// Sweep the light from grazing to head-on
	for i := 0; i <= 20; i++ {
		z := float32(i) / 20
		l := math.Vec3{X: 1 - z, Z: z}.Normalize()
		got := DiffuseTerm(n, l)
		if got < prev {
			t.Fatalf("diffuse decreased from %f to %f at step %d", prev, got, i)
		}
		prev = got
	}
	if !near(prev, 1) {
		t.Errorf("head-on diffuse = %f, want 1", prev)
	}
}

func TestSpecularHighlight(t *testing.T) {
	n := math.Vec3{Z: 1}
	l := math.Vec3{X: 1, Z: 1}.Normalize()
	mirror := math.Vec3{X: -1, Z: 1}.Normalize()

	if got := SpecularTerm(n, l, mirror, 32); !near(got, 1) {
		t.Errorf("specular at mirror direction = %f, want 1", got)
	}
	if got := SpecularTerm(n, l, l, 32); got >= 0.01 {
		t.Errorf("specular looking back at the light = %f, want ~0", got)
	}
}

func TestNoSpecularOnUnlitSide(t *testing.T) {
	m := DefaultMaterial()
	m.Ambient = 0
	f := Fragment{
		Normal:         math.Vec3{Z: 1},
		ViewDirection:  math.Vec3{Z: -1},
		LightDirection: math.Vec3{Z: -1},
		BaseColor:      math.Vec3{X: 1, Y: 1, Z: 1},
	}
	if got := Linear(f, m); got != (math.Vec3{}) {
		t.Errorf("back-lit color = %v, want black", got)
	}
}

func TestUnnormalizedInputs(t *testing.T) {
	m := DefaultMaterial()
	unit := Fragment{
		Normal:         math.Vec3{Y: 1},
		ViewDirection:  math.Vec3{Y: 1, Z: 1}.Normalize(),
		LightDirection: math.Vec3{Y: 1, X: 0.5}.Normalize(),
		BaseColor:      math.Vec3{X: 0.2, Y: 0.6, Z: 0.9},
	}
	scaled := unit
	scaled.Normal = unit.Normal.Scale(7)
	scaled.ViewDirection = unit.ViewDirection.Scale(0.01)
	scaled.LightDirection = unit.LightDirection.Scale(40)

	a, b := Evaluate(unit, m), Evaluate(scaled, m)
	for i := range a {
		if !near(a[i], b[i]) {
			t.Errorf("channel %d: unit %f vs scaled %f", i, a[i], b[i])
		}
	}
}

func TestZeroVectorsFallBackToAmbient(t *testing.T) {
	m := DefaultMaterial()
	m.Gamma = 1
	f := Fragment{BaseColor: math.Vec3{X: 1, Y: 0.5}}

	got := Evaluate(f, m)
	want := math.Vec4{0.1, 0.05, 0, 1}
	for i := range got {
		if !near(got[i], want[i]) {
			t.Errorf("channel %d = %f, want %f", i, got[i], want[i])
		}
	}
}

func TestGammaCorrect(t *testing.T) {
	got := GammaCorrect(math.Vec3{X: 0.25, Y: 2, Z: -1}, 2)
	if !near(got.X, 0.5) || got.Y != 1 || got.Z != 0 {
		t.Errorf("GammaCorrect = %v, want (0.5, 1, 0)", got)
	}
	if got := GammaCorrect(math.Vec3{X: 0.25}, 0); near(got.X, 0.25) {
		t.Error("non-positive gamma should fall back to the default, not identity")
	}
}

func TestReflect(t *testing.T) {
	got := Reflect(math.Vec3{X: 1, Y: -1}, math.Vec3{Y: 1})
	if got != (math.Vec3{X: 1, Y: 1}) {
		t.Errorf("Reflect = %v, want (1, 1, 0)", got)
	}
}
