// Package shading evaluates the Phong reflection model for a single
// directional light. The GLSL fragment shader in internal/engine/shader
// implements the same formula; keep the two in step.
package shading

import (
	gomath "math"

	"github.com/Faultbox/phong-primitives/pkg/math"
)

// DefaultGamma is used when a material carries a non-positive gamma.
const DefaultGamma = 2.2

// Material holds the fixed lighting constants.
type Material struct {
	Ambient    float32
	Diffuse    float32
	Specular   float32
	Shininess  float32
	LightColor math.Vec3
	Gamma      float32
}

// DefaultMaterial returns the constants the viewer ships with.
func DefaultMaterial() Material {
	return Material{
		Ambient:    0.1,
		Diffuse:    0.9,
		Specular:   0.4,
		Shininess:  32,
		LightColor: math.Vec3{X: 1, Y: 1, Z: 1},
		Gamma:      DefaultGamma,
	}
}

// Fragment is the interpolated per-pixel input.
// Directions need not be unit length; Evaluate normalizes them.
type Fragment struct {
	Normal         math.Vec3
	ViewDirection  math.Vec3 // surface -> camera
	LightDirection math.Vec3 // surface -> light
	BaseColor      math.Vec3
}

// Evaluate returns the gamma-corrected RGBA color of the fragment.
func Evaluate(f Fragment, m Material) math.Vec4 {
	c := Linear(f, m)
	g := GammaCorrect(c, m.Gamma)
	return math.Vec4{g.X, g.Y, g.Z, 1}
}

// Linear returns the lit color before gamma correction.
func Linear(f Fragment, m Material) math.Vec3 {
	n := f.Normal.Normalize()
	v := f.ViewDirection.Normalize()
	l := f.LightDirection.Normalize()

	diffuse := DiffuseTerm(n, l)
	specular := float32(0)
	if diffuse > 0 {
		specular = SpecularTerm(n, l, v, m.Shininess)
	}

	lit := f.BaseColor.Scale(m.Ambient + m.Diffuse*diffuse).Mul(m.LightColor)
	return lit.Add(m.LightColor.Scale(m.Specular * specular))
}

// DiffuseTerm is max(N·L, 0) for unit vectors.
func DiffuseTerm(n, l math.Vec3) float32 {
	return max(n.Dot(l), 0)
}

// SpecularTerm is max(R·V, 0)^shininess with R = reflect(-L, N).
func SpecularTerm(n, l, v math.Vec3, shininess float32) float32 {
	r := Reflect(l.Negate(), n)
	rv := max(r.Dot(v), 0)
	if rv == 0 {
		return 0
	}
	return float32(gomath.Pow(float64(rv), float64(shininess)))
}

// Reflect mirrors the incident vector i about the unit normal n,
// matching GLSL reflect(): i - 2*dot(n, i)*n.
func Reflect(i, n math.Vec3) math.Vec3 {
	return i.Sub(n.Scale(2 * n.Dot(i)))
}

// GammaCorrect clamps each channel to [0,1] and raises it to 1/gamma.
func GammaCorrect(c math.Vec3, gamma float32) math.Vec3 {
	if gamma <= 0 {
		gamma = DefaultGamma
	}
	inv := 1 / float64(gamma)
	return math.Vec3{
		X: float32(gomath.Pow(float64(clamp01(c.X)), inv)),
		Y: float32(gomath.Pow(float64(clamp01(c.Y)), inv)),
		Z: float32(gomath.Pow(float64(clamp01(c.Z)), inv)),
	}
}

func clamp01(f float32) float32 {
	return min(max(f, 0), 1)
}
