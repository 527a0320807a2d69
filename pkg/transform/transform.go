// Package transform composes the per-object model, view and projection
// matrices and the matching normal matrix.
package transform

import (
	gomath "math"

	"github.com/Faultbox/phong-primitives/pkg/math"
)

// Projection limits. Values outside are clamped rather than rejected so a
// slider dragged to an extreme never produces a singular matrix.
const (
	DefaultNear    = 0.01
	DefaultFar     = 1000.0
	MinFov         = 0.01
	MaxFov         = gomath.Pi - 0.01
	MinEyeDistance = 1e-3
)

// Params holds an object's local transform.
// Rotation is in radians and is applied X first, then Y, then Z.
type Params struct {
	Scale       math.Vec3
	Rotation    math.Vec3
	Translation math.Vec3
}

// Identity returns parameters that leave an object untouched.
func Identity() Params {
	return Params{Scale: math.Vec3{X: 1, Y: 1, Z: 1}}
}

// Camera describes the viewer for the look-at construction.
type Camera struct {
	Position math.Vec3
	Target   math.Vec3
	Up       math.Vec3
}

// Projection holds perspective projection parameters.
type Projection struct {
	FovY   float32 // radians
	Aspect float32 // width / height
	Near   float32
	Far    float32
}

// Result is everything the draw stage needs for one object.
type Result struct {
	Model      math.Mat4
	View       math.Mat4
	Projection math.Mat4
	MVP        math.Mat4
	Normal     math.Mat3
}

// ModelMatrix builds Translate * RotateZ * RotateY * RotateX * Scale.
func ModelMatrix(p Params) math.Mat4 {
	return math.Translate(p.Translation).
		Mul(math.RotateZ(p.Rotation.Z)).
		Mul(math.RotateY(p.Rotation.Y)).
		Mul(math.RotateX(p.Rotation.X)).
		Mul(math.Scale(p.Scale))
}

// NormalMatrix returns the inverse-transpose of the model's upper 3x3.
// Lighting is evaluated in world space, so the view matrix is not included.
func NormalMatrix(model math.Mat4) math.Mat3 {
	return model.Mat3().Inverse().Transpose()
}

// LookAt builds a right-handed view matrix (camera looks down -Z).
//
// Degenerate inputs are repaired instead of producing NaN: an eye sitting on
// the target is pushed back along +Z, and an up vector parallel to the view
// direction is swapped for a perpendicular fallback.
func LookAt(c Camera) math.Mat4 {
	eye := c.Position
	if eye.Distance(c.Target) < MinEyeDistance {
		eye = c.Target.Add(math.Vec3{Z: MinEyeDistance})
	}

	up := c.Up.Normalize()
	if up == (math.Vec3{}) {
		up = math.Vec3{Y: 1}
	}

	forward := c.Target.Sub(eye).Normalize()
	if forward.Cross(up).Length() < 1e-6 {
		up = fallbackUp(forward)
	}

	return math.LookAt(eye, c.Target, up)
}

// fallbackUp picks an up vector perpendicular enough to forward.
func fallbackUp(forward math.Vec3) math.Vec3 {
	if forward.Y > 0 {
		return math.Vec3{Z: 1}
	}
	if forward.Y < 0 {
		return math.Vec3{Z: -1}
	}
	return math.Vec3{Y: 1}
}

// Sanitized returns a copy with out-of-range values replaced.
func (p Projection) Sanitized() Projection {
	if p.Aspect <= 0 || !finite(p.Aspect) {
		p.Aspect = 1
	}
	if p.Near <= 0 || !finite(p.Near) {
		p.Near = DefaultNear
	}
	if p.Far <= p.Near || !finite(p.Far) {
		p.Far = p.Near * 1000
	}
	if p.FovY < MinFov || !finite(p.FovY) {
		p.FovY = MinFov
	}
	if p.FovY > MaxFov {
		p.FovY = MaxFov
	}
	return p
}

// Matrix returns the perspective projection matrix.
func (p Projection) Matrix() math.Mat4 {
	s := p.Sanitized()
	return math.Perspective(s.FovY, s.Aspect, s.Near, s.Far)
}

// Compose produces the clip-space transform and the normal matrix for an
// object seen by the given camera.
func Compose(p Params, cam Camera, proj Projection) Result {
	return ComposeWith(p, LookAt(cam), proj.Matrix())
}

// ComposeWith is Compose for callers that already built the view and
// projection matrices once for the frame.
func ComposeWith(p Params, view, projection math.Mat4) Result {
	model := ModelMatrix(p)
	return Result{
		Model:      model,
		View:       view,
		Projection: projection,
		MVP:        projection.Mul(view).Mul(model),
		Normal:     NormalMatrix(model),
	}
}

// ClipSpace transforms an object-space point into clip space.
func ClipSpace(v math.Vec3, mvp math.Mat4) math.Vec4 {
	return mvp.MulVec4(math.V4(v, 1))
}

// Translation extracts the translation from a composed model matrix.
func Translation(model math.Mat4) math.Vec3 {
	return model.Translation()
}

func finite(f float32) bool {
	return !gomath.IsNaN(float64(f)) && !gomath.IsInf(float64(f), 0)
}
