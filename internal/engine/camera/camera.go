// Package camera provides the orbit camera driven by the UI sliders.
package camera

import (
	gomath "math"

	"github.com/Faultbox/phong-primitives/pkg/math"
	"github.com/Faultbox/phong-primitives/pkg/transform"
)

// OrbitCamera orbits the world origin on a sphere.
type OrbitCamera struct {
	// Spherical coordinates
	Azimuth  float32 // radians, sweeps the XZ plane
	Polar    float32 // radians, measured from +Y
	Distance float32 // distance from the origin

	// Constraints
	MinDistance float32

	// Projection
	FieldOfView float32 // vertical, radians
	Near        float32
	Far         float32
}

// NewOrbitCamera creates a new orbit camera with default settings.
func NewOrbitCamera() *OrbitCamera {
	return &OrbitCamera{
		Azimuth:     gomath.Pi / 4,
		Polar:       gomath.Pi / 3,
		Distance:    5.0,
		MinDistance: 0.1,
		FieldOfView: gomath.Pi / 4,
		Near:        transform.DefaultNear,
		Far:         transform.DefaultFar,
	}
}

// EffectiveDistance returns the distance clamped to MinDistance.
// A zero distance would put the eye on the target.
func (c *OrbitCamera) EffectiveDistance() float32 {
	minDist := c.MinDistance
	if minDist <= 0 {
		minDist = transform.MinEyeDistance
	}
	if c.Distance < minDist {
		return minDist
	}
	return c.Distance
}

// Position returns the camera position in world space.
func (c *OrbitCamera) Position() math.Vec3 {
	d := float64(c.EffectiveDistance())
	sinP, cosP := gomath.Sincos(float64(c.Polar))
	sinA, cosA := gomath.Sincos(float64(c.Azimuth))

	return math.Vec3{
		X: float32(d * sinP * cosA),
		Y: float32(d * cosP),
		Z: float32(d * sinP * sinA),
	}
}

// Camera returns the look-at description: target at origin, +Y up.
func (c *OrbitCamera) Camera() transform.Camera {
	return transform.Camera{
		Position: c.Position(),
		Up:       math.Vec3{Y: 1},
	}
}

// ViewMatrix returns the view matrix for this camera.
func (c *OrbitCamera) ViewMatrix() math.Mat4 {
	return transform.LookAt(c.Camera())
}

// Projection returns the projection parameters for the given aspect ratio.
func (c *OrbitCamera) Projection(aspect float32) transform.Projection {
	return transform.Projection{
		FovY:   c.FieldOfView,
		Aspect: aspect,
		Near:   c.Near,
		Far:    c.Far,
	}
}

// ProjectionMatrix returns the perspective matrix for the given aspect ratio.
func (c *OrbitCamera) ProjectionMatrix(aspect float32) math.Mat4 {
	return c.Projection(aspect).Matrix()
}
