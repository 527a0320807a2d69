// Package lighting provides the directional light used by the scene.
package lighting

import (
	gomath "math"

	"github.com/Faultbox/phong-primitives/pkg/math"
)

// DirectionalLight is an infinitely distant light characterized by a
// direction only. Direction points from the surface towards the light.
type DirectionalLight struct {
	Direction math.Vec3
	Color     math.Vec3
}

// NewDirectionalLight builds a white light from azimuth/polar angles (radians).
func NewDirectionalLight(azimuth, polar float32) DirectionalLight {
	return DirectionalLight{
		Direction: Direction(azimuth, polar),
		Color:     math.Vec3{X: 1, Y: 1, Z: 1},
	}
}

// Direction converts azimuth/polar angles to a unit light direction.
// The polar angle is measured from +Z and the azimuth sweeps the XY plane.
func Direction(azimuth, polar float32) math.Vec3 {
	sinP, cosP := gomath.Sincos(float64(polar))
	sinA, cosA := gomath.Sincos(float64(azimuth))

	return math.Vec3{
		X: float32(sinP * cosA),
		Y: float32(sinP * sinA),
		Z: float32(cosP),
	}.Normalize()
}
