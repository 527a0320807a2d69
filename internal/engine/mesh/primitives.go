package mesh

import (
	"fmt"
	gomath "math"
	"strings"

	"github.com/Faultbox/phong-primitives/pkg/math"
)

// Primitive names accepted by ByName.
const (
	NameTriangle = "triangle"
	NameCube     = "cube"
	NamePlane    = "plane"
	NameSphere   = "sphere"
)

// Sphere tessellation used by ByName.
const (
	DefaultSphereSegments = 32
	DefaultSphereRings    = 16
)

// ByName returns a unit-sized primitive by name.
func ByName(name string) (*Mesh, error) {
	switch strings.ToLower(name) {
	case NameTriangle:
		return Triangle(), nil
	case NameCube:
		return Cube(1), nil
	case NamePlane:
		return Plane(1), nil
	case NameSphere:
		return Sphere(0.5, DefaultSphereSegments, DefaultSphereRings), nil
	default:
		return nil, fmt.Errorf("unknown primitive %q", name)
	}
}

// Triangle returns a single RGB triangle in the XY plane facing +Z.
func Triangle() *Mesh {
	b := newBuilder(NameTriangle, 3)
	n := math.Vec3{Z: 1}
	b.vertex(math.Vec3{X: -0.5, Y: -0.5}, math.Vec3{X: 1}, n) // Bottom Left - Red
	b.vertex(math.Vec3{X: 0.5, Y: -0.5}, math.Vec3{Y: 1}, n)  // Bottom Right - Green
	b.vertex(math.Vec3{Y: 0.5}, math.Vec3{Z: 1}, n)           // Top - Blue
	return b.build()
}

// Cube returns an axis-aligned cube centered at the origin, one color per face.
func Cube(size float32) *Mesh {
	h := size / 2
	b := newBuilder(NameCube, 36)

	// +X
	b.quad(
		math.Vec3{X: h, Y: -h, Z: h}, math.Vec3{X: h, Y: -h, Z: -h},
		math.Vec3{X: h, Y: h, Z: -h}, math.Vec3{X: h, Y: h, Z: h},
		math.Vec3{X: 1}, math.Vec3{X: 1, Y: 0.2, Z: 0.2},
	)
	// -X
	b.quad(
		math.Vec3{X: -h, Y: -h, Z: -h}, math.Vec3{X: -h, Y: -h, Z: h},
		math.Vec3{X: -h, Y: h, Z: h}, math.Vec3{X: -h, Y: h, Z: -h},
		math.Vec3{X: -1}, math.Vec3{X: 0.2, Y: 1, Z: 1},
	)
	// +Y
	b.quad(
		math.Vec3{X: -h, Y: h, Z: h}, math.Vec3{X: h, Y: h, Z: h},
		math.Vec3{X: h, Y: h, Z: -h}, math.Vec3{X: -h, Y: h, Z: -h},
		math.Vec3{Y: 1}, math.Vec3{X: 0.2, Y: 1, Z: 0.2},
	)
	// -Y
	b.quad(
		math.Vec3{X: -h, Y: -h, Z: -h}, math.Vec3{X: h, Y: -h, Z: -h},
		math.Vec3{X: h, Y: -h, Z: h}, math.Vec3{X: -h, Y: -h, Z: h},
		math.Vec3{Y: -1}, math.Vec3{X: 1, Y: 0.2, Z: 1},
	)
	// +Z
	b.quad(
		math.Vec3{X: -h, Y: -h, Z: h}, math.Vec3{X: h, Y: -h, Z: h},
		math.Vec3{X: h, Y: h, Z: h}, math.Vec3{X: -h, Y: h, Z: h},
		math.Vec3{Z: 1}, math.Vec3{X: 0.2, Y: 0.2, Z: 1},
	)
	// -Z
	b.quad(
		math.Vec3{X: h, Y: -h, Z: -h}, math.Vec3{X: -h, Y: -h, Z: -h},
		math.Vec3{X: -h, Y: h, Z: -h}, math.Vec3{X: h, Y: h, Z: -h},
		math.Vec3{Z: -1}, math.Vec3{X: 1, Y: 1, Z: 0.2},
	)

	return b.build()
}

// Plane returns a square in the XZ plane at y=0, facing +Y.
func Plane(size float32) *Mesh {
	h := size / 2
	b := newBuilder(NamePlane, 6)
	b.quad(
		math.Vec3{X: -h, Z: h}, math.Vec3{X: h, Z: h},
		math.Vec3{X: h, Z: -h}, math.Vec3{X: -h, Z: -h},
		math.Vec3{Y: 1}, math.Vec3{X: 0.6, Y: 0.6, Z: 0.6},
	)
	return b.build()
}

// Sphere returns a UV sphere. Vertex colors follow the normal so the
// orientation is visible even without lighting.
func Sphere(radius float32, segments, rings int) *Mesh {
	if segments < 3 {
		segments = 3
	}
	if rings < 2 {
		rings = 2
	}

	point := func(ring, seg int) math.Vec3 {
		phi := float64(ring) * gomath.Pi / float64(rings)
		theta := float64(seg) * 2.0 * gomath.Pi / float64(segments)
		sinPhi, cosPhi := gomath.Sincos(phi)
		sinTheta, cosTheta := gomath.Sincos(theta)
		return math.Vec3{
			X: float32(sinPhi * cosTheta),
			Y: float32(cosPhi),
			Z: float32(sinPhi * sinTheta),
		}
	}
	emit := func(b *builder, n math.Vec3) {
		color := math.Vec3{X: 0.5 + 0.5*n.X, Y: 0.5 + 0.5*n.Y, Z: 0.5 + 0.5*n.Z}
		b.vertex(n.Scale(radius), color, n)
	}

	b := newBuilder(NameSphere, segments*(rings-1)*6)
	for ring := 0; ring < rings; ring++ {
		for seg := 0; seg < segments; seg++ {
			current := point(ring, seg)
			right := point(ring, seg+1)
			below := point(ring+1, seg)
			belowRight := point(ring+1, seg+1)

			// Skip the zero-area triangles that touch the poles
			if ring != 0 {
				emit(b, current)
				emit(b, right)
				emit(b, below)
			}
			if ring != rings-1 {
				emit(b, right)
				emit(b, belowRight)
				emit(b, below)
			}
		}
	}

	return b.build()
}
