// Package mesh holds triangle-list geometry in the flat layout uploaded to
// the GPU: three floats per vertex for every attribute.
package mesh

import (
	"errors"
	"fmt"

	"github.com/Faultbox/phong-primitives/pkg/math"
)

// Components per vertex for every attribute.
const Components = 3

// ErrNotTriangleList is returned when the vertex count is not a multiple of 3.
var ErrNotTriangleList = errors.New("vertex count is not a multiple of 3")

// Mesh is immutable geometry, created once at startup.
type Mesh struct {
	Name      string
	Positions []float32
	Colors    []float32
	Normals   []float32 // optional; empty when the mesh is unlit
}

// Vertex is one unpacked vertex.
type Vertex struct {
	Position math.Vec3
	Color    math.Vec3
	Normal   math.Vec3
}

// VertexCount returns the number of vertices (len(Positions)/3).
func (m *Mesh) VertexCount() int {
	return len(m.Positions) / Components
}

// TriangleCount returns the number of triangles.
func (m *Mesh) TriangleCount() int {
	return m.VertexCount() / 3
}

// HasNormals reports whether the mesh carries per-vertex normals.
func (m *Mesh) HasNormals() bool {
	return len(m.Normals) > 0
}

// Validate checks the triangle-list layout.
func (m *Mesh) Validate() error {
	if len(m.Positions) == 0 {
		return fmt.Errorf("mesh %q: no positions", m.Name)
	}
	if len(m.Positions)%Components != 0 {
		return fmt.Errorf("mesh %q: %d position floats is not a multiple of %d", m.Name, len(m.Positions), Components)
	}
	if m.VertexCount()%3 != 0 {
		return fmt.Errorf("mesh %q: %d vertices: %w", m.Name, m.VertexCount(), ErrNotTriangleList)
	}
	if len(m.Colors) != len(m.Positions) {
		return fmt.Errorf("mesh %q: %d color floats, want %d", m.Name, len(m.Colors), len(m.Positions))
	}
	if m.HasNormals() && len(m.Normals) != len(m.Positions) {
		return fmt.Errorf("mesh %q: %d normal floats, want %d", m.Name, len(m.Normals), len(m.Positions))
	}
	return nil
}

// Vertex returns the i-th vertex. Meshes without normals report a zero normal.
func (m *Mesh) Vertex(i int) Vertex {
	off := i * Components
	v := Vertex{
		Position: math.Vec3FromSlice(m.Positions, off),
		Color:    math.Vec3FromSlice(m.Colors, off),
	}
	if m.HasNormals() {
		v.Normal = math.Vec3FromSlice(m.Normals, off)
	}
	return v
}

// Triangle returns the three vertices of triangle t.
func (m *Mesh) Triangle(t int) [3]Vertex {
	return [3]Vertex{m.Vertex(t * 3), m.Vertex(t*3 + 1), m.Vertex(t*3 + 2)}
}

// builder accumulates flat attribute arrays.
type builder struct {
	m Mesh
}

func newBuilder(name string, capacity int) *builder {
	return &builder{m: Mesh{
		Name:      name,
		Positions: make([]float32, 0, capacity*Components),
		Colors:    make([]float32, 0, capacity*Components),
		Normals:   make([]float32, 0, capacity*Components),
	}}
}

func (b *builder) vertex(p, c, n math.Vec3) {
	b.m.Positions = append(b.m.Positions, p.X, p.Y, p.Z)
	b.m.Colors = append(b.m.Colors, c.X, c.Y, c.Z)
	b.m.Normals = append(b.m.Normals, n.X, n.Y, n.Z)
}

// quad emits two counter-clockwise triangles (a,b,c) and (a,c,d).
func (b *builder) quad(a, bb, c, d, normal, color math.Vec3) {
	b.vertex(a, color, normal)
	b.vertex(bb, color, normal)
	b.vertex(c, color, normal)

	b.vertex(a, color, normal)
	b.vertex(c, color, normal)
	b.vertex(d, color, normal)
}

func (b *builder) build() *Mesh {
	m := b.m
	return &m
}
