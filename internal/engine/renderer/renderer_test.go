package renderer

import (
	"testing"

	"github.com/Faultbox/phong-primitives/internal/engine/mesh"
)

func TestInterleave(t *testing.T) {
	m := mesh.Triangle()
	out := interleave(m)

	if len(out) != m.VertexCount()*stride {
		t.Fatalf("expected %d floats, got %d", m.VertexCount()*stride, len(out))
	}

	for i := 0; i < m.VertexCount(); i++ {
		v := m.Vertex(i)
		base := i * stride
		if out[base] != v.Position.X || out[base+3] != v.Color.X || out[base+8] != v.Normal.Z {
			t.Errorf("vertex %d not interleaved as position, color, normal", i)
		}
	}
}

func TestInterleaveWithoutNormals(t *testing.T) {
	m := &mesh.Mesh{
		Name:      "bare",
		Positions: []float32{0, 0, 0, 1, 0, 0, 0, 1, 0},
		Colors:    []float32{1, 1, 1, 1, 1, 1, 1, 1, 1},
	}
	out := interleave(m)
	for i := 0; i < 3; i++ {
		for c := 6; c < 9; c++ {
			if out[i*stride+c] != 0 {
				t.Errorf("vertex %d: expected zero normal", i)
			}
		}
	}
}
