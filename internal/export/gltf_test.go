package export

import (
	"path/filepath"
	"testing"

	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"

	"github.com/Faultbox/phong-primitives/internal/scene"
	"github.com/Faultbox/phong-primitives/pkg/transform"
)

func TestDocumentDefaultScene(t *testing.T) {
	s := scene.Default()
	meshes, err := s.Meshes()
	if err != nil {
		t.Fatal(err)
	}

	doc, err := Document(s, meshes, 0)
	if err != nil {
		t.Fatalf("Document: %v", err)
	}

	if len(doc.Meshes) != len(meshes) {
		t.Errorf("meshes = %d, want %d", len(doc.Meshes), len(meshes))
	}
	if len(doc.Nodes) != len(s.Objects) {
		t.Errorf("nodes = %d, want %d", len(doc.Nodes), len(s.Objects))
	}
	if got := len(doc.Scenes[0].Nodes); got != len(s.Objects) {
		t.Errorf("scene roots = %d, want %d", got, len(s.Objects))
	}

	for i, o := range s.Objects {
		want := transform.ModelMatrix(o.TransformAt(0))
		for j := range want {
			if float32(doc.Nodes[i].Matrix[j]) != want[j] {
				t.Errorf("node %s matrix[%d] = %f, want %f", o.Name, j, doc.Nodes[i].Matrix[j], want[j])
				break
			}
		}
	}
}

func TestDocumentMissingMesh(t *testing.T) {
	s := scene.Default()
	if _, err := Document(s, nil, 0); err == nil {
		t.Fatal("expected error when meshes are missing")
	}
}

func TestWriteGLBRoundTrip(t *testing.T) {
	s := scene.Default()
	meshes, err := s.Meshes()
	if err != nil {
		t.Fatal(err)
	}
	path := filepath.Join(t.TempDir(), "nested", "scene.glb")

	if err := WriteGLB(path, s, meshes, 0); err != nil {
		t.Fatalf("WriteGLB: %v", err)
	}

	doc, err := gltf.Open(path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	for _, gm := range doc.Meshes {
		m := meshes[gm.Name]
		if m == nil {
			t.Fatalf("unexpected mesh %q", gm.Name)
		}
		prim := gm.Primitives[0]
		positions, err := modeler.ReadPosition(doc, doc.Accessors[prim.Attributes[gltf.POSITION]], nil)
		if err != nil {
			t.Fatalf("%s positions: %v", gm.Name, err)
		}
		if len(positions) != m.VertexCount() {
			t.Errorf("%s vertices = %d, want %d", gm.Name, len(positions), m.VertexCount())
		}
		if _, ok := prim.Attributes[gltf.NORMAL]; ok != m.HasNormals() {
			t.Errorf("%s normals present = %v, want %v", gm.Name, ok, m.HasNormals())
		}
	}
}
