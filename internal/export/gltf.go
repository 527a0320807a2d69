// Package export writes the scene as a binary glTF file so the generated
// primitives can be inspected in other tools.
package export

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"

	"github.com/Faultbox/phong-primitives/internal/engine/mesh"
	"github.com/Faultbox/phong-primitives/internal/scene"
	"github.com/Faultbox/phong-primitives/pkg/transform"
)

// Document builds a glTF document with one mesh per primitive and one node
// per scene object, posed at time t.
func Document(s *scene.Scene, meshes map[string]*mesh.Mesh, t time.Duration) (*gltf.Document, error) {
	doc := gltf.NewDocument()

	names := make([]string, 0, len(meshes))
	for name := range meshes {
		names = append(names, name)
	}
	sort.Strings(names)

	index := make(map[string]int, len(names))
	for _, name := range names {
		m := meshes[name]
		if err := m.Validate(); err != nil {
			return nil, err
		}
		index[name] = len(doc.Meshes)
		doc.Meshes = append(doc.Meshes, &gltf.Mesh{
			Name:       name,
			Primitives: []*gltf.Primitive{primitive(doc, m)},
		})
	}

	for _, o := range s.Objects {
		mi, ok := index[o.Primitive]
		if !ok {
			return nil, fmt.Errorf("object %s: no mesh for primitive %q", o.Name, o.Primitive)
		}
		model := transform.ModelMatrix(o.TransformAt(t))
		var matrix [16]float64
		for i, f := range model {
			matrix[i] = float64(f)
		}
		doc.Nodes = append(doc.Nodes, &gltf.Node{
			Name:   o.Name,
			Mesh:   gltf.Index(mi),
			Matrix: matrix,
		})
		doc.Scenes[0].Nodes = append(doc.Scenes[0].Nodes, len(doc.Nodes)-1)
	}
	return doc, nil
}

func primitive(doc *gltf.Document, m *mesh.Mesh) *gltf.Primitive {
	attrs := map[string]int{
		gltf.POSITION: modeler.WritePosition(doc, triples(m.Positions)),
		gltf.COLOR_0:  modeler.WriteColor(doc, triples(m.Colors)),
	}
	if m.HasNormals() {
		attrs[gltf.NORMAL] = modeler.WriteNormal(doc, triples(m.Normals))
	}
	return &gltf.Primitive{
		Mode:       gltf.PrimitiveTriangles,
		Attributes: attrs,
	}
}

func triples(flat []float32) [][3]float32 {
	out := make([][3]float32, len(flat)/mesh.Components)
	for i := range out {
		copy(out[i][:], flat[i*mesh.Components:])
	}
	return out
}

// WriteGLB saves the scene at time t to path.
func WriteGLB(path string, s *scene.Scene, meshes map[string]*mesh.Mesh, t time.Duration) error {
	doc, err := Document(s, meshes, t)
	if err != nil {
		return err
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("creating output dir: %w", err)
		}
	}
	if err := gltf.SaveBinary(doc, path); err != nil {
		return fmt.Errorf("saving %s: %w", path, err)
	}
	return nil
}
