package raster

import (
	gomath "math"
	"testing"

	"github.com/Faultbox/phong-primitives/internal/controls"
	"github.com/Faultbox/phong-primitives/internal/engine/lighting"
	"github.com/Faultbox/phong-primitives/internal/engine/mesh"
	"github.com/Faultbox/phong-primitives/internal/frame"
	"github.com/Faultbox/phong-primitives/internal/scene"
	"github.com/Faultbox/phong-primitives/pkg/math"
	"github.com/Faultbox/phong-primitives/pkg/shading"
	"github.com/Faultbox/phong-primitives/pkg/transform"
)

// flatTriangle is a single-colored triangle in the XY plane facing +Z.
func flatTriangle(c math.Vec3) *mesh.Mesh {
	m := &mesh.Mesh{Name: "flat"}
	for _, p := range []math.Vec3{{X: -0.5, Y: -0.5}, {X: 0.5, Y: -0.5}, {Y: 0.5}} {
		m.Positions = append(m.Positions, p.X, p.Y, p.Z)
		m.Colors = append(m.Colors, c.X, c.Y, c.Z)
		m.Normals = append(m.Normals, 0, 0, 1)
	}
	return m
}

// testState looks down -Z from (0,0,3) with the light behind the camera.
func testState(params ...transform.Params) frame.State {
	cam := transform.Camera{Position: math.Vec3{Z: 3}, Up: math.Vec3{Y: 1}}
	st := frame.State{
		CameraPosition: cam.Position,
		Light:          lighting.DirectionalLight{Direction: math.Vec3{Z: 1}, Color: math.Vec3{X: 1, Y: 1, Z: 1}},
		View:           transform.LookAt(cam),
		Projection:     transform.Projection{FovY: gomath.Pi / 3, Aspect: 1}.Matrix(),
	}
	for _, p := range params {
		st.Objects = append(st.Objects, frame.ObjectState{
			Name:      "flat",
			Primitive: "flat",
			Params:    p,
			Result:    transform.ComposeWith(p, st.View, st.Projection),
		})
	}
	return st
}

func matte() shading.Material {
	m := shading.DefaultMaterial()
	m.Specular = 0
	return m
}

func TestClear(t *testing.T) {
	target := NewTarget(8, 4)
	got := target.Image.RGBAAt(7, 3)
	if got != Background {
		t.Errorf("expected background %v, got %v", Background, got)
	}
	if target.Depth(0, 0) != gomath.MaxFloat32 {
		t.Errorf("expected cleared depth")
	}
	if target.Depth(-1, 0) != gomath.MaxFloat32 {
		t.Errorf("out of bounds depth should read as empty")
	}
}

func TestFrontFacingShadedRed(t *testing.T) {
	target := NewTarget(64, 64)
	st := testState(transform.Identity())

	target.DrawObject(flatTriangle(math.Vec3{X: 1}), st.Objects[0], st, matte())

	got := target.Image.RGBAAt(32, 32)
	if got.R != 255 || got.G != 0 || got.B != 0 || got.A != 255 {
		t.Errorf("center pixel = %v, want opaque red", got)
	}
	if target.Stats.Fragments == 0 {
		t.Error("no fragments written")
	}
	if corner := target.Image.RGBAAt(0, 0); corner != Background {
		t.Errorf("corner pixel = %v, want background", corner)
	}
}

func TestBackFaceCulled(t *testing.T) {
	target := NewTarget(64, 64)
	p := transform.Identity()
	p.Rotation.Y = gomath.Pi
	st := testState(p)

	target.DrawObject(flatTriangle(math.Vec3{X: 1}), st.Objects[0], st, matte())

	if target.Stats.Culled != 1 {
		t.Errorf("expected 1 culled triangle, got %d", target.Stats.Culled)
	}
	if got := target.Image.RGBAAt(32, 32); got != Background {
		t.Errorf("center pixel = %v, want background", got)
	}
}

func TestBehindCameraClipped(t *testing.T) {
	target := NewTarget(32, 32)
	p := transform.Identity()
	p.Translation.Z = 5
	st := testState(p)

	target.DrawObject(flatTriangle(math.Vec3{X: 1}), st.Objects[0], st, matte())

	if target.Stats.Clipped != 1 || target.Stats.Fragments != 0 {
		t.Errorf("stats = %+v, want one clipped triangle and no fragments", target.Stats)
	}
}

func TestDepthTest(t *testing.T) {
	far := transform.Identity()
	near := transform.Identity()
	near.Translation.Z = 0.5

	red := flatTriangle(math.Vec3{X: 1})
	green := flatTriangle(math.Vec3{Y: 1})

	tests := []struct {
		name  string
		order []int // 0 = far red, 1 = near green
	}{
		{"far first", []int{0, 1}},
		{"near first", []int{1, 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			target := NewTarget(64, 64)
			st := testState(far, near)
			meshes := []*mesh.Mesh{red, green}
			for _, i := range tt.order {
				target.DrawObject(meshes[i], st.Objects[i], st, matte())
			}

			got := target.Image.RGBAAt(32, 32)
			if got.G != 255 || got.R != 0 {
				t.Errorf("center pixel = %v, want the nearer green triangle", got)
			}
		})
	}
}

func TestMatchesShadingEvaluate(t *testing.T) {
	target := NewTarget(64, 64)
	st := testState(transform.Identity())
	st.Light.Direction = math.Vec3{X: 1, Z: 1}.Normalize()
	m := shading.DefaultMaterial()

	base := math.Vec3{X: 0.2, Y: 0.6, Z: 0.9}
	target.DrawObject(flatTriangle(base), st.Objects[0], st, m)

	// Pixel (32, 32) sits next to the world origin; the view direction
	// there is close enough to +Z to compare against the center.
	want := toRGBA(shading.Evaluate(shading.Fragment{
		Normal:         math.Vec3{Z: 1},
		ViewDirection:  st.CameraPosition,
		LightDirection: st.Light.Direction,
		BaseColor:      base,
	}, m))
	got := target.Image.RGBAAt(32, 32)

	for i, pair := range [][2]uint8{{got.R, want.R}, {got.G, want.G}, {got.B, want.B}} {
		if d := int(pair[0]) - int(pair[1]); d > 2 || d < -2 {
			t.Errorf("channel %d = %d, want %d", i, pair[0], pair[1])
		}
	}
}

func TestDrawFrameDefaultScene(t *testing.T) {
	s := scene.Default()
	meshes, err := s.Meshes()
	if err != nil {
		t.Fatalf("Meshes: %v", err)
	}

	target := NewTarget(96, 54)
	st := frame.Build(controls.Defaults(), 0, target.Aspect(), s)
	if err := target.DrawFrame(st, meshes, shading.DefaultMaterial()); err != nil {
		t.Fatalf("DrawFrame: %v", err)
	}

	if target.Stats.Fragments == 0 {
		t.Error("default scene produced no fragments")
	}
	if target.Stats.Culled == 0 {
		t.Error("closed meshes should have back faces culled")
	}
}

func TestDrawFrameMissingMesh(t *testing.T) {
	target := NewTarget(8, 8)
	st := testState(transform.Identity())
	if err := target.DrawFrame(st, map[string]*mesh.Mesh{}, matte()); err == nil {
		t.Error("expected error for missing mesh")
	}
}
