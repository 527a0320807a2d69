// Package raster is a CPU reference rasterizer. It draws the same frame
// state as the GL renderer, shading every pixel with shading.Evaluate, so
// frames can be produced and checked without a GPU.
package raster

import (
	"fmt"
	"image"
	"image/color"
	gomath "math"

	"github.com/Faultbox/phong-primitives/internal/engine/mesh"
	"github.com/Faultbox/phong-primitives/internal/frame"
	"github.com/Faultbox/phong-primitives/pkg/math"
	"github.com/Faultbox/phong-primitives/pkg/shading"
	"github.com/Faultbox/phong-primitives/pkg/transform"
)

// Background is the default clear color.
var Background = color.RGBA{R: 26, G: 26, B: 31, A: 255}

// Stats counts work done since the last Clear.
type Stats struct {
	Triangles int // submitted
	Culled    int // back-facing or degenerate
	Clipped   int // crossing the near plane or behind the camera
	Fragments int // pixels written
}

// Target is a color image plus a depth buffer.
type Target struct {
	Width  int
	Height int
	Image  *image.RGBA
	Stats  Stats

	depth []float32 // NDC z, row-major
}

// NewTarget creates a cleared target.
func NewTarget(width, height int) *Target {
	t := &Target{
		Width:  width,
		Height: height,
		Image:  image.NewRGBA(image.Rect(0, 0, width, height)),
		depth:  make([]float32, width*height),
	}
	t.Clear(Background)
	return t
}

// Aspect returns the target's width/height.
func (t *Target) Aspect() float32 {
	return frame.Aspect(t.Width, t.Height)
}

// Clear fills the image with c and resets depth and stats.
func (t *Target) Clear(c color.RGBA) {
	n := len(t.depth)
	if n == 0 {
		return
	}
	// Copy-doubling fill
	t.depth[0] = gomath.MaxFloat32
	for i := 1; i < n; i *= 2 {
		copy(t.depth[i:], t.depth[:i])
	}
	pix := t.Image.Pix
	pix[0], pix[1], pix[2], pix[3] = c.R, c.G, c.B, c.A
	for i := 4; i < len(pix); i *= 2 {
		copy(pix[i:], pix[:i])
	}
	t.Stats = Stats{}
}

// Depth returns the stored NDC depth at (x, y), or MaxFloat32 when empty.
func (t *Target) Depth(x, y int) float32 {
	if x < 0 || x >= t.Width || y < 0 || y >= t.Height {
		return gomath.MaxFloat32
	}
	return t.depth[y*t.Width+x]
}

// DrawFrame draws every object of the frame with its primitive mesh.
func (t *Target) DrawFrame(st frame.State, meshes map[string]*mesh.Mesh, m shading.Material) error {
	lit := st.Material(m)
	for _, obj := range st.Objects {
		msh, ok := meshes[obj.Primitive]
		if !ok {
			return fmt.Errorf("object %s: no mesh for primitive %q", obj.Name, obj.Primitive)
		}
		t.DrawObject(msh, obj, st, lit)
	}
	return nil
}

// DrawObject rasterizes one mesh with the object's transforms. The material
// is used as given; see frame.State.Material for the light tint.
func (t *Target) DrawObject(msh *mesh.Mesh, obj frame.ObjectState, st frame.State, m shading.Material) {
	for i := 0; i < msh.TriangleCount(); i++ {
		t.drawTriangle(msh.Triangle(i), obj.Result, st, m)
	}
}

// vertex is a triangle corner after the vertex stage.
type vertex struct {
	x, y  float32 // screen, y down
	z     float32 // NDC depth
	invW  float32
	world math.Vec3
	norm  math.Vec3
	color math.Vec3
}

func (t *Target) drawTriangle(tri [3]mesh.Vertex, r transform.Result, st frame.State, m shading.Material) {
	t.Stats.Triangles++

	var sv [3]vertex
	for i, v := range tri {
		clip := transform.ClipSpace(v.Position, r.MVP)
		w := clip[3]
		// Near-plane crossings are dropped rather than clipped
		if w <= 0 || clip[2] < -w {
			t.Stats.Clipped++
			return
		}
		ndc := clip.PerspectiveDivide()
		sv[i] = vertex{
			x:     (ndc.X + 1) * 0.5 * float32(t.Width),
			y:     (1 - ndc.Y) * 0.5 * float32(t.Height),
			z:     ndc.Z,
			invW:  1 / w,
			world: r.Model.TransformPoint(v.Position),
			norm:  r.Normal.MulVec3(v.Normal),
			color: v.Color,
		}
	}

	// Counter-clockwise in NDC is clockwise on screen (y flipped),
	// so front faces have negative area here.
	area := edge(sv[0], sv[1], sv[2].x, sv[2].y)
	if area >= 0 {
		t.Stats.Culled++
		return
	}

	minX := max(0, int(gomath.Floor(float64(min(sv[0].x, sv[1].x, sv[2].x)))))
	maxX := min(t.Width-1, int(gomath.Ceil(float64(max(sv[0].x, sv[1].x, sv[2].x)))))
	minY := max(0, int(gomath.Floor(float64(min(sv[0].y, sv[1].y, sv[2].y)))))
	maxY := min(t.Height-1, int(gomath.Ceil(float64(max(sv[0].y, sv[1].y, sv[2].y)))))

	light := st.Light.Direction

	for y := minY; y <= maxY; y++ {
		for x := minX; x <= maxX; x++ {
			px, py := float32(x)+0.5, float32(y)+0.5

			b0 := edge(sv[1], sv[2], px, py) / area
			b1 := edge(sv[2], sv[0], px, py) / area
			b2 := edge(sv[0], sv[1], px, py) / area
			if b0 < 0 || b1 < 0 || b2 < 0 {
				continue
			}

			// NDC depth is affine in screen space
			z := b0*sv[0].z + b1*sv[1].z + b2*sv[2].z
			if z > 1 {
				continue
			}
			idx := y*t.Width + x
			if z >= t.depth[idx] {
				continue
			}

			// Perspective-correct weights for everything else
			p0, p1, p2 := b0*sv[0].invW, b1*sv[1].invW, b2*sv[2].invW
			sum := p0 + p1 + p2
			p0, p1, p2 = p0/sum, p1/sum, p2/sum

			world := blend(sv[0].world, sv[1].world, sv[2].world, p0, p1, p2)
			c := shading.Evaluate(shading.Fragment{
				Normal:         blend(sv[0].norm, sv[1].norm, sv[2].norm, p0, p1, p2),
				ViewDirection:  st.CameraPosition.Sub(world),
				LightDirection: light,
				BaseColor:      blend(sv[0].color, sv[1].color, sv[2].color, p0, p1, p2),
			}, m)

			t.depth[idx] = z
			t.Image.SetRGBA(x, y, toRGBA(c))
			t.Stats.Fragments++
		}
	}
}

// edge is twice the signed area of (a, b, p).
func edge(a, b vertex, px, py float32) float32 {
	return (b.x-a.x)*(py-a.y) - (b.y-a.y)*(px-a.x)
}

func blend(a, b, c math.Vec3, wa, wb, wc float32) math.Vec3 {
	return a.Scale(wa).Add(b.Scale(wb)).Add(c.Scale(wc))
}

func toRGBA(c math.Vec4) color.RGBA {
	return color.RGBA{
		R: channel(c[0]),
		G: channel(c[1]),
		B: channel(c[2]),
		A: channel(c[3]),
	}
}

func channel(f float32) uint8 {
	return uint8(min(max(f, 0), 1)*255 + 0.5)
}
