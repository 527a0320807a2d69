// Package renderer draws frame states with the Phong program.
package renderer

import (
	"fmt"
	"sort"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"

	"github.com/Faultbox/phong-primitives/internal/engine/mesh"
	"github.com/Faultbox/phong-primitives/internal/engine/shader"
	"github.com/Faultbox/phong-primitives/internal/frame"
	"github.com/Faultbox/phong-primitives/internal/logger"
	"github.com/Faultbox/phong-primitives/pkg/math"
	"github.com/Faultbox/phong-primitives/pkg/shading"
)

// Floats per interleaved vertex: position, color, normal.
const stride = 3 * mesh.Components

// Config holds renderer configuration.
type Config struct {
	Width      int
	Height     int
	ClearColor [4]float32
}

// DefaultClearColor is a dark blue-gray.
var DefaultClearColor = [4]float32{0.1, 0.1, 0.12, 1.0}

// gpuMesh is one uploaded primitive.
type gpuMesh struct {
	vao   uint32
	vbo   uint32
	count int32
}

// Renderer is the rendering context: program, uniform locations and the
// uploaded meshes keyed by primitive name.
type Renderer struct {
	config   Config
	program  uint32
	uniforms map[string]int32
	meshes   map[string]gpuMesh
}

// New compiles the Phong program and uploads every mesh.
// Must be called after the OpenGL context is created.
func New(cfg Config, meshes map[string]*mesh.Mesh) (*Renderer, error) {
	r := &Renderer{
		config: cfg,
		meshes: make(map[string]gpuMesh, len(meshes)),
	}

	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", err)
	}

	logger.Info("OpenGL initialized",
		zap.String("version", gl.GoStr(gl.GetString(gl.VERSION))),
		zap.String("renderer", gl.GoStr(gl.GetString(gl.RENDERER))),
	)

	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LESS)
	gl.Enable(gl.CULL_FACE)
	gl.CullFace(gl.BACK)
	gl.FrontFace(gl.CCW)

	var err error
	r.program, err = shader.CompileProgram(shader.PhongVertex, shader.PhongFragment)
	if err != nil {
		return nil, fmt.Errorf("failed to create shader program: %w", err)
	}
	r.uniforms = shader.Uniforms(r.program, shader.PhongUniforms...)

	// Stable upload order keeps handle numbers reproducible in logs
	names := make([]string, 0, len(meshes))
	for name := range meshes {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		gm, err := createVAO(meshes[name])
		if err != nil {
			r.Close()
			return nil, fmt.Errorf("uploading %s: %w", name, err)
		}
		r.meshes[name] = gm
	}

	r.Resize(cfg.Width, cfg.Height)
	return r, nil
}

// Close frees every GL handle the renderer owns.
func (r *Renderer) Close() {
	logger.Info("closing renderer")
	for name, gm := range r.meshes {
		gl.DeleteVertexArrays(1, &gm.vao)
		gl.DeleteBuffers(1, &gm.vbo)
		delete(r.meshes, name)
	}
	if r.program != 0 {
		gl.DeleteProgram(r.program)
		r.program = 0
	}
}

// Resize handles window resize.
func (r *Renderer) Resize(width, height int) {
	r.config.Width = width
	r.config.Height = height
	gl.Viewport(0, 0, int32(width), int32(height))
	logger.Debug("renderer resized",
		zap.Int("width", width),
		zap.Int("height", height),
	)
}

// Aspect returns the current viewport aspect ratio.
func (r *Renderer) Aspect() float32 {
	return frame.Aspect(r.config.Width, r.config.Height)
}

// Begin clears the current render target.
func (r *Renderer) Begin() {
	c := r.config.ClearColor
	gl.ClearColor(c[0], c[1], c[2], c[3])
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
}

// Draw issues one DrawArrays per object of the frame.
func (r *Renderer) Draw(st frame.State, m shading.Material) error {
	lit := st.Material(m)

	gl.UseProgram(r.program)
	r.setMat4(shader.UniformView, st.View)
	r.setMat4(shader.UniformProjection, st.Projection)
	r.setVec3(shader.UniformLightDirection, st.Light.Direction)
	r.setVec3(shader.UniformCameraPosition, st.CameraPosition)
	r.setVec3(shader.UniformLightColor, lit.LightColor)
	gl.Uniform1f(r.uniforms[shader.UniformAmbient], lit.Ambient)
	gl.Uniform1f(r.uniforms[shader.UniformDiffuse], lit.Diffuse)
	gl.Uniform1f(r.uniforms[shader.UniformSpecular], lit.Specular)
	gl.Uniform1f(r.uniforms[shader.UniformShininess], lit.Shininess)
	gl.Uniform1f(r.uniforms[shader.UniformGamma], lit.Gamma)

	for _, obj := range st.Objects {
		gm, ok := r.meshes[obj.Primitive]
		if !ok {
			return fmt.Errorf("object %s: no mesh for primitive %q", obj.Name, obj.Primitive)
		}

		r.setMat4(shader.UniformModel, obj.Model)
		normal := obj.Normal
		gl.UniformMatrix3fv(r.uniforms[shader.UniformNormal], 1, false, normal.Ptr())

		gl.BindVertexArray(gm.vao)
		gl.DrawArrays(gl.TRIANGLES, 0, gm.count)
	}
	gl.BindVertexArray(0)

	return nil
}

func (r *Renderer) setMat4(name string, m math.Mat4) {
	gl.UniformMatrix4fv(r.uniforms[name], 1, false, m.Ptr())
}

func (r *Renderer) setVec3(name string, v math.Vec3) {
	gl.Uniform3f(r.uniforms[name], v.X, v.Y, v.Z)
}

// createVAO uploads a mesh as one interleaved buffer and sets up the
// position, color and normal attributes.
func createVAO(m *mesh.Mesh) (gpuMesh, error) {
	if err := m.Validate(); err != nil {
		return gpuMesh{}, err
	}

	vertices := interleave(m)
	gm := gpuMesh{count: int32(m.VertexCount())}

	gl.GenVertexArrays(1, &gm.vao)
	gl.BindVertexArray(gm.vao)

	gl.GenBuffers(1, &gm.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, gm.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(vertices)*4, unsafe.Pointer(&vertices[0]), gl.STATIC_DRAW)

	attribs := []struct {
		location uint32
		offset   int
	}{
		{shader.LocationPosition, 0},
		{shader.LocationColor, mesh.Components},
		{shader.LocationNormal, 2 * mesh.Components},
	}
	for _, a := range attribs {
		gl.VertexAttribPointerWithOffset(a.location, mesh.Components, gl.FLOAT, false, stride*4, uintptr(a.offset*4))
		gl.EnableVertexAttribArray(a.location)
	}

	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	gl.BindVertexArray(0)

	logger.Debug("mesh uploaded",
		zap.String("mesh", m.Name),
		zap.Int32("vertices", gm.count),
		zap.Uint32("vao", gm.vao),
		zap.Uint32("vbo", gm.vbo),
	)
	return gm, nil
}

// interleave packs position, color and normal per vertex. Meshes without
// normals get zero normals, which shade with ambient light only.
func interleave(m *mesh.Mesh) []float32 {
	out := make([]float32, 0, m.VertexCount()*stride)
	for i := 0; i < m.VertexCount(); i++ {
		v := m.Vertex(i)
		out = append(out,
			v.Position.X, v.Position.Y, v.Position.Z,
			v.Color.X, v.Color.Y, v.Color.Z,
			v.Normal.X, v.Normal.Y, v.Normal.Z,
		)
	}
	return out
}

// ReadPixels reads the displayed front buffer as RGBA rows, bottom row first.
func ReadPixels(width, height int) []byte {
	pixels := make([]byte, width*height*4)
	gl.ReadBuffer(gl.FRONT)
	gl.ReadPixels(0, 0, int32(width), int32(height), gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(pixels))
	gl.ReadBuffer(gl.BACK)
	return pixels
}
