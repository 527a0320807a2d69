// Package framebuffer provides the offscreen target the scene panel draws
// into before the UI shows it as a texture.
package framebuffer

import (
	"fmt"
	"image"

	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"

	"github.com/Faultbox/phong-primitives/internal/engine/capture"
	"github.com/Faultbox/phong-primitives/internal/frame"
	"github.com/Faultbox/phong-primitives/internal/logger"
)

// Framebuffer is an RGBA8 color texture plus a 24-bit depth renderbuffer.
type Framebuffer struct {
	fbo   uint32
	color uint32
	depth uint32
	w, h  int32
}

// New allocates a target of at least 1x1 pixels.
func New(width, height int) (*Framebuffer, error) {
	fb := &Framebuffer{}
	fb.w, fb.h = clampSize(width, height)

	gl.GenFramebuffers(1, &fb.fbo)
	gl.GenTextures(1, &fb.color)
	gl.GenRenderbuffers(1, &fb.depth)

	gl.BindFramebuffer(gl.FRAMEBUFFER, fb.fbo)
	fb.allocate()
	gl.FramebufferTexture2D(gl.FRAMEBUFFER, gl.COLOR_ATTACHMENT0, gl.TEXTURE_2D, fb.color, 0)
	gl.FramebufferRenderbuffer(gl.FRAMEBUFFER, gl.DEPTH_ATTACHMENT, gl.RENDERBUFFER, fb.depth)

	status := gl.CheckFramebufferStatus(gl.FRAMEBUFFER)
	gl.BindFramebuffer(gl.FRAMEBUFFER, 0)
	if status != gl.FRAMEBUFFER_COMPLETE {
		fb.Close()
		return nil, fmt.Errorf("scene framebuffer incomplete: 0x%x", status)
	}

	logger.Debug("scene framebuffer created",
		zap.Uint32("fbo", fb.fbo),
		zap.Int32("width", fb.w),
		zap.Int32("height", fb.h),
	)
	return fb, nil
}

// allocate (re)creates attachment storage at the current size.
func (fb *Framebuffer) allocate() {
	gl.BindTexture(gl.TEXTURE_2D, fb.color)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA8, fb.w, fb.h, 0, gl.RGBA, gl.UNSIGNED_BYTE, nil)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
	gl.BindTexture(gl.TEXTURE_2D, 0)

	gl.BindRenderbuffer(gl.RENDERBUFFER, fb.depth)
	gl.RenderbufferStorage(gl.RENDERBUFFER, gl.DEPTH_COMPONENT24, fb.w, fb.h)
	gl.BindRenderbuffer(gl.RENDERBUFFER, 0)
}

// Render binds the target with a matching viewport, runs draw, then restores
// whatever framebuffer and viewport the UI had bound.
func (fb *Framebuffer) Render(draw func() error) error {
	var prevFBO int32
	var prevViewport [4]int32
	gl.GetIntegerv(gl.FRAMEBUFFER_BINDING, &prevFBO)
	gl.GetIntegerv(gl.VIEWPORT, &prevViewport[0])

	gl.BindFramebuffer(gl.FRAMEBUFFER, fb.fbo)
	gl.Viewport(0, 0, fb.w, fb.h)
	defer func() {
		gl.BindFramebuffer(gl.FRAMEBUFFER, uint32(prevFBO))
		gl.Viewport(prevViewport[0], prevViewport[1], prevViewport[2], prevViewport[3])
	}()

	return draw()
}

// Texture is the color attachment shown by the scene panel.
func (fb *Framebuffer) Texture() uint32 {
	return fb.color
}

// Size returns the target size in pixels.
func (fb *Framebuffer) Size() (width, height int) {
	return int(fb.w), int(fb.h)
}

// Aspect returns width/height.
func (fb *Framebuffer) Aspect() float32 {
	return frame.Aspect(int(fb.w), int(fb.h))
}

// Resize reallocates storage when the panel size changes.
func (fb *Framebuffer) Resize(width, height int) {
	w, h := clampSize(width, height)
	if w == fb.w && h == fb.h {
		return
	}
	fb.w, fb.h = w, h
	fb.allocate()
	logger.Debug("scene framebuffer resized", zap.Int32("width", w), zap.Int32("height", h))
}

// Image reads the color attachment back as a top-down image.
func (fb *Framebuffer) Image() (*image.RGBA, error) {
	pixels := make([]byte, int(fb.w)*int(fb.h)*4)
	err := fb.Render(func() error {
		gl.ReadPixels(0, 0, fb.w, fb.h, gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(pixels))
		return nil
	})
	if err != nil {
		return nil, err
	}
	return capture.FromGLPixels(pixels, int(fb.w), int(fb.h))
}

// Close releases the GL objects.
func (fb *Framebuffer) Close() {
	if fb.fbo != 0 {
		gl.DeleteFramebuffers(1, &fb.fbo)
		fb.fbo = 0
	}
	if fb.color != 0 {
		gl.DeleteTextures(1, &fb.color)
		fb.color = 0
	}
	if fb.depth != 0 {
		gl.DeleteRenderbuffers(1, &fb.depth)
		fb.depth = 0
	}
}

func clampSize(width, height int) (int32, int32) {
	return int32(max(width, 1)), int32(max(height, 1))
}
