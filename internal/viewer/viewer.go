// Package viewer implements the plain SDL orbit viewer: keyboard and mouse
// drive the sliders, springs ease them, and the renderer draws each frame.
package viewer

import (
	"fmt"
	"time"

	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/zap"

	"github.com/Faultbox/phong-primitives/internal/config"
	"github.com/Faultbox/phong-primitives/internal/controls"
	"github.com/Faultbox/phong-primitives/internal/engine/capture"
	"github.com/Faultbox/phong-primitives/internal/engine/input"
	"github.com/Faultbox/phong-primitives/internal/engine/renderer"
	"github.com/Faultbox/phong-primitives/internal/engine/window"
	"github.com/Faultbox/phong-primitives/internal/frame"
	"github.com/Faultbox/phong-primitives/internal/logger"
	"github.com/Faultbox/phong-primitives/internal/scene"
	"github.com/Faultbox/phong-primitives/pkg/shading"
)

const title = "Phong Primitives - Orbit"

// Viewer is the orbit viewer instance.
type Viewer struct {
	cfg      *config.Config
	running  bool
	window   *window.Window
	renderer *renderer.Renderer
	input    *input.Input
	smoother *controls.Smoother
	scene    *scene.Scene
	material shading.Material
}

// New creates the window, renderer and input handler.
func New(cfg *config.Config) (*Viewer, error) {
	logger.Info("initializing viewer",
		zap.Int("width", cfg.Graphics.Width),
		zap.Int("height", cfg.Graphics.Height),
	)

	s, err := scene.FromConfig(cfg.Scene)
	if err != nil {
		return nil, fmt.Errorf("building scene: %w", err)
	}
	meshes, err := s.Meshes()
	if err != nil {
		return nil, fmt.Errorf("building meshes: %w", err)
	}

	v := &Viewer{
		cfg:      cfg,
		scene:    s,
		material: cfg.Material.Shading(),
		smoother: controls.NewSmoother(cfg.Graphics.FPS, cfg.Controls),
		input:    input.New(),
	}

	// Window first: the renderer needs its GL context
	v.window, err = window.New(title, cfg.Graphics)
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	w, h := v.window.DrawableSize()
	v.renderer, err = renderer.New(renderer.Config{
		Width:      w,
		Height:     h,
		ClearColor: renderer.DefaultClearColor,
	}, meshes)
	if err != nil {
		v.window.Close()
		return nil, fmt.Errorf("failed to create renderer: %w", err)
	}

	logger.Info("viewer initialized")
	return v, nil
}

// Run starts the main loop. It returns when the window is closed or Escape
// is pressed.
func (v *Viewer) Run() error {
	v.running = true

	start := time.Now()
	lastTime := start
	frameCount := 0
	fpsTimer := start

	logger.Info("starting viewer loop")

	for v.running {
		now := time.Now()
		dt := float32(now.Sub(lastTime).Seconds())
		lastTime = now

		if v.input.Update() {
			v.running = false
			break
		}
		v.handleEvents()

		ApplyBindings(v.smoother, v.input.IsKeyHeld, dt)
		values := v.smoother.Update()

		st := frame.Build(values, now.Sub(start), v.renderer.Aspect(), v.scene)
		v.renderer.Begin()
		if err := v.renderer.Draw(st, v.material); err != nil {
			return fmt.Errorf("render error: %w", err)
		}
		v.window.SwapBuffers()

		frameCount++
		if since := time.Since(fpsTimer); since >= time.Second/4 {
			v.window.SetTitle(Title(values, float64(frameCount)/since.Seconds()))
			logger.Debug("fps", zap.Int("count", frameCount), zap.Duration("window", since))
			frameCount = 0
			fpsTimer = time.Now()
		}
	}

	return nil
}

func (v *Viewer) handleEvents() {
	for _, event := range v.input.Events() {
		switch event.Type {
		case input.EventWindowResize:
			w, h := v.window.DrawableSize()
			v.renderer.Resize(w, h)
		case input.EventKeyDown:
			switch event.Key {
			case sdl.SCANCODE_ESCAPE:
				v.running = false
			case sdl.SCANCODE_R:
				v.smoother.Target = controls.Defaults()
			case sdl.SCANCODE_F12:
				v.screenshot()
			}
		case input.EventMouseMove:
			if v.input.IsButtonHeld(sdl.BUTTON_LEFT) {
				_ = v.smoother.Nudge(controls.CameraAzimuth, float32(event.DeltaX)*DragDegreesPerPx)
				_ = v.smoother.Nudge(controls.CameraPolar, -float32(event.DeltaY)*DragDegreesPerPx)
			}
		case input.EventMouseWheel:
			_ = v.smoother.Nudge(controls.CameraDistance, -float32(event.DeltaY)*WheelDistanceStep)
		}
	}
}

// screenshot reads the back buffer just drawn.
func (v *Viewer) screenshot() {
	w, h := v.window.DrawableSize()
	pixels := renderer.ReadPixels(w, h)
	path, err := capture.NewScreenshot("screenshots", "orbit", capture.PNG).CaptureFromPixels(pixels, w, h)
	if err != nil {
		logger.Error("screenshot failed", zap.Error(err))
		return
	}
	logger.Info("screenshot saved", zap.String("path", path))
}

// Close cleans up viewer resources.
func (v *Viewer) Close() {
	logger.Info("closing viewer")

	if v.renderer != nil {
		v.renderer.Close()
	}
	if v.window != nil {
		v.window.Close()
	}
}

// Title formats the window title from the eased slider values.
func Title(v controls.Values, fps float64) string {
	return fmt.Sprintf("%s | cam az %.0f° pol %.0f° dist %.1f fov %.0f° | light az %.0f° pol %.0f° | %.0f fps",
		title,
		v.CameraAzimuth, v.CameraPolar, v.Camera().Distance, v.CameraFov,
		v.LightAzimuth, v.LightPolar,
		fps,
	)
}
