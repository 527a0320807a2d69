// Primitives - an ImGui viewer for Phong-shaded primitives with camera and
// light sliders.
package main

import (
	"fmt"
	"os"
	"runtime"
	"time"

	"github.com/AllenDang/cimgui-go/imgui"
	"go.uber.org/zap"

	"github.com/Faultbox/phong-primitives/internal/config"
	"github.com/Faultbox/phong-primitives/internal/controls"
	"github.com/Faultbox/phong-primitives/internal/engine/capture"
	"github.com/Faultbox/phong-primitives/internal/engine/framebuffer"
	"github.com/Faultbox/phong-primitives/internal/engine/renderer"
	"github.com/Faultbox/phong-primitives/internal/engine/ui"
	"github.com/Faultbox/phong-primitives/internal/frame"
	"github.com/Faultbox/phong-primitives/internal/logger"
	"github.com/Faultbox/phong-primitives/internal/scene"
	"github.com/Faultbox/phong-primitives/pkg/shading"
)

const (
	controlsPanelWidth = float32(300)
	dragDegreesPerPx   = 0.4
	wheelDistanceStep  = 2
)

func main() {
	runtime.LockOSThread()

	config.ParseFlags()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	app, err := NewApp(cfg)
	if err != nil {
		logger.Error("failed to start viewer", zap.Error(err))
		os.Exit(1)
	}
	defer app.Close()

	app.Run()
	logger.Info("viewer closed normally")
}

// App is the viewer state.
type App struct {
	cfg      *config.Config
	backend  *ui.Backend
	fb       *framebuffer.Framebuffer
	renderer *renderer.Renderer
	scene    *scene.Scene
	material shading.Material
	values   controls.Values
	start    time.Time

	lastMouse imgui.Vec2
	drawErr   error

	screenshots         *capture.Screenshot
	screenshotRequested bool
	statusMsg           string
	statusTime          time.Time
}

// NewApp creates the window, the offscreen target and the renderer.
func NewApp(cfg *config.Config) (*App, error) {
	s, err := scene.FromConfig(cfg.Scene)
	if err != nil {
		return nil, fmt.Errorf("building scene: %w", err)
	}
	meshes, err := s.Meshes()
	if err != nil {
		return nil, fmt.Errorf("building meshes: %w", err)
	}

	app := &App{
		cfg:         cfg,
		scene:       s,
		material:    cfg.Material.Shading(),
		values:      cfg.Controls,
		start:       time.Now(),
		screenshots: capture.NewScreenshot("screenshots", "primitives", capture.PNG),
	}

	app.backend, err = ui.NewBackend("Phong Primitives", cfg.Graphics.Width, cfg.Graphics.Height, renderer.DefaultClearColor)
	if err != nil {
		return nil, err
	}

	app.fb, err = framebuffer.New(cfg.Graphics.Width, cfg.Graphics.Height)
	if err != nil {
		return nil, err
	}

	app.renderer, err = renderer.New(renderer.Config{
		Width:      cfg.Graphics.Width,
		Height:     cfg.Graphics.Height,
		ClearColor: renderer.DefaultClearColor,
	}, meshes)
	if err != nil {
		app.fb.Close()
		return nil, err
	}

	logger.Info("viewer ready",
		zap.Int("objects", len(s.Objects)),
		zap.Int("meshes", len(meshes)),
	)
	return app, nil
}

// Close releases GL resources.
func (app *App) Close() {
	if app.renderer != nil {
		app.renderer.Close()
	}
	if app.fb != nil {
		app.fb.Close()
	}
}

// Run starts the main loop.
func (app *App) Run() {
	app.backend.Run(app.render)
}

// render is called each frame to draw the UI.
func (app *App) render() {
	if ui.IsKeyPressed(imgui.KeyF12) {
		app.screenshotRequested = true
	}

	pos, size := ui.Viewport()

	imgui.SetNextWindowPos(pos)
	imgui.SetNextWindowSize(imgui.NewVec2(controlsPanelWidth, size.Y))
	if imgui.BeginV("Controls", nil, ui.PanelFlags) {
		app.renderControls()
	}
	imgui.End()

	imgui.SetNextWindowPos(imgui.NewVec2(pos.X+controlsPanelWidth, pos.Y))
	imgui.SetNextWindowSize(imgui.NewVec2(size.X-controlsPanelWidth, size.Y))
	if imgui.BeginV("Scene", nil, ui.PanelFlags|imgui.WindowFlagsNoScrollbar) {
		app.renderScene()
	}
	imgui.End()
}

func (app *App) renderControls() {
	ui.Sliders(&app.values)

	imgui.Spacing()
	imgui.Separator()

	if imgui.Button("Reset") {
		app.values = controls.Defaults()
	}
	imgui.SameLine()
	if imgui.Button("Save") {
		app.cfg.Controls = app.values
		if err := app.cfg.Save(); err != nil {
			logger.Error("saving config", zap.Error(err))
			app.setStatus("Save failed: " + err.Error())
		} else {
			app.setStatus("Saved to " + config.ConfigDir())
		}
	}
	imgui.SameLine()
	if imgui.Button("Screenshot") {
		app.screenshotRequested = true
	}

	imgui.Separator()
	cam := app.values.Camera()
	imgui.TextDisabled(fmt.Sprintf("Distance: %.1f units", cam.Distance))
	imgui.TextDisabled(fmt.Sprintf("Objects: %d", len(app.scene.Objects)))
	imgui.TextDisabled("(Drag scene to orbit, scroll to zoom, F12 screenshot)")

	if app.statusMsg != "" && time.Since(app.statusTime) < 3*time.Second {
		imgui.Spacing()
		imgui.TextWrapped(app.statusMsg)
	}
}

func (app *App) renderScene() {
	avail := imgui.ContentRegionAvail()
	app.fb.Resize(int(avail.X), int(avail.Y))

	st := frame.Build(app.values, time.Since(app.start), app.fb.Aspect(), app.scene)

	err := app.fb.Render(func() error {
		app.renderer.Begin()
		return app.renderer.Draw(st, app.material)
	})

	// Log once per distinct failure rather than every frame
	if err != nil && (app.drawErr == nil || err.Error() != app.drawErr.Error()) {
		logger.Error("draw failed", zap.Error(err))
	}
	app.drawErr = err

	if app.screenshotRequested {
		app.screenshotRequested = false
		app.captureScreenshot()
	}

	ui.SceneImage(app.fb.Texture(), avail)
	app.handleSceneMouse()
}

// handleSceneMouse orbits with a left drag and zooms with the wheel while
// the scene image is hovered.
func (app *App) handleSceneMouse() {
	mousePos := imgui.MousePos()
	defer func() { app.lastMouse = mousePos }()

	if !imgui.IsItemHovered() {
		return
	}

	if imgui.IsMouseDragging(imgui.MouseButtonLeft) {
		dx := mousePos.X - app.lastMouse.X
		dy := mousePos.Y - app.lastMouse.Y
		_ = app.values.Nudge(controls.CameraAzimuth, dx*dragDegreesPerPx)
		_ = app.values.Nudge(controls.CameraPolar, -dy*dragDegreesPerPx)
	}

	if wheel := imgui.CurrentIO().MouseWheel(); wheel != 0 {
		_ = app.values.Nudge(controls.CameraDistance, -wheel*wheelDistanceStep)
	}
}

func (app *App) captureScreenshot() {
	img, err := app.fb.Image()
	if err == nil {
		var path string
		path, err = app.screenshots.CaptureFromImage(img)
		if err == nil {
			logger.Info("screenshot saved", zap.String("path", path))
			app.setStatus("Saved " + path)
			return
		}
	}
	logger.Error("screenshot failed", zap.Error(err))
	app.setStatus("Screenshot failed: " + err.Error())
}

func (app *App) setStatus(msg string) {
	app.statusMsg = msg
	app.statusTime = time.Now()
}
