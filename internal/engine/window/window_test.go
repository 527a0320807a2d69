package window

import (
	"testing"

	"github.com/veandco/go-sdl2/sdl"

	"github.com/Faultbox/phong-primitives/internal/config"
)

func TestWindowFlags(t *testing.T) {
	windowed := windowFlags(config.GraphicsConfig{})
	for _, f := range []uint32{sdl.WINDOW_OPENGL, sdl.WINDOW_RESIZABLE, sdl.WINDOW_ALLOW_HIGHDPI} {
		if windowed&f == 0 {
			t.Errorf("windowed flags %#x missing %#x", windowed, f)
		}
	}
	if windowed&sdl.WINDOW_FULLSCREEN_DESKTOP != 0 {
		t.Errorf("windowed flags %#x include fullscreen", windowed)
	}

	full := windowFlags(config.GraphicsConfig{Fullscreen: true})
	if full&sdl.WINDOW_FULLSCREEN_DESKTOP == 0 {
		t.Errorf("fullscreen flags %#x missing fullscreen", full)
	}
}

func TestSwapInterval(t *testing.T) {
	if got := swapInterval(config.GraphicsConfig{VSync: true}); got != 1 {
		t.Errorf("vsync interval = %d, want 1", got)
	}
	if got := swapInterval(config.GraphicsConfig{}); got != 0 {
		t.Errorf("no vsync interval = %d, want 0", got)
	}
}
