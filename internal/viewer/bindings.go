package viewer

import (
	"github.com/veandco/go-sdl2/sdl"

	"github.com/Faultbox/phong-primitives/internal/controls"
)

// Binding moves a slider while a key is held.
type Binding struct {
	Key    sdl.Scancode
	Slider string
	Rate   float32 // slider units per second
}

// Bindings is the keyboard layout of the orbit viewer.
var Bindings = []Binding{
	{sdl.SCANCODE_LEFT, controls.CameraAzimuth, -90},
	{sdl.SCANCODE_RIGHT, controls.CameraAzimuth, 90},
	{sdl.SCANCODE_UP, controls.CameraPolar, -60},
	{sdl.SCANCODE_DOWN, controls.CameraPolar, 60},
	{sdl.SCANCODE_PAGEUP, controls.CameraDistance, -40},
	{sdl.SCANCODE_PAGEDOWN, controls.CameraDistance, 40},
	{sdl.SCANCODE_LEFTBRACKET, controls.CameraFov, -30},
	{sdl.SCANCODE_RIGHTBRACKET, controls.CameraFov, 30},
	{sdl.SCANCODE_A, controls.LightAzimuth, -90},
	{sdl.SCANCODE_D, controls.LightAzimuth, 90},
	{sdl.SCANCODE_W, controls.LightPolar, -60},
	{sdl.SCANCODE_S, controls.LightPolar, 60},
}

// Mouse sensitivity.
const (
	DragDegreesPerPx  = 0.4
	WheelDistanceStep = 2
)

// ApplyBindings nudges the smoother's targets for every held key.
func ApplyBindings(s *controls.Smoother, held func(sdl.Scancode) bool, dt float32) {
	for _, b := range Bindings {
		if held(b.Key) {
			_ = s.Nudge(b.Slider, b.Rate*dt)
		}
	}
}
