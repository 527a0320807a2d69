// Package controls holds the slider state that drives the camera and light.
//
// Slider names are a binding contract with the UI front ends; values are
// kept in slider units (degrees, tenths of a world unit) and converted on
// read, the same way the sliders are labelled.
package controls

import (
	"fmt"
	gomath "math"
)

// Slider names.
const (
	CameraAzimuth  = "camera_azimuthal_angle"
	CameraPolar    = "camera_polar_angle"
	CameraDistance = "camera_distance"
	CameraFov      = "camera_fov"
	LightAzimuth   = "light_azimuthal_angle"
	LightPolar     = "light_polar_angle"
)

// DistanceUnits is the number of slider steps per world unit.
const DistanceUnits = 10

// Slider describes one named range control.
type Slider struct {
	Name    string
	Label   string
	Min     float32
	Max     float32
	Default float32
	Format  string
}

// Clamp limits v to the slider range.
func (s Slider) Clamp(v float32) float32 {
	return min(max(v, s.Min), s.Max)
}

// Sliders lists every control in display order.
var Sliders = []Slider{
	{Name: CameraAzimuth, Label: "Camera azimuth", Min: 0, Max: 360, Default: 45, Format: "%.0f°"},
	{Name: CameraPolar, Label: "Camera polar", Min: 1, Max: 179, Default: 60, Format: "%.0f°"},
	{Name: CameraDistance, Label: "Camera distance", Min: 1, Max: 100, Default: 50, Format: "%.0f"},
	{Name: CameraFov, Label: "Field of view", Min: 10, Max: 120, Default: 45, Format: "%.0f°"},
	{Name: LightAzimuth, Label: "Light azimuth", Min: 0, Max: 360, Default: 90, Format: "%.0f°"},
	{Name: LightPolar, Label: "Light polar", Min: 0, Max: 180, Default: 45, Format: "%.0f°"},
}

// Lookup returns the slider with the given name.
func Lookup(name string) (Slider, bool) {
	for _, s := range Sliders {
		if s.Name == name {
			return s, true
		}
	}
	return Slider{}, false
}

// Values holds the current slider positions in slider units.
type Values struct {
	CameraAzimuth  float32 `yaml:"camera_azimuthal_angle"`
	CameraPolar    float32 `yaml:"camera_polar_angle"`
	CameraDistance float32 `yaml:"camera_distance"`
	CameraFov      float32 `yaml:"camera_fov"`
	LightAzimuth   float32 `yaml:"light_azimuthal_angle"`
	LightPolar     float32 `yaml:"light_polar_angle"`
}

// Defaults returns every slider at its default position.
func Defaults() Values {
	var v Values
	for _, s := range Sliders {
		*v.field(s.Name) = s.Default
	}
	return v
}

// Get returns the slider value by name.
func (v *Values) Get(name string) (float32, error) {
	f := v.field(name)
	if f == nil {
		return 0, fmt.Errorf("unknown slider %q", name)
	}
	return *f, nil
}

// Set stores a slider value by name, clamped to the slider range.
func (v *Values) Set(name string, value float32) error {
	s, ok := Lookup(name)
	if !ok {
		return fmt.Errorf("unknown slider %q", name)
	}
	*v.field(name) = s.Clamp(value)
	return nil
}

// Nudge moves a slider by delta, clamped to the slider range.
func (v *Values) Nudge(name string, delta float32) error {
	cur, err := v.Get(name)
	if err != nil {
		return err
	}
	return v.Set(name, cur+delta)
}

// Ptr exposes the backing field for immediate-mode widgets.
// Returns nil for unknown names.
func (v *Values) Ptr(name string) *float32 {
	return v.field(name)
}

// Clamped returns a copy with every value inside its slider range.
func (v Values) Clamped() Values {
	for _, s := range Sliders {
		f := v.field(s.Name)
		*f = s.Clamp(*f)
	}
	return v
}

func (v *Values) field(name string) *float32 {
	switch name {
	case CameraAzimuth:
		return &v.CameraAzimuth
	case CameraPolar:
		return &v.CameraPolar
	case CameraDistance:
		return &v.CameraDistance
	case CameraFov:
		return &v.CameraFov
	case LightAzimuth:
		return &v.LightAzimuth
	case LightPolar:
		return &v.LightPolar
	}
	return nil
}

// CameraParams are the slider values converted to radians and world units.
type CameraParams struct {
	Azimuth     float32
	Polar       float32
	Distance    float32
	FieldOfView float32
}

// LightParams are the light slider values in radians.
type LightParams struct {
	Azimuth float32
	Polar   float32
}

// Camera converts the camera sliders.
func (v Values) Camera() CameraParams {
	return CameraParams{
		Azimuth:     Radians(v.CameraAzimuth),
		Polar:       Radians(v.CameraPolar),
		Distance:    v.CameraDistance / DistanceUnits,
		FieldOfView: Radians(v.CameraFov),
	}
}

// Light converts the light sliders.
func (v Values) Light() LightParams {
	return LightParams{
		Azimuth: Radians(v.LightAzimuth),
		Polar:   Radians(v.LightPolar),
	}
}

// Radians converts degrees to radians.
func Radians(deg float32) float32 {
	return deg / 360 * 2 * gomath.Pi
}
