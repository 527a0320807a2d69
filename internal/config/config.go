// Package config handles viewer configuration loading and management.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/Faultbox/phong-primitives/internal/controls"
	"github.com/Faultbox/phong-primitives/pkg/math"
	"github.com/Faultbox/phong-primitives/pkg/shading"
)

// Config holds all viewer settings.
type Config struct {
	Graphics GraphicsConfig  `yaml:"graphics"`
	Controls controls.Values `yaml:"controls"`
	Material MaterialConfig  `yaml:"material"`
	Scene    SceneConfig     `yaml:"scene"`
	Render   RenderConfig    `yaml:"render"`
	Logging  LoggingConfig   `yaml:"logging"`
}

// GraphicsConfig holds display and rendering settings.
type GraphicsConfig struct {
	Width      int  `yaml:"width"`
	Height     int  `yaml:"height"`
	Fullscreen bool `yaml:"fullscreen"`
	VSync      bool `yaml:"vsync"`
	FPS        int  `yaml:"fps"`
}

// MaterialConfig holds the fixed Phong constants.
type MaterialConfig struct {
	Ambient    float32    `yaml:"ambient"`
	Diffuse    float32    `yaml:"diffuse"`
	Specular   float32    `yaml:"specular"`
	Shininess  float32    `yaml:"shininess"`
	LightColor [3]float32 `yaml:"light_color"`
	Gamma      float32    `yaml:"gamma"`
}

// SceneConfig lists the drawn objects. Empty means the built-in scene.
type SceneConfig struct {
	Objects []ObjectConfig `yaml:"objects"`
}

// ObjectConfig places one primitive. Rotation is in radians.
type ObjectConfig struct {
	Name        string       `yaml:"name"`
	Primitive   string       `yaml:"primitive"`
	Translation [3]float32   `yaml:"translation"`
	Rotation    [3]float32   `yaml:"rotation"`
	Scale       *[3]float32  `yaml:"scale"`
	Pulse       *PulseConfig `yaml:"pulse"`
}

// PulseConfig animates one scale axis.
type PulseConfig struct {
	Axis      string  `yaml:"axis"`
	Rate      float32 `yaml:"rate"`
	Offset    float32 `yaml:"offset"`
	Amplitude float32 `yaml:"amplitude"`
}

// RenderConfig holds settings for offline frame rendering.
type RenderConfig struct {
	Frames    int           `yaml:"frames"`
	Duration  time.Duration `yaml:"duration"`
	OutputDir string        `yaml:"output_dir"`
	Width     int           `yaml:"width"`
	Height    int           `yaml:"height"`
	GLTF      string        `yaml:"gltf"` // optional .glb export of the rest pose
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	m := shading.DefaultMaterial()
	return &Config{
		Graphics: GraphicsConfig{
			Width:      1280,
			Height:     720,
			Fullscreen: false,
			VSync:      true,
			FPS:        60,
		},
		Controls: controls.Defaults(),
		Material: MaterialConfig{
			Ambient:    m.Ambient,
			Diffuse:    m.Diffuse,
			Specular:   m.Specular,
			Shininess:  m.Shininess,
			LightColor: m.LightColor.Array(),
			Gamma:      m.Gamma,
		},
		Render: RenderConfig{
			Frames:    120,
			Duration:  4 * time.Second,
			OutputDir: "render/animation",
			Width:     640,
			Height:    360,
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}

// Shading converts the material section.
func (m MaterialConfig) Shading() shading.Material {
	return shading.Material{
		Ambient:    m.Ambient,
		Diffuse:    m.Diffuse,
		Specular:   m.Specular,
		Shininess:  m.Shininess,
		LightColor: math.Vec3{X: m.LightColor[0], Y: m.LightColor[1], Z: m.LightColor[2]},
		Gamma:      m.Gamma,
	}
}

// Validate rejects settings no component can work with.
func (c *Config) Validate() error {
	var errs []error
	if c.Graphics.Width <= 0 || c.Graphics.Height <= 0 {
		errs = append(errs, fmt.Errorf("graphics: size %dx%d must be positive", c.Graphics.Width, c.Graphics.Height))
	}
	if c.Graphics.FPS <= 0 {
		errs = append(errs, fmt.Errorf("graphics: fps %d must be positive", c.Graphics.FPS))
	}
	if c.Material.Gamma <= 0 {
		errs = append(errs, fmt.Errorf("material: gamma %g must be positive", c.Material.Gamma))
	}
	if c.Material.Shininess < 0 {
		errs = append(errs, fmt.Errorf("material: shininess %g must not be negative", c.Material.Shininess))
	}
	if c.Render.Frames <= 0 {
		errs = append(errs, fmt.Errorf("render: frames %d must be positive", c.Render.Frames))
	}
	if c.Render.Width <= 0 || c.Render.Height <= 0 {
		errs = append(errs, fmt.Errorf("render: size %dx%d must be positive", c.Render.Width, c.Render.Height))
	}
	return errors.Join(errs...)
}
