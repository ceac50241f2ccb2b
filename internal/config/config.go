// Package config loads the viewer configuration from YAML.
package config

import (
	"errors"
	"fmt"
	"math"
	"os"

	"github.com/go-gl/mathgl/mgl32"
	"gopkg.in/yaml.v3"

	"github.com/leterax/go-viewport/internal/logger"
)

// ErrInvalid is returned when a configuration value is out of range
var ErrInvalid = errors.New("invalid configuration")

// Config is the complete viewer configuration
type Config struct {
	Window     WindowConfig     `yaml:"window"`
	Camera     CameraConfig     `yaml:"camera"`
	Input      InputConfig      `yaml:"input"`
	Projection ProjectionConfig `yaml:"projection"`
	Scene      SceneConfig      `yaml:"scene"`
	Log        logger.Config    `yaml:"log"`
}

// WindowConfig describes the display window
type WindowConfig struct {
	Width         int    `yaml:"width"`
	Height        int    `yaml:"height"`
	Title         string `yaml:"title"`
	VSync         bool   `yaml:"vsync"`
	CaptureCursor bool   `yaml:"capture_cursor"`
}

// CameraConfig holds the initial camera parameters
type CameraConfig struct {
	Position         mgl32.Vec3 `yaml:"position"`
	Front            mgl32.Vec3 `yaml:"front"`
	Up               mgl32.Vec3 `yaml:"up"`
	Zoom             float32    `yaml:"zoom"`
	MouseSensitivity float32    `yaml:"mouse_sensitivity"`
}

// InputConfig controls how mouse and keyboard input move the camera
type InputConfig struct {
	MouseSensitivity   float32 `yaml:"mouse_sensitivity"`
	MoveSpeed          float32 `yaml:"move_speed"`
	ScrollStep         float32 `yaml:"scroll_step"`
	MinSpeedMultiplier float32 `yaml:"min_speed_multiplier"`
	MaxSpeedMultiplier float32 `yaml:"max_speed_multiplier"`
	MouseAdjustsSpeed  bool    `yaml:"mouse_adjusts_speed"`
}

// ProjectionConfig holds the clip planes and the orthographic volume
type ProjectionConfig struct {
	Near         float32 `yaml:"near"`
	Far          float32 `yaml:"far"`
	OrthoExtent  float32 `yaml:"ortho_extent"`
	Orthographic bool    `yaml:"orthographic"`
}

// SceneConfig describes the demo scene drawn by the viewer
type SceneConfig struct {
	Size      int     `yaml:"size"`
	Spacing   float32 `yaml:"spacing"`
	Amplitude float32 `yaml:"amplitude"`
	Frequency float32 `yaml:"frequency"`
	Octaves   int     `yaml:"octaves"`
	Alpha     float32 `yaml:"alpha"`
}

// Default returns the built-in configuration
func Default() Config {
	return Config{
		Window: WindowConfig{
			Width:  1000,
			Height: 800,
			Title:  "3D Scene",
			VSync:  true,
		},
		Camera: CameraConfig{
			Position:         mgl32.Vec3{0, 5, 12},
			Front:            mgl32.Vec3{0, -0.5, -2},
			Up:               mgl32.Vec3{0, 1, 0},
			Zoom:             80,
			MouseSensitivity: 0.1,
		},
		Input: InputConfig{
			MouseSensitivity:   2.5,
			MoveSpeed:          5.0,
			ScrollStep:         0.1,
			MinSpeedMultiplier: 0.1,
			MaxSpeedMultiplier: 10.0,
		},
		Projection: ProjectionConfig{
			Near:        0.1,
			Far:         100.0,
			OrthoExtent: 10.0,
		},
		Scene: SceneConfig{
			Size:      16,
			Spacing:   1.5,
			Amplitude: 3.0,
			Frequency: 0.08,
			Octaves:   3,
			Alpha:     0.85,
		},
		Log: logger.DefaultConfig(),
	}
}

// Load reads the YAML file at path on top of the defaults and validates the result.
// An empty path returns the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config file: %w", err)
	}

	return Parse(data)
}

// Parse decodes YAML data on top of the defaults and validates the result
func Parse(data []byte) (Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Validate checks every value the view manager relies on
func (c Config) Validate() error {
	if name, ok := c.nonFinite(); ok {
		return fmt.Errorf("%w: %s must be finite", ErrInvalid, name)
	}

	switch {
	case c.Window.Width <= 0 || c.Window.Height <= 0:
		return fmt.Errorf("%w: window size %dx%d", ErrInvalid, c.Window.Width, c.Window.Height)
	case c.Camera.Front.Len() == 0:
		return fmt.Errorf("%w: camera front must be non-zero", ErrInvalid)
	case c.Camera.Up.Len() == 0:
		return fmt.Errorf("%w: camera up must be non-zero", ErrInvalid)
	case c.Camera.Zoom <= 0:
		return fmt.Errorf("%w: camera zoom %v", ErrInvalid, c.Camera.Zoom)
	case c.Input.MoveSpeed < 0:
		return fmt.Errorf("%w: move speed %v", ErrInvalid, c.Input.MoveSpeed)
	case c.Input.MinSpeedMultiplier <= 0 || c.Input.MinSpeedMultiplier > c.Input.MaxSpeedMultiplier:
		return fmt.Errorf("%w: speed multiplier range [%v, %v]", ErrInvalid,
			c.Input.MinSpeedMultiplier, c.Input.MaxSpeedMultiplier)
	case c.Projection.Near <= 0 || c.Projection.Far <= c.Projection.Near:
		return fmt.Errorf("%w: clip planes near=%v far=%v", ErrInvalid, c.Projection.Near, c.Projection.Far)
	case c.Projection.OrthoExtent <= 0:
		return fmt.Errorf("%w: ortho extent %v", ErrInvalid, c.Projection.OrthoExtent)
	case c.Scene.Size < 0:
		return fmt.Errorf("%w: scene size %d", ErrInvalid, c.Scene.Size)
	case c.Scene.Alpha < 0 || c.Scene.Alpha > 1:
		return fmt.Errorf("%w: scene alpha %v", ErrInvalid, c.Scene.Alpha)
	}
	return nil
}

// nonFinite reports the first float setting that is NaN or infinite
func (c Config) nonFinite() (string, bool) {
	values := []struct {
		name  string
		value float32
	}{
		{"camera.position.x", c.Camera.Position.X()},
		{"camera.position.y", c.Camera.Position.Y()},
		{"camera.position.z", c.Camera.Position.Z()},
		{"camera.front.x", c.Camera.Front.X()},
		{"camera.front.y", c.Camera.Front.Y()},
		{"camera.front.z", c.Camera.Front.Z()},
		{"camera.up.x", c.Camera.Up.X()},
		{"camera.up.y", c.Camera.Up.Y()},
		{"camera.up.z", c.Camera.Up.Z()},
		{"camera.zoom", c.Camera.Zoom},
		{"camera.mouse_sensitivity", c.Camera.MouseSensitivity},
		{"input.mouse_sensitivity", c.Input.MouseSensitivity},
		{"input.move_speed", c.Input.MoveSpeed},
		{"input.scroll_step", c.Input.ScrollStep},
		{"input.min_speed_multiplier", c.Input.MinSpeedMultiplier},
		{"input.max_speed_multiplier", c.Input.MaxSpeedMultiplier},
		{"projection.near", c.Projection.Near},
		{"projection.far", c.Projection.Far},
		{"projection.ortho_extent", c.Projection.OrthoExtent},
		{"scene.spacing", c.Scene.Spacing},
		{"scene.amplitude", c.Scene.Amplitude},
		{"scene.frequency", c.Scene.Frequency},
		{"scene.alpha", c.Scene.Alpha},
	}

	for _, v := range values {
		f := float64(v.value)
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return v.name, true
		}
	}
	return "", false
}
