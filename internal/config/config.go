package config

import (
	"errors"
	"fmt"
	"math"
	"os"

	"gopkg.in/yaml.v3"
)

const (
	DefaultWidth    = 1280
	DefaultHeight   = 720
	DefaultFPS      = 60
	DefaultFOV      = 75.0
	DefaultNear     = 0.1
	DefaultFar      = 1000.0
	DefaultDistance = 250.0
	DefaultSpin     = 0.005
	DefaultDamping  = 0.05
	DefaultTheme    = "cyberpunk"
)

var (
	ErrUnknownPreset = errors.New("config: unknown preset")
	ErrInvalid       = errors.New("config: invalid value")
)

type Config struct {
	Window  WindowConfig `yaml:"window" json:"window"`
	Camera  CameraConfig `yaml:"camera" json:"camera"`
	Spin    float64      `yaml:"spin" json:"spin"`
	Shadows bool         `yaml:"shadows" json:"shadows"`
	Theme   string       `yaml:"theme" json:"theme"`
}

type WindowConfig struct {
	Width     int    `yaml:"width" json:"width"`
	Height    int    `yaml:"height" json:"height"`
	Title     string `yaml:"title" json:"title"`
	FPS       int    `yaml:"fps" json:"fps"`
	Antialias bool   `yaml:"antialias" json:"antialias"`
}

type CameraConfig struct {
	FOV           float64 `yaml:"fov" json:"fov"`
	Near          float64 `yaml:"near" json:"near"`
	Far           float64 `yaml:"far" json:"far"`
	Distance      float64 `yaml:"distance" json:"distance"`
	Damping       bool    `yaml:"damping" json:"damping"`
	DampingFactor float64 `yaml:"damping_factor" json:"damping_factor"`
}

func DefaultConfig() *Config {
	return &Config{
		Window: WindowConfig{
			Width:     DefaultWidth,
			Height:    DefaultHeight,
			Title:     "molview",
			FPS:       DefaultFPS,
			Antialias: true,
		},
		Camera: CameraConfig{
			FOV:           DefaultFOV,
			Near:          DefaultNear,
			Far:           DefaultFar,
			Distance:      DefaultDistance,
			DampingFactor: DefaultDamping,
		},
		Spin:    DefaultSpin,
		Shadows: true,
		Theme:   DefaultTheme,
	}
}

// Load reads a YAML file on top of the defaults.
func Load(path string) (*Config, error) {
	return LoadOver(path, DefaultConfig())
}

// LoadOver reads a YAML file on top of a copy of base. Keys missing from the
// file keep base's values.
func LoadOver(path string, base *Config) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := base.Clone()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func (c *Config) Validate() error {
	switch {
	case c.Window.Width <= 0 || c.Window.Height <= 0:
		return fmt.Errorf("%w: window size %dx%d", ErrInvalid, c.Window.Width, c.Window.Height)
	case c.Window.FPS <= 0:
		return fmt.Errorf("%w: fps %d", ErrInvalid, c.Window.FPS)
	case c.Camera.FOV <= 0 || c.Camera.FOV >= 180:
		return fmt.Errorf("%w: fov %.2f", ErrInvalid, c.Camera.FOV)
	case c.Camera.Near <= 0 || c.Camera.Far <= c.Camera.Near:
		return fmt.Errorf("%w: clip planes %.3f..%.3f", ErrInvalid, c.Camera.Near, c.Camera.Far)
	case c.Camera.Distance <= 0:
		return fmt.Errorf("%w: camera distance %.2f", ErrInvalid, c.Camera.Distance)
	case c.Camera.DampingFactor < 0 || c.Camera.DampingFactor > 1:
		return fmt.Errorf("%w: damping factor %.3f", ErrInvalid, c.Camera.DampingFactor)
	case math.IsNaN(c.Spin) || math.IsInf(c.Spin, 0):
		return fmt.Errorf("%w: spin %v", ErrInvalid, c.Spin)
	}
	return nil
}

// Clone returns a deep copy.
func (c *Config) Clone() *Config {
	cp := *c
	return &cp
}
