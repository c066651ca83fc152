package config

import (
	"fmt"
	"sort"
)

var Presets = map[string]*Config{
	"default": DefaultConfig(),
	"slow": func() *Config {
		c := DefaultConfig()
		c.Spin = 0.001
		c.Camera.Damping = true
		return c
	}(),
	"fast": func() *Config {
		c := DefaultConfig()
		c.Spin = 0.02
		return c
	}(),
	"closeup": func() *Config {
		c := DefaultConfig()
		c.Camera.Distance = 120
		c.Camera.FOV = 60
		return c
	}(),
	"still": func() *Config {
		c := DefaultConfig()
		c.Spin = 0
		c.Shadows = false
		return c
	}(),
}

// GetPreset returns a copy of the named preset or nil.
func GetPreset(name string) *Config {
	cfg, ok := Presets[name]
	if !ok {
		return nil
	}
	return cfg.Clone()
}

// MustPreset is GetPreset with an error listing the available names.
func MustPreset(name string) (*Config, error) {
	if cfg := GetPreset(name); cfg != nil {
		return cfg, nil
	}
	return nil, fmt.Errorf("%w: %s (available: %v)", ErrUnknownPreset, name, ListPresets())
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
