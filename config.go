// SPDX-FileCopyrightText : © 2022 Galvanized Logic Inc.
// SPDX-License-Identifier: BSD-2-Clause

package raster3d

import (
	"os"

	"github.com/hcline/raster3d/math/lin"
	"gopkg.in/yaml.v3"
)

// EngineConfig holds the tunable constants the frame driver needs before it
// can build a scene and start its loop. Values are loaded from a YAML file
// when one is supplied; a field the file omits or sets to zero falls back to
// the hardcoded default below, except that the three rotate deltas fall back
// only when all three are zero.
type EngineConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`

	Near float64 `yaml:"near"`
	Far  float64 `yaml:"far"`
	Fov  float64 `yaml:"fov"`

	// FrameRate is the target frame loop frequency in Hz. The engine does not
	// read it: the adapter sets the frame cadence, and the terminal adapter
	// ticks every 20ms (50Hz).
	FrameRate float64 `yaml:"frame_rate"`

	// RotateIntervalMS is how often the default periodic rotate command fires.
	RotateIntervalMS int `yaml:"rotate_interval_ms"`

	// MoveDelta is the distance an arrow-key hold moves the camera per event.
	MoveDelta float64 `yaml:"move_delta"`

	// RotateDeltaX, RotateDeltaY and RotateDeltaZ are the per-axis angles the
	// default timer rotates object 0 by.
	RotateDeltaX float64 `yaml:"rotate_delta_x"`
	RotateDeltaY float64 `yaml:"rotate_delta_y"`
	RotateDeltaZ float64 `yaml:"rotate_delta_z"`
}

// defaultConfig provides reasonable defaults so the engine runs even if no
// configuration file is supplied.
var defaultConfig = EngineConfig{
	Width:  800,
	Height: 450,

	Near: 0.1,
	Far:  100.0,
	Fov:  lin.HalfPi / 2, // pi/4

	FrameRate:        50,
	RotateIntervalMS: 50,
	MoveDelta:        0.1,
	RotateDeltaX:     0.01,
	RotateDeltaY:     0.02,
	RotateDeltaZ:     0.03,
}

// DefaultConfig returns a copy of the engine's hardcoded default configuration.
func DefaultConfig() EngineConfig { return defaultConfig }

// LoadConfig reads a YAML configuration file at path and fills any field
// left unset with the hardcoded default. A missing or empty field in the
// file is not an error; it simply keeps the default.
func LoadConfig(path string) (EngineConfig, error) {
	cfg := defaultConfig
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	return fillDefaults(cfg), nil
}

// fillDefaults replaces any zero-valued field in cfg with the hardcoded
// default. Fields the file omits already keep their default, since LoadConfig
// unmarshals over a copy of it; this catches fields the file sets to zero.
// The three rotate deltas are replaced together, only when all three are zero.
func fillDefaults(cfg EngineConfig) EngineConfig {
	if cfg.Width == 0 {
		cfg.Width = defaultConfig.Width
	}
	if cfg.Height == 0 {
		cfg.Height = defaultConfig.Height
	}
	if cfg.Near == 0 {
		cfg.Near = defaultConfig.Near
	}
	if cfg.Far == 0 {
		cfg.Far = defaultConfig.Far
	}
	if cfg.Fov == 0 {
		cfg.Fov = defaultConfig.Fov
	}
	if cfg.FrameRate == 0 {
		cfg.FrameRate = defaultConfig.FrameRate
	}
	if cfg.RotateIntervalMS == 0 {
		cfg.RotateIntervalMS = defaultConfig.RotateIntervalMS
	}
	if cfg.MoveDelta == 0 {
		cfg.MoveDelta = defaultConfig.MoveDelta
	}
	if cfg.RotateDeltaX == 0 && cfg.RotateDeltaY == 0 && cfg.RotateDeltaZ == 0 {
		cfg.RotateDeltaX, cfg.RotateDeltaY, cfg.RotateDeltaZ =
			defaultConfig.RotateDeltaX, defaultConfig.RotateDeltaY, defaultConfig.RotateDeltaZ
	}
	return cfg
}
