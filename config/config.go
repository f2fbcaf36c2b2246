// Package config loads process settings from the environment and optional tuning overrides from YAML
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"

	"github.com/lixenwraith/midnight-awake/parameter"
)

// EnvPrefix is prepended to every variable name
const EnvPrefix = "MIDNIGHT_"

// Config is the process configuration; flags in cmd override these values
type Config struct {
	Debug        bool          `env:"DEBUG"`
	Muted        bool          `env:"MUTED"`
	MasterVolume int           `env:"MASTER_VOLUME" envDefault:"80"`
	FPS          int           `env:"FPS" envDefault:"60"`
	Seed         int64         `env:"SEED"`
	KeyHold      time.Duration `env:"KEY_HOLD" envDefault:"500ms"`
	Sensitivity  float64       `env:"SENSITIVITY" envDefault:"1.0"`
	TuningFile   string        `env:"TUNING_FILE"`
}

// Load parses the process environment
func Load() (Config, error) {
	return parse(env.Options{Prefix: EnvPrefix})
}

// LoadFrom parses an explicit environment, used by tests
func LoadFrom(environ map[string]string) (Config, error) {
	return parse(env.Options{Prefix: EnvPrefix, Environment: environ})
}

func parse(opts env.Options) (Config, error) {
	var cfg Config
	if err := env.ParseWithOptions(&cfg, opts); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks ranges that env tags cannot express
func (c Config) Validate() error {
	if c.MasterVolume < 0 || c.MasterVolume > 100 {
		return fmt.Errorf("master volume %d: must be within [0,100]", c.MasterVolume)
	}
	if c.FPS <= 0 {
		return fmt.Errorf("fps %d: must be positive", c.FPS)
	}
	if c.KeyHold <= 0 {
		return fmt.Errorf("key hold %s: must be positive", c.KeyHold)
	}
	if c.Sensitivity < parameter.MinMouseSensitivity || c.Sensitivity > parameter.MaxMouseSensitivity {
		return fmt.Errorf("sensitivity %.2f: must be within [%.1f,%.1f]",
			c.Sensitivity, parameter.MinMouseSensitivity, parameter.MaxMouseSensitivity)
	}
	return nil
}

// FrameInterval is the target time between frames
func (c Config) FrameInterval() time.Duration {
	return time.Second / time.Duration(c.FPS)
}

// Volume returns the master volume as a fraction
func (c Config) Volume() float64 {
	return float64(c.MasterVolume) / 100
}
