package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := LoadFrom(map[string]string{})
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.FPS != 60 || cfg.MasterVolume != 80 || cfg.KeyHold != 500*time.Millisecond || cfg.Sensitivity != 1.0 {
		t.Errorf("defaults = %+v", cfg)
	}
	if cfg.Debug || cfg.Muted || cfg.TuningFile != "" {
		t.Errorf("flags should default off: %+v", cfg)
	}
	t.Log("✓ empty environment yields defaults")
}

func TestLoadOverrides(t *testing.T) {
	cfg, err := LoadFrom(map[string]string{
		"MIDNIGHT_DEBUG":         "true",
		"MIDNIGHT_MUTED":         "1",
		"MIDNIGHT_MASTER_VOLUME": "40",
		"MIDNIGHT_FPS":           "30",
		"MIDNIGHT_SEED":          "42",
		"MIDNIGHT_KEY_HOLD":      "200ms",
		"MIDNIGHT_SENSITIVITY":   "2.5",
		"MIDNIGHT_TUNING_FILE":   "tuning.yaml",
		"FPS":                    "5", // unprefixed is ignored
	})
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	want := Config{
		Debug:        true,
		Muted:        true,
		MasterVolume: 40,
		FPS:          30,
		Seed:         42,
		KeyHold:      200 * time.Millisecond,
		Sensitivity:  2.5,
		TuningFile:   "tuning.yaml",
	}
	if cfg != want {
		t.Errorf("cfg = %+v, want %+v", cfg, want)
	}
	if cfg.Volume() != 0.4 {
		t.Errorf("volume = %v", cfg.Volume())
	}
	if cfg.FrameInterval() != time.Second/30 {
		t.Errorf("frame interval = %v", cfg.FrameInterval())
	}
}

func TestLoadInvalid(t *testing.T) {
	tests := []struct {
		name string
		key  string
		val  string
	}{
		{"volume above range", "MIDNIGHT_MASTER_VOLUME", "150"},
		{"volume negative", "MIDNIGHT_MASTER_VOLUME", "-1"},
		{"fps zero", "MIDNIGHT_FPS", "0"},
		{"fps not a number", "MIDNIGHT_FPS", "fast"},
		{"key hold zero", "MIDNIGHT_KEY_HOLD", "0s"},
		{"sensitivity", "MIDNIGHT_SENSITIVITY", "5"},
		{"bool", "MIDNIGHT_DEBUG", "maybe"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := LoadFrom(map[string]string{tt.key: tt.val}); err == nil {
				t.Errorf("%s=%s accepted", tt.key, tt.val)
			}
		})
	}
}
