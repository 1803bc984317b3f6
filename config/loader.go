package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Default returns the built-in board configuration: the Jiyugaoka outbound
// platform on a 20x4 display, refreshing every 30 seconds.
func Default() *AppConfig {
	return &AppConfig{
		Station:   "Tokyu.Oimachi.Jiyugaoka",
		Direction: "Outbound",
		Display: DisplayConfig{
			Width:   20,
			Rows:    4,
			I2CAddr: 0x27,
		},
		RefreshSeconds: 30,
		TimeoutSeconds: 15,
		Animation:      "paging",
		WindowStart:    10,
		Wipe:           "up",
	}
}

// Load reads the configuration file at path (missing file falls back to
// defaults), validates it, and pulls the ODPT API key from the environment.
func Load(path string) (*AppConfig, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err == nil {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse %s: %w", path, err)
		}
	} else if !os.IsNotExist(err) {
		return nil, err
	}

	cfg.APIKey = os.Getenv("ODPT_API_KEY")
	if cfg.APIKey == "" {
		return nil, errors.New("ODPT_API_KEY is not set")
	}

	v := validator.New()
	if err := v.Struct(cfg); err != nil {
		return nil, err
	}
	if cfg.WindowStart >= cfg.Display.Width {
		return nil, fmt.Errorf("windowStart %d leaves no animation window on a %d column display",
			cfg.WindowStart, cfg.Display.Width)
	}
	if cfg.TimeoutSeconds == 0 {
		cfg.TimeoutSeconds = 15
	}
	return cfg, nil
}
