package config

import (
	"errors"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Load builds a Config by layering defaults, optional file, and env vars.
// Order of precedence (low -> high):
//  1. defaults (New())
//  2. file (YAML) if CHRONOCALC_CONFIG is set
//  3. env (prefix CHRONOCALC_)
func Load() (*Config, error) {
	base := New()

	k := koanf.New(".")

	// Load from file if provided
	if path := os.Getenv("CHRONOCALC_CONFIG"); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, err
		}
	}

	// Environment variables: CHRONOCALC_ELEVATION_URL, CHRONOCALC_STEP_MINUTES, ...
	// Map env keys like CHRONOCALC_STEP_MINUTES -> step_minutes (flat keys)
	// Preserve underscores to match koanf tags on the struct.
	envProvider := env.Provider("CHRONOCALC_", ".", func(s string) string {
		s = strings.ToLower(s)
		s = strings.TrimPrefix(s, "chronocalc_")
		return s
	})
	if err := k.Load(envProvider, nil); err != nil {
		return nil, err
	}

	// Unmarshal into a copy
	cfg := *base
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, err
	}

	// Basic validation
	if cfg.ElevationURL == "" {
		return nil, errors.New("elevation_url must not be empty")
	}
	if cfg.HTTPTimeout <= 0 {
		return nil, errors.New("http_timeout must be positive")
	}
	if cfg.HTTPRetries < 0 {
		return nil, errors.New("http_retries must not be negative")
	}
	if cfg.StepMinutes <= 0 || cfg.AccurateStepMinutes <= 0 {
		return nil, errors.New("step minutes must be positive")
	}
	return &cfg, nil
}
