// Package config defines the runtime configuration for chronocalc.
//
// Values layer in three stages: compiled-in defaults, an optional YAML file
// named by the CHRONOCALC_CONFIG environment variable, and CHRONOCALC_-prefixed
// environment variables. Search tolerances and scoring are fixed by the
// search package and are deliberately not configurable.
package config

import (
	"time"
)

// Config holds the operational knobs for one run.
type Config struct {
	// ElevationURL is the base URL of the open-elevation style lookup API.
	ElevationURL string `koanf:"elevation_url"`

	// HTTPTimeout bounds each elevation API request.
	HTTPTimeout time.Duration `koanf:"http_timeout"`

	// HTTPRetries is the number of additional attempts after a failed
	// elevation request (transport errors and 5xx responses only).
	HTTPRetries int `koanf:"http_retries"`

	// StepMinutes is the sampling grid step for a normal search.
	StepMinutes int `koanf:"step_minutes"`

	// AccurateStepMinutes is the sampling grid step with --accurate.
	AccurateStepMinutes int `koanf:"accurate_step_minutes"`
}

// New returns a Config populated with defaults.
func New() *Config {
	return &Config{
		ElevationURL:        "https://api.open-elevation.com/api/v1/lookup",
		HTTPTimeout:         10 * time.Second,
		HTTPRetries:         2,
		StepMinutes:         15,
		AccurateStepMinutes: 2,
	}
}

// Step returns the sampling step to use for a run.
func (c *Config) Step(accurate bool) time.Duration {
	if accurate {
		return time.Duration(c.AccurateStepMinutes) * time.Minute
	}
	return time.Duration(c.StepMinutes) * time.Minute
}
