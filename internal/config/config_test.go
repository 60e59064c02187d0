package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	os.Unsetenv("CHRONOCALC_CONFIG")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if cfg.ElevationURL != "https://api.open-elevation.com/api/v1/lookup" {
		t.Errorf("ElevationURL = %q, want open-elevation default", cfg.ElevationURL)
	}
	if cfg.HTTPTimeout != 10*time.Second {
		t.Errorf("HTTPTimeout = %v, want 10s", cfg.HTTPTimeout)
	}
	if cfg.HTTPRetries != 2 {
		t.Errorf("HTTPRetries = %d, want 2", cfg.HTTPRetries)
	}
	if cfg.StepMinutes != 15 {
		t.Errorf("StepMinutes = %d, want 15", cfg.StepMinutes)
	}
	if cfg.AccurateStepMinutes != 2 {
		t.Errorf("AccurateStepMinutes = %d, want 2", cfg.AccurateStepMinutes)
	}
}

func TestLoadEnvOverride(t *testing.T) {
	t.Setenv("CHRONOCALC_STEP_MINUTES", "30")
	t.Setenv("CHRONOCALC_HTTP_TIMEOUT", "5s")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if cfg.StepMinutes != 30 {
		t.Errorf("StepMinutes = %d, want 30 from env", cfg.StepMinutes)
	}
	if cfg.HTTPTimeout != 5*time.Second {
		t.Errorf("HTTPTimeout = %v, want 5s from env", cfg.HTTPTimeout)
	}
	// Untouched keys keep defaults
	if cfg.AccurateStepMinutes != 2 {
		t.Errorf("AccurateStepMinutes = %d, want default 2", cfg.AccurateStepMinutes)
	}
}

func TestLoadFileOverride(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "chronocalc.yaml")
	yaml := "elevation_url: http://localhost:9999/lookup\nstep_minutes: 10\n"
	if err := os.WriteFile(path, []byte(yaml), 0o644); err != nil {
		t.Fatalf("writing config file: %v", err)
	}
	t.Setenv("CHRONOCALC_CONFIG", path)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if cfg.ElevationURL != "http://localhost:9999/lookup" {
		t.Errorf("ElevationURL = %q, want file value", cfg.ElevationURL)
	}
	if cfg.StepMinutes != 10 {
		t.Errorf("StepMinutes = %d, want 10 from file", cfg.StepMinutes)
	}
}

func TestLoadEnvBeatsFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "chronocalc.yaml")
	if err := os.WriteFile(path, []byte("step_minutes: 10\n"), 0o644); err != nil {
		t.Fatalf("writing config file: %v", err)
	}
	t.Setenv("CHRONOCALC_CONFIG", path)
	t.Setenv("CHRONOCALC_STEP_MINUTES", "45")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.StepMinutes != 45 {
		t.Errorf("StepMinutes = %d, want env to win over file", cfg.StepMinutes)
	}
}

func TestLoadRejectsInvalid(t *testing.T) {
	t.Setenv("CHRONOCALC_STEP_MINUTES", "0")

	if _, err := Load(); err == nil {
		t.Fatal("Load() accepted step_minutes=0")
	}
}

func TestStep(t *testing.T) {
	cfg := New()
	if got := cfg.Step(false); got != 15*time.Minute {
		t.Errorf("Step(false) = %v, want 15m", got)
	}
	if got := cfg.Step(true); got != 2*time.Minute {
		t.Errorf("Step(true) = %v, want 2m", got)
	}
}
