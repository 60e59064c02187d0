// Package app wires the search pipeline behind the command line.
package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/chrissnell/chronocalc/internal/config"
	"github.com/chrissnell/chronocalc/internal/report"
	"github.com/chrissnell/chronocalc/internal/search"
	"github.com/chrissnell/chronocalc/pkg/ephemeris"
)

// ErrNoSolution is returned when the sun search cannot satisfy the request.
var ErrNoSolution = errors.New(report.NoSolutionMessage)

// ElevationSource resolves ground elevation for an observer.
type ElevationSource interface {
	Lookup(ctx context.Context, lat, lon float64) (float64, error)
}

// TimezoneSource resolves the IANA location an observer's clock follows.
type TimezoneSource interface {
	Resolve(lat, lon float64) (*time.Location, error)
}

// Request describes one search invocation.
type Request struct {
	Year      int
	Latitude  float64
	Longitude float64
	Altitude  float64
	Azimuth   float64
	Moon      bool
	Accurate  bool
}

// App represents the main application
type App struct {
	cfg       *config.Config
	elevation ElevationSource
	timezones TimezoneSource
	out       io.Writer
	logger    *zap.SugaredLogger
}

// New creates a new application instance
func New(cfg *config.Config, elevation ElevationSource, timezones TimezoneSource, out io.Writer, logger *zap.SugaredLogger) *App {
	return &App{
		cfg:       cfg,
		elevation: elevation,
		timezones: timezones,
		out:       out,
		logger:    logger,
	}
}

// Run performs one search and renders the result
func (a *App) Run(ctx context.Context, req Request) error {
	if err := validate(req); err != nil {
		return err
	}

	runID := uuid.New().String()
	started := time.Now()
	a.logger.Debugw("starting search", "run_id", runID,
		"year", req.Year, "lat", req.Latitude, "lon", req.Longitude,
		"alt", req.Altitude, "az", req.Azimuth, "moon", req.Moon, "accurate", req.Accurate)

	elev, err := a.elevation.Lookup(ctx, req.Latitude, req.Longitude)
	if err != nil {
		return fmt.Errorf("failed to look up elevation: %w", err)
	}
	a.logger.Debugw("resolved elevation", "run_id", runID, "elevation_m", elev)

	loc, err := a.timezones.Resolve(req.Latitude, req.Longitude)
	if err != nil {
		return fmt.Errorf("failed to resolve timezone: %w", err)
	}
	a.logger.Debugw("resolved timezone", "run_id", runID, "zone", loc.String())

	obs := ephemeris.Observer{
		Latitude:  req.Latitude,
		Longitude: req.Longitude,
		Elevation: elev,
	}

	params := search.Params{
		Year:   req.Year,
		Target: search.Target{Altitude: req.Altitude, Azimuth: req.Azimuth},
		Step:   a.cfg.Step(req.Accurate),
	}
	if req.Moon {
		params.Mode = search.Moon
		params.Oracle = moonOracle(obs)
	} else {
		params.Mode = search.Sun
		params.Oracle = sunOracle(obs)
		params.Solstice = ephemeris.JuneSolstice(req.Year)
		a.logger.Debugw("split year at solstice", "run_id", runID, "solstice", params.Solstice)
	}

	matches, err := search.Run(params)
	if err != nil {
		if errors.Is(err, search.ErrNoSolution) {
			return ErrNoSolution
		}
		return err
	}
	a.logger.Debugw("search complete", "run_id", runID,
		"matches", len(matches), "elapsed", time.Since(started))

	renderer := report.New(a.out, loc)
	if req.Moon {
		if len(matches) == 0 {
			renderer.NoSolution()
			return nil
		}
		renderer.MoonMatches(matches)
		return nil
	}
	renderer.SunMatches(matches)
	return nil
}

func validate(req Request) error {
	if req.Year < 1 || req.Year > 9999 {
		return fmt.Errorf("year must be between 1 and 9999, got %d", req.Year)
	}
	if req.Latitude < -90 || req.Latitude > 90 {
		return fmt.Errorf("latitude must be between -90 and 90, got %v", req.Latitude)
	}
	if req.Longitude < -180 || req.Longitude > 180 {
		return fmt.Errorf("longitude must be between -180 and 180, got %v", req.Longitude)
	}
	if req.Altitude < -90 || req.Altitude > 90 {
		return fmt.Errorf("altitude must be between -90 and 90, got %v", req.Altitude)
	}
	if req.Azimuth < 0 || req.Azimuth >= 360 {
		return fmt.Errorf("azimuth must be at least 0 and below 360, got %v", req.Azimuth)
	}
	return nil
}

func moonOracle(obs ephemeris.Observer) search.Oracle {
	return search.OracleFunc(func(t time.Time) search.Position {
		return toSearchPosition(ephemeris.MoonPosition(obs, t))
	})
}

func sunOracle(obs ephemeris.Observer) search.Oracle {
	return search.OracleFunc(func(t time.Time) search.Position {
		return toSearchPosition(ephemeris.SunPosition(obs, t))
	})
}

func toSearchPosition(p ephemeris.Position) search.Position {
	return search.Position{
		Altitude:     p.Altitude,
		Azimuth:      p.Azimuth,
		Illumination: p.Illumination,
	}
}
