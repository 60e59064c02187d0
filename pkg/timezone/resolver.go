// Package timezone maps geographic coordinates to IANA time zone locations.
package timezone

import (
	"fmt"
	"time"

	"github.com/ringsaturn/tzf"
)

// Resolver answers timezone lookups from embedded boundary data.
type Resolver struct {
	finder tzf.F
}

// NewResolver builds a resolver backed by the embedded timezone polygon set.
// Construction parses the whole set, so build one resolver and share it.
func NewResolver() (*Resolver, error) {
	finder, err := tzf.NewDefaultFinder()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize timezone finder: %w", err)
	}
	return &Resolver{finder: finder}, nil
}

// Name returns the IANA zone name covering the given coordinates, or an
// empty string when the point is outside the data set.
func (r *Resolver) Name(lat, lon float64) string {
	// tzf takes longitude first.
	return r.finder.GetTimezoneName(lon, lat)
}

// Resolve returns the IANA location for the given coordinates.
func (r *Resolver) Resolve(lat, lon float64) (*time.Location, error) {
	name := r.Name(lat, lon)
	if name == "" {
		return nil, fmt.Errorf("no timezone found for %.4f,%.4f", lat, lon)
	}

	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, fmt.Errorf("failed to load location %q: %w", name, err)
	}
	return loc, nil
}
