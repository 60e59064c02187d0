// Package search implements the year-grid sky position search: a body's
// topocentric altitude/azimuth is sampled on a fixed time grid and compared
// against a target position, collecting either every qualifying instant or
// the best-scoring instant per window.
//
// Angle comparison is a raw per-axis difference in degrees with no wraparound
// at the 0/360 azimuth boundary: a target azimuth of 359 never matches a
// sample at azimuth 1 even though the true angular separation is 2 degrees.
// Targets near due north inherit this limitation.
//
// All instants are UTC. Conversion to the observer's local time is a display
// concern and happens outside this package.
package search

import "time"

// Position is a sky position reported by the ephemeris for one instant.
type Position struct {
	Altitude     float64 // degrees above the horizon
	Azimuth      float64 // degrees clockwise from true north, [0, 360)
	Illumination float64 // lit fraction [0,1]; meaningful for the Moon only
}

// Oracle reports a body's position as seen by a fixed observer. An Oracle
// must be a pure function of the instant: same instant, same Position.
type Oracle interface {
	Position(t time.Time) Position
}

// OracleFunc adapts a plain function to the Oracle interface.
type OracleFunc func(t time.Time) Position

func (f OracleFunc) Position(t time.Time) Position { return f(t) }

// Target is the sky position being searched for.
type Target struct {
	Altitude float64 // degrees
	Azimuth  float64 // degrees from north
}

// Sample is one grid instant with the body's position at that instant.
type Sample struct {
	Time time.Time
	Position
}

// Match is a Sample that passed the tolerance filter, annotated with its
// closeness score. Lower scores are better.
type Match struct {
	Sample
	Score float64
}

// Window is one sampling grid: instants Start + k*Step for k = 0, 1, 2, ...
// while the instant does not pass End. Step must be positive.
type Window struct {
	Start time.Time
	End   time.Time
	Step  time.Duration
}

// Ticks returns the number of grid instants in the window.
func (w Window) Ticks() int {
	if w.End.Before(w.Start) {
		return 0
	}
	return int(w.End.Sub(w.Start)/w.Step) + 1
}
