package search

import (
	"errors"
	"fmt"
	"time"
)

// ErrNoSolution is returned when a best-per-window search cannot produce a
// trustworthy result because the first window held fewer than two candidates.
var ErrNoSolution = errors.New("no possible solution found")

// Mode selects the tolerance pair and the reduction strategy for a run.
type Mode struct {
	Name          string
	AltTol        float64
	AzTol         float64
	BestPerWindow bool
}

// Sun and Moon are the two supported search modes. The Sun's coarser
// tolerance compensates for its slow seasonal drift through a fixed target;
// at 2 degrees a coarse grid could skip the crossing entirely.
var (
	Sun  = Mode{Name: "sun", AltTol: 3, AzTol: 3, BestPerWindow: true}
	Moon = Mode{Name: "moon", AltTol: 2, AzTol: 2, BestPerWindow: false}
)

// Params are the inputs for one search run.
type Params struct {
	Oracle   Oracle
	Year     int
	Target   Target
	Step     time.Duration
	Mode     Mode
	Solstice time.Time // June solstice of Year; required when BestPerWindow
}

// Run executes one search over the year grid.
//
// In all-matches mode (Moon) it returns every qualifying tick of the year in
// chronological order; an empty result is not an error. In best-per-window
// mode (Sun) it splits the year at the solstice and returns the best match
// of each window, in window order; a window with no candidates contributes
// no match, and fewer than two candidates in the first window fails the
// whole run with ErrNoSolution.
func Run(p Params) ([]Match, error) {
	if p.Oracle == nil {
		return nil, errors.New("search: nil oracle")
	}
	if p.Step <= 0 {
		return nil, fmt.Errorf("search: step must be positive, got %v", p.Step)
	}

	m := Matcher{Target: p.Target, AltTol: p.Mode.AltTol, AzTol: p.Mode.AzTol}

	if !p.Mode.BestPerWindow {
		return FindAll(NewSampler(p.Oracle, YearWindow(p.Year, p.Step)), m), nil
	}

	if p.Solstice.IsZero() {
		return nil, errors.New("search: best-per-window mode needs the solstice instant")
	}

	winA, winB := SplitYear(p.Year, p.Solstice, p.Step)
	bestA, countA := FindBest(NewSampler(p.Oracle, winA), m)
	bestB, countB := FindBest(NewSampler(p.Oracle, winB), m)

	if countA < 2 {
		return nil, ErrNoSolution
	}

	matches := []Match{bestA}
	if countB > 0 {
		matches = append(matches, bestB)
	}
	return matches, nil
}
