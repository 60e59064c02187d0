package search

import (
	"math"
	"sort"
)

// Matcher decides whether a sample is close enough to the target and scores
// accepted samples. Tolerances are strict upper bounds: a deviation exactly
// equal to the tolerance is rejected.
type Matcher struct {
	Target Target
	AltTol float64 // degrees
	AzTol  float64 // degrees
}

// Accept reports whether both per-axis deviations are strictly inside the
// tolerances. Azimuth deviation is a raw difference, no wraparound.
func (m Matcher) Accept(s Sample) bool {
	return math.Abs(s.Altitude-m.Target.Altitude) < m.AltTol &&
		math.Abs(s.Azimuth-m.Target.Azimuth) < m.AzTol
}

// Score is the closeness score |Δalt| * |Δaz|. The product is kept for
// compatibility with the tool's historical ranking; it is not an angular
// distance, and a tiny deviation on one axis can outrank a balanced pair.
func (m Matcher) Score(s Sample) float64 {
	return math.Abs(s.Altitude-m.Target.Altitude) * math.Abs(s.Azimuth-m.Target.Azimuth)
}

// FindAll drains the sampler and returns every accepted sample as a Match,
// preserving chronological order.
func FindAll(sp *Sampler, m Matcher) []Match {
	var out []Match
	for {
		s, ok := sp.Next()
		if !ok {
			break
		}
		if m.Accept(s) {
			out = append(out, Match{Sample: s, Score: m.Score(s)})
		}
	}
	return out
}

// FindBest drains the sampler, collects every accepted sample, and reduces
// to the minimum-score Match. Equal scores keep the earliest instant.
// count is the number of accepted candidates before reduction; when it is
// zero the returned Match is the zero value.
func FindBest(sp *Sampler, m Matcher) (best Match, count int) {
	candidates := FindAll(sp, m)
	if len(candidates) == 0 {
		return Match{}, 0
	}
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].Score < candidates[j].Score
	})
	return candidates[0], len(candidates)
}
