package search

import "time"

// Sampler walks a window's grid and queries the oracle at each tick. It is
// forward-only: once drained it stays drained. Two samplers built from the
// same oracle and window produce identical sequences.
type Sampler struct {
	oracle Oracle
	window Window
	next   int
}

// NewSampler returns a sampler positioned at the window's first tick.
func NewSampler(oracle Oracle, window Window) *Sampler {
	return &Sampler{oracle: oracle, window: window}
}

// Next returns the next sample and true, or a zero Sample and false once
// every tick has been produced.
func (s *Sampler) Next() (Sample, bool) {
	t := s.window.Start.Add(time.Duration(s.next) * s.window.Step)
	if t.After(s.window.End) {
		return Sample{}, false
	}
	s.next++
	return Sample{Time: t, Position: s.oracle.Position(t)}, true
}
