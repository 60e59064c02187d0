package search

import "time"

// YearWindow returns the whole-year sampling window for a civil year:
// Jan 1 00:00:00 through Dec 31 23:59:00 UTC.
func YearWindow(year int, step time.Duration) Window {
	return Window{
		Start: time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC),
		End:   time.Date(year, time.December, 31, 23, 59, 0, 0, time.UTC),
		Step:  step,
	}
}

// SplitYear partitions a year into two windows that meet at the June
// solstice, truncated to the top of the hour. The Sun's seasonal altitude
// swing crosses a fixed sky target up to twice per year, once on each side
// of the solstice; searching the halves independently yields at most one
// best match per crossing. The boundary instant belongs to both windows.
func SplitYear(year int, solstice time.Time, step time.Duration) (Window, Window) {
	split := solstice.UTC().Truncate(time.Hour)
	y := YearWindow(year, step)
	a := Window{Start: y.Start, End: split, Step: step}
	b := Window{Start: split, End: y.End, Step: step}
	return a, b
}
