package ephemeris

import "time"

// deltaT returns ΔT = TT − UT in seconds for the instant t, per the
// polynomial expressions published on the NASA Eclipse site (Espenak &
// Meeus). Good to a few seconds over the supported eras, which moves a
// computed position by well under an arcminute.
func deltaT(t time.Time) float64 {
	y := float64(t.Year()) + (float64(t.Month())-0.5)/12
	return deltaTYear(y)
}

func deltaTYear(y float64) float64 {
	switch {
	case y >= 1961 && y < 1986:
		t := y - 1975
		return 45.45 + 1.067*t - t*t/260 - t*t*t/718
	case y >= 1986 && y < 2005:
		t := y - 2000
		return 63.86 + 0.3345*t - 0.060374*t*t + 0.0017275*t*t*t +
			0.000651814*t*t*t*t + 0.00002373599*t*t*t*t*t
	case y >= 2005 && y < 2050:
		t := y - 2000
		return 62.92 + 0.32217*t + 0.005589*t*t
	case y >= 2050 && y < 2150:
		u := (y - 1820) / 100
		return -20 + 32*u*u - 0.5628*(2150-y)
	default:
		// Long-term parabola; fine for the far past and far future.
		u := (y - 1820) / 100
		return -20 + 32*u*u
	}
}
