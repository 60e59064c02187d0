package ephemeris

import (
	"time"

	"github.com/soniakeys/meeus/v3/julian"
	"github.com/soniakeys/meeus/v3/solstice"
)

// JuneSolstice returns the instant of the June solstice for a year, in UTC.
func JuneSolstice(year int) time.Time {
	jde := solstice.June(year)
	// solstice.June works in dynamical time; shift back to UT.
	jd := jde - deltaTYear(float64(year)+0.47)/86400
	return julian.JDToTime(jd).UTC()
}
