// Package ephemeris computes topocentric Sun and Moon positions using the
// algorithms from Meeus, Astronomical Algorithms (meeus/v3). Reported
// positions include diurnal parallax for the observer, apparent sidereal
// time, and atmospheric refraction near and above the horizon. Accuracy is
// a few arcminutes for both bodies, well inside the degree-scale tolerances
// the position search operates with.
package ephemeris

import (
	"time"

	"github.com/soniakeys/meeus/v3/base"
	"github.com/soniakeys/meeus/v3/coord"
	"github.com/soniakeys/meeus/v3/globe"
	"github.com/soniakeys/meeus/v3/julian"
	"github.com/soniakeys/meeus/v3/moonillum"
	"github.com/soniakeys/meeus/v3/moonposition"
	"github.com/soniakeys/meeus/v3/nutation"
	"github.com/soniakeys/meeus/v3/parallax"
	"github.com/soniakeys/meeus/v3/refraction"
	"github.com/soniakeys/meeus/v3/sidereal"
	"github.com/soniakeys/meeus/v3/solar"
	"github.com/soniakeys/unit"
)

// Observer is a fixed ground location.
type Observer struct {
	Latitude  float64 // degrees, north positive
	Longitude float64 // degrees, east positive
	Elevation float64 // meters above sea level
}

// Position is a topocentric sky position at one instant.
type Position struct {
	Altitude     float64 // degrees above the horizon, refraction applied
	Azimuth      float64 // degrees clockwise from true north, [0, 360)
	Illumination float64 // lit fraction of the disk [0,1]; zero for the Sun
}

// SunPosition returns the Sun's topocentric position for the observer at t.
func SunPosition(obs Observer, t time.Time) Position {
	jd := julian.TimeToJD(t.UTC())
	jde := jd + deltaT(t)/86400

	α, δ := solar.ApparentEquatorial(jde)
	R := solar.Radius(base.J2000Century(jde)) // AU

	az, alt := toHorizontal(obs, α, δ, R, jd, jde)
	return Position{Altitude: alt, Azimuth: az}
}

// MoonPosition returns the Moon's topocentric position for the observer at
// t, including the illuminated fraction of the disk.
func MoonPosition(obs Observer, t time.Time) Position {
	jd := julian.TimeToJD(t.UTC())
	jde := jd + deltaT(t)/86400

	// Apparent ecliptic coordinates: add nutation in longitude.
	λ, β, Δ := moonposition.Position(jde) // Δ in km
	Δψ, Δε := nutation.Nutation(jde)
	ε := nutation.MeanObliquity(jde) + Δε
	sε, cε := ε.Sincos()
	α, δ := coord.EclToEq(λ+Δψ, β, sε, cε)

	az, alt := toHorizontal(obs, α, δ, Δ/base.AU, jd, jde)
	return Position{
		Altitude:     alt,
		Azimuth:      az,
		Illumination: illuminated(jde, α, δ, Δ),
	}
}

// toHorizontal applies diurnal parallax for the observer and converts
// apparent equatorial coordinates to a compass azimuth and refracted
// altitude. Δ is the body's distance in AU.
func toHorizontal(obs Observer, α unit.RA, δ unit.Angle, Δ, jd, jde float64) (az, alt float64) {
	φ := unit.AngleFromDeg(obs.Latitude)
	// Meeus reckons longitude positive west of Greenwich.
	ψ := unit.AngleFromDeg(-obs.Longitude)

	ρsφʹ, ρcφʹ := globe.Earth76.ParallaxConstants(φ, obs.Elevation)
	αʹ, δʹ := parallax.Topocentric(α, δ, Δ, ρsφʹ, ρcφʹ, ψ, jde)

	// Azimuth comes back measured westward from the South.
	A, h := coord.EqToHz(αʹ, δʹ, φ, ψ, sidereal.Apparent(jd))
	az = unit.PMod(A.Deg()+180, 360)

	alt = h.Deg()
	// Saemundsson is for true altitudes near and above the horizon; below
	// that the body is invisible and the formula's pole is approached.
	if alt > -1 {
		alt += refraction.Saemundsson(h).Deg()
	}
	return az, alt
}

// illuminated returns the sunlit fraction of the Moon's disk from the phase
// angle. Δ is the Earth-Moon distance in km.
func illuminated(jde float64, α unit.RA, δ unit.Angle, Δ float64) float64 {
	α0, δ0 := solar.ApparentEquatorial(jde)
	R := solar.Radius(base.J2000Century(jde)) * base.AU // km, same unit as Δ
	i := moonillum.PhaseAngleEq(α, δ, Δ, α0, δ0, R)
	return base.Illuminated(i)
}
