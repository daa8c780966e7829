package sun

import (
	"math"
	"time"

	"github.com/sixdouglas/suncalc"
)

// Sample is the sun position at one instant.
type Sample struct {
	Time     time.Time
	Altitude float64 // degrees above the horizon
	Azimuth  float64 // degrees clockwise from North, [0, 360)
}

// Position returns the apparent sun altitude, corrected for atmospheric
// refraction, and the azimuth in degrees for the observer at t.
func Position(loc Location, t time.Time) (altitude, azimuth float64) {
	geometric, azimuth := geometricPosition(loc, t)
	return geometric + Refraction(geometric), azimuth
}

func geometricPosition(loc Location, t time.Time) (altitude, azimuth float64) {
	pos := suncalc.GetPosition(t, loc.Latitude, loc.Longitude)

	altitude = pos.Altitude * 180 / math.Pi
	// suncalc measures azimuth from South towards West
	azimuth = NormalizeAzimuth(pos.Azimuth*180/math.Pi + 180)
	return altitude, azimuth
}

// Refraction returns the atmospheric refraction in degrees for a geometric
// elevation in degrees, using the piecewise NOAA approximation. It is zero
// from 85 degrees up.
func Refraction(elevation float64) float64 {
	if elevation >= 85 {
		return 0
	}

	te := math.Tan(elevation * math.Pi / 180)
	var arcsec float64
	switch {
	case elevation > 5:
		arcsec = 58.1/te - 0.07/math.Pow(te, 3) + 0.000086/math.Pow(te, 5)
	case elevation > -0.575:
		arcsec = 1735 + elevation*(-518.2+elevation*(103.4+elevation*(-12.79+elevation*0.711)))
	default:
		arcsec = -20.774 / te
	}
	return arcsec / 3600
}

// At returns the Sample for the observer at t.
func At(loc Location, t time.Time) Sample {
	alt, az := Position(loc, t)
	return Sample{Time: t, Altitude: alt, Azimuth: az}
}

// NormalizeAzimuth folds any angle in degrees into [0, 360).
func NormalizeAzimuth(deg float64) float64 {
	deg = math.Mod(deg, 360)
	if deg < 0 {
		deg += 360
	}
	if deg >= 360 {
		deg = 0
	}
	return deg
}
