package sun

import (
	"fmt"
	"time"
)

// Location is the observer used for every computation of a run.
type Location struct {
	Name      string
	Region    string
	Timezone  string  // IANA identifier, e.g. "Europe/Paris"
	Latitude  float64 // degrees, north positive
	Longitude float64 // degrees, east positive
}

// Brest is the default observer.
var Brest = Location{
	Name:      "Brest",
	Region:    "France",
	Timezone:  "Europe/Paris",
	Latitude:  48.3814710,
	Longitude: -4.5142170,
}

// TimeLocation loads the observer's time zone.
func (l Location) TimeLocation() (*time.Location, error) {
	tz, err := time.LoadLocation(l.Timezone)
	if err != nil {
		return nil, fmt.Errorf("failed to load timezone %q: %w", l.Timezone, err)
	}
	return tz, nil
}

// MustTimeLocation is like TimeLocation but panics on error.
func (l Location) MustTimeLocation() *time.Location {
	tz, err := l.TimeLocation()
	if err != nil {
		panic(err)
	}
	return tz
}

func (l Location) String() string {
	return fmt.Sprintf("%s/%s (%.6f, %.6f)", l.Name, l.Region, l.Latitude, l.Longitude)
}
