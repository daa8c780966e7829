package sun

import (
	"time"

	"github.com/nathan-osman/go-sunrise"
	"github.com/sixdouglas/suncalc"

	"github.com/devskill-org/sunpath/utils"
)

// Daylight summarizes sunrise and sunset for one day.
type Daylight struct {
	Sunrise   time.Time
	Sunset    time.Time
	SolarNoon time.Time
	Length    time.Duration
}

// DaySummary returns sunrise, sunset, apparent solar noon and day length for
// the calendar day containing day, in the observer's time zone. Polar day and
// polar night have no sunrise and report ErrEmptyWindow.
func DaySummary(loc Location, day time.Time) (Daylight, error) {
	tz, err := loc.TimeLocation()
	if err != nil {
		return Daylight{}, err
	}

	local := day.In(tz)
	rise, set := sunrise.SunriseSunset(loc.Latitude, loc.Longitude, local.Year(), local.Month(), local.Day())
	if rise.IsZero() || set.IsZero() {
		return Daylight{}, &WindowError{Day: utils.GetDayStamp(local), Threshold: 0}
	}

	// local noon keeps suncalc on the right solar cycle
	noon := time.Date(local.Year(), local.Month(), local.Day(), 12, 0, 0, 0, tz)
	times := suncalc.GetTimes(noon, loc.Latitude, loc.Longitude)

	return Daylight{
		Sunrise:   rise.In(tz),
		Sunset:    set.In(tz),
		SolarNoon: times["solarNoon"].Value.In(tz),
		Length:    set.Sub(rise),
	}, nil
}
