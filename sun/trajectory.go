package sun

import (
	"fmt"
	"strings"
	"time"

	"github.com/devskill-org/sunpath/utils"
)

const (
	// SamplesPerDay covers local midnight to the next midnight inclusive.
	SamplesPerDay = 289

	// SampleInterval is the spacing between samples on a regular day.
	SampleInterval = 5 * time.Minute
)

// Trajectory is the course of the sun over one calendar day.
type Trajectory struct {
	Location Location
	Start    time.Time // local midnight of the day
	End      time.Time // local midnight of the following day
	Samples  []Sample
}

// DailyTrajectory samples the sun position for the calendar day containing day
// in the observer's time zone. Samples are evenly spaced between the two
// midnights so the first and last land exactly on them; on days without a
// daylight saving transition the spacing is SampleInterval.
func DailyTrajectory(loc Location, day time.Time) (*Trajectory, error) {
	tz, err := loc.TimeLocation()
	if err != nil {
		return nil, err
	}

	local := day.In(tz)
	start := utils.StartOfDay(local)
	end := utils.NextDay(local)

	step := end.Sub(start) / (SamplesPerDay - 1)
	samples := make([]Sample, SamplesPerDay)
	for i := range samples {
		t := start.Add(time.Duration(i) * step)
		if i == SamplesPerDay-1 {
			t = end
		}
		samples[i] = At(loc, t)
	}

	return &Trajectory{
		Location: loc,
		Start:    start,
		End:      end,
		Samples:  samples,
	}, nil
}

// Day returns the day stamp of the trajectory, e.g. 20240621.
func (t *Trajectory) Day() string {
	return utils.GetDayStamp(t.Start)
}

// Peak returns the sample with the highest altitude; the first one wins ties.
func (t *Trajectory) Peak() (Sample, bool) {
	if len(t.Samples) == 0 {
		return Sample{}, false
	}

	peak := t.Samples[0]
	for _, s := range t.Samples[1:] {
		if s.Altitude > peak.Altitude {
			peak = s
		}
	}
	return peak, true
}

// SunlitDuration is the number of samples at or above threshold times
// SampleInterval.
func (t *Trajectory) SunlitDuration(threshold float64) time.Duration {
	var count int
	for _, s := range t.Samples {
		if s.Altitude >= threshold {
			count++
		}
	}
	return time.Duration(count) * SampleInterval
}

// ParseDay parses a day given as YYYYMMDD or YYYY-MM-DD and returns its local
// midnight in tz.
func ParseDay(s string, tz *time.Location) (time.Time, error) {
	if tz == nil {
		tz = time.UTC
	}

	trimmed := strings.TrimSpace(s)
	layout := utils.DayStampLayout
	if strings.Contains(trimmed, "-") {
		layout = time.DateOnly
	}

	t, err := time.ParseInLocation(layout, trimmed, tz)
	if err != nil {
		return time.Time{}, &DateError{Input: s, Err: err}
	}
	return t, nil
}

// SummerSolstice returns local midnight of June 21st of year.
func SummerSolstice(year int, tz *time.Location) time.Time {
	return time.Date(year, time.June, 21, 0, 0, 0, 0, tz)
}

// WinterSolstice returns local midnight of December 21st of year.
func WinterSolstice(year int, tz *time.Location) time.Time {
	return time.Date(year, time.December, 21, 0, 0, 0, 0, tz)
}

// Solstices returns the summer and winter solstice trajectories of the year
// containing day.
func Solstices(loc Location, day time.Time) (summer, winter *Trajectory, err error) {
	tz, err := loc.TimeLocation()
	if err != nil {
		return nil, nil, err
	}

	year := day.In(tz).Year()
	summer, err = DailyTrajectory(loc, SummerSolstice(year, tz))
	if err != nil {
		return nil, nil, fmt.Errorf("summer solstice: %w", err)
	}
	winter, err = DailyTrajectory(loc, WinterSolstice(year, tz))
	if err != nil {
		return nil, nil, fmt.Errorf("winter solstice: %w", err)
	}
	return summer, winter, nil
}
