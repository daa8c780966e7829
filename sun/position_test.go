package sun

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func paris(t *testing.T) *time.Location {
	t.Helper()
	tz, err := time.LoadLocation("Europe/Paris")
	if err != nil {
		t.Skipf("Skipping test: Europe/Paris timezone not available: %v", err)
	}
	return tz
}

func TestPosition_Ranges(t *testing.T) {
	locations := []Location{
		Brest,
		{Name: "Quito", Region: "Ecuador", Timezone: "UTC", Latitude: -0.1807, Longitude: -78.4678},
		{Name: "Sydney", Region: "Australia", Timezone: "UTC", Latitude: -33.8688, Longitude: 151.2093},
		{Name: "Reykjavik", Region: "Iceland", Timezone: "UTC", Latitude: 64.1466, Longitude: -21.9426},
		{Name: "Longyearbyen", Region: "Svalbard", Timezone: "UTC", Latitude: 78.2232, Longitude: 15.6267},
	}

	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	for _, loc := range locations {
		t.Run(loc.Name, func(t *testing.T) {
			for ts := start; ts.Year() == 2024; ts = ts.Add(7*time.Hour + 13*time.Minute) {
				alt, az := Position(loc, ts)
				if alt < -90 || alt > 90 {
					t.Fatalf("altitude %f out of range at %s", alt, ts)
				}
				if az < 0 || az >= 360 {
					t.Fatalf("azimuth %f out of range at %s", az, ts)
				}
			}
		})
	}
}

func TestPosition_Idempotent(t *testing.T) {
	ts := time.Date(2024, 6, 21, 10, 35, 0, 0, time.UTC)

	alt1, az1 := Position(Brest, ts)
	alt2, az2 := Position(Brest, ts)

	assert.InDelta(t, alt1, alt2, 1e-12)
	assert.InDelta(t, az1, az2, 1e-12)
}

func TestPosition_SummerSolsticeBrest(t *testing.T) {
	tz := paris(t)

	noonAlt, noonAz := Position(Brest, time.Date(2024, 6, 21, 14, 20, 0, 0, tz))
	morningAlt, morningAz := Position(Brest, time.Date(2024, 6, 21, 6, 0, 0, 0, tz))
	eveningAlt, eveningAz := Position(Brest, time.Date(2024, 6, 21, 20, 0, 0, 0, tz))

	// 90 - latitude + obliquity
	assert.InDelta(t, 65.06, noonAlt, 0.5)
	assert.InDelta(t, 180, noonAz, 3)

	assert.Greater(t, noonAlt, morningAlt)
	assert.Greater(t, noonAlt, eveningAlt)

	// rises in the north-east, still west-north-west in the evening
	assert.Less(t, morningAz, 90.0)
	assert.Greater(t, eveningAz, 270.0)
}

func TestPosition_WinterNoonIsLow(t *testing.T) {
	tz := paris(t)

	alt, az := Position(Brest, time.Date(2024, 12, 21, 13, 16, 0, 0, tz))

	// 90 - latitude - obliquity
	assert.InDelta(t, 18.18, alt, 0.5)
	assert.InDelta(t, 180, az, 3)
}

func TestAt(t *testing.T) {
	ts := time.Date(2024, 3, 20, 12, 0, 0, 0, time.UTC)

	s := At(Brest, ts)
	alt, az := Position(Brest, ts)

	assert.True(t, s.Time.Equal(ts))
	assert.Equal(t, alt, s.Altitude)
	assert.Equal(t, az, s.Azimuth)
}

func TestNormalizeAzimuth(t *testing.T) {
	tests := []struct {
		in   float64
		want float64
	}{
		{0, 0},
		{180, 180},
		{360, 0},
		{-90, 270},
		{720.5, 0.5},
		{-360, 0},
		{359.999, 359.999},
	}

	for _, tt := range tests {
		got := NormalizeAzimuth(tt.in)
		assert.InDeltaf(t, tt.want, got, 1e-9, "NormalizeAzimuth(%v)", tt.in)
		require.GreaterOrEqual(t, got, 0.0)
		require.Less(t, got, 360.0)
	}
}

func TestRefraction(t *testing.T) {
	tests := []struct {
		elevation float64
		want      float64
	}{
		{90, 0},
		{85, 0},
		{45, 0.01612},
		{10, 0.08811},
		{0, 0.48194},
		{-1, 0.33059},
	}

	for _, tt := range tests {
		assert.InDeltaf(t, tt.want, Refraction(tt.elevation), 1e-3, "Refraction(%v)", tt.elevation)
	}

	// never pushes the altitude out of range
	assert.LessOrEqual(t, 84.99+Refraction(84.99), 90.0)
	assert.GreaterOrEqual(t, -89.999+Refraction(-89.999), -90.0)
}

func TestPosition_ApparentAtSunrise(t *testing.T) {
	tz := paris(t)
	day := time.Date(2024, 6, 21, 0, 0, 0, 0, tz)

	daylight, err := DaySummary(Brest, day)
	require.NoError(t, err)

	geometric, _ := geometricPosition(Brest, daylight.Sunrise)
	apparent, _ := Position(Brest, daylight.Sunrise)

	assert.InDelta(t, -0.87, geometric, 0.2)
	assert.InDelta(t, -0.5, apparent, 0.2)
	assert.Greater(t, apparent, geometric)

	traj, err := DailyTrajectory(Brest, day)
	require.NoError(t, err)
	w, err := traj.SunlitWindow(0)
	require.NoError(t, err)

	var geometricFirst time.Time
	for _, s := range traj.Samples {
		if alt, _ := geometricPosition(Brest, s.Time); alt >= 0 {
			geometricFirst = s.Time
			break
		}
	}
	require.False(t, geometricFirst.IsZero())

	// refraction lifts the sun above the horizon a few minutes earlier
	assert.True(t, w.First.Time.Before(geometricFirst), "apparent %s, geometric %s", w.First.Time, geometricFirst)
	assert.InDelta(t, 0, float64(w.First.Time.Sub(daylight.Sunrise)), float64(SampleInterval))
}
