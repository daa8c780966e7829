package sun

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDailyTrajectory_Sampling(t *testing.T) {
	tz := paris(t)

	traj, err := DailyTrajectory(Brest, time.Date(2024, 6, 21, 15, 42, 0, 0, tz))
	require.NoError(t, err)
	require.Len(t, traj.Samples, SamplesPerDay)

	first := traj.Samples[0]
	last := traj.Samples[len(traj.Samples)-1]
	assert.True(t, first.Time.Equal(time.Date(2024, 6, 21, 0, 0, 0, 0, tz)), "first sample at %s", first.Time)
	assert.True(t, last.Time.Equal(time.Date(2024, 6, 22, 0, 0, 0, 0, tz)), "last sample at %s", last.Time)

	for i := 1; i < len(traj.Samples); i++ {
		if step := traj.Samples[i].Time.Sub(traj.Samples[i-1].Time); step != SampleInterval {
			t.Fatalf("sample %d is %s after the previous one, expected %s", i, step, SampleInterval)
		}
	}

	assert.Equal(t, "20240621", traj.Day())
	assert.True(t, traj.Samples[144].Time.Equal(time.Date(2024, 6, 21, 12, 0, 0, 0, tz)))
}

func TestDailyTrajectory_DaylightSavingDay(t *testing.T) {
	tz := paris(t)

	traj, err := DailyTrajectory(Brest, time.Date(2024, 3, 31, 12, 0, 0, 0, tz))
	require.NoError(t, err)
	require.Len(t, traj.Samples, SamplesPerDay)

	assert.True(t, traj.Samples[0].Time.Equal(time.Date(2024, 3, 31, 0, 0, 0, 0, tz)))
	assert.True(t, traj.Samples[SamplesPerDay-1].Time.Equal(time.Date(2024, 4, 1, 0, 0, 0, 0, tz)))
	assert.Equal(t, 23*time.Hour, traj.End.Sub(traj.Start))
}

func TestDailyTrajectory_InvalidTimezone(t *testing.T) {
	loc := Brest
	loc.Timezone = "Mars/Olympus_Mons"

	_, err := DailyTrajectory(loc, time.Now())
	assert.Error(t, err)
}

func TestTrajectory_PeakAtSolarNoon(t *testing.T) {
	tz := paris(t)

	for _, day := range []time.Time{
		time.Date(2024, 6, 21, 0, 0, 0, 0, tz),
		time.Date(2024, 9, 15, 0, 0, 0, 0, tz),
		time.Date(2024, 12, 21, 0, 0, 0, 0, tz),
	} {
		traj, err := DailyTrajectory(Brest, day)
		require.NoError(t, err)

		peak, ok := traj.Peak()
		require.True(t, ok)
		for _, s := range traj.Samples {
			require.LessOrEqual(t, s.Altitude, peak.Altitude+1e-9)
		}

		// the sun crosses due South at the peak
		crossing := -1
		for i := 1; i < len(traj.Samples); i++ {
			if traj.Samples[i-1].Azimuth < 180 && traj.Samples[i].Azimuth >= 180 {
				crossing = i
				break
			}
		}
		require.NotEqual(t, -1, crossing, "no southern crossing on %s", traj.Day())

		diff := peak.Time.Sub(traj.Samples[crossing].Time)
		if diff < 0 {
			diff = -diff
		}
		assert.LessOrEqual(t, diff, 2*SampleInterval, "peak at %s, crossing at %s", peak.Time, traj.Samples[crossing].Time)

		daylight, err := DaySummary(Brest, day)
		require.NoError(t, err)
		diff = peak.Time.Sub(daylight.SolarNoon)
		if diff < 0 {
			diff = -diff
		}
		assert.LessOrEqual(t, diff, 10*time.Minute, "peak at %s, solar noon at %s", peak.Time, daylight.SolarNoon)
	}
}

func TestTrajectory_PeakEmpty(t *testing.T) {
	traj := &Trajectory{}
	_, ok := traj.Peak()
	assert.False(t, ok)
}

func TestTrajectory_SunlitDurationWinterShorter(t *testing.T) {
	tz := paris(t)

	summer, err := DailyTrajectory(Brest, time.Date(2024, 6, 21, 0, 0, 0, 0, tz))
	require.NoError(t, err)
	winter, err := DailyTrajectory(Brest, time.Date(2024, 12, 21, 0, 0, 0, 0, tz))
	require.NoError(t, err)

	summerLen := summer.SunlitDuration(0)
	winterLen := winter.SunlitDuration(0)

	assert.Less(t, winterLen, summerLen)
	assert.InDelta(t, 16*time.Hour, summerLen, float64(45*time.Minute))
	assert.InDelta(t, 8*time.Hour+20*time.Minute, winterLen, float64(45*time.Minute))
}

func TestSolstices(t *testing.T) {
	tz := paris(t)

	summer, winter, err := Solstices(Brest, time.Date(2024, 2, 10, 8, 0, 0, 0, tz))
	require.NoError(t, err)

	assert.Equal(t, "20240621", summer.Day())
	assert.Equal(t, "20241221", winter.Day())
}

func TestParseDay(t *testing.T) {
	tz := paris(t)

	tests := []struct {
		name    string
		input   string
		want    time.Time
		wantErr bool
	}{
		{name: "compact", input: "20240621", want: time.Date(2024, 6, 21, 0, 0, 0, 0, tz)},
		{name: "iso", input: "2024-12-21", want: time.Date(2024, 12, 21, 0, 0, 0, 0, tz)},
		{name: "surrounding spaces", input: " 20240101 ", want: time.Date(2024, 1, 1, 0, 0, 0, 0, tz)},
		{name: "slashes", input: "2024/06/21", wantErr: true},
		{name: "bad month", input: "20241321", wantErr: true},
		{name: "bad day", input: "2023-02-29", wantErr: true},
		{name: "empty", input: "", wantErr: true},
		{name: "garbage", input: "today", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseDay(tt.input, tz)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, ErrInvalidDate))

				var dateErr *DateError
				require.True(t, errors.As(err, &dateErr))
				assert.Equal(t, tt.input, dateErr.Input)
				return
			}
			require.NoError(t, err)
			assert.True(t, got.Equal(tt.want), "got %s, want %s", got, tt.want)
		})
	}
}

func TestParseDay_NilLocation(t *testing.T) {
	got, err := ParseDay("20240621", nil)
	require.NoError(t, err)
	assert.Equal(t, time.UTC, got.Location())
}
