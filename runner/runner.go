// Package runner composes one run: the three trajectories, the chart and the
// status badges.
package runner

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"

	"github.com/devskill-org/sunpath/badge"
	"github.com/devskill-org/sunpath/chart"
	"github.com/devskill-org/sunpath/sun"
	"github.com/devskill-org/sunpath/utils"
)

// Report describes what a run computed and wrote.
type Report struct {
	Day       time.Time
	DateLabel string
	Target    *sun.Trajectory
	Summer    *sun.Trajectory
	Winter    *sun.Trajectory
	Current   sun.Sample
	Daylight  *sun.Daylight // nil during polar day or night
	Layout    chart.Layout
	Files     []string
}

// Runner produces the chart and the badges for one location.
type Runner struct {
	config *Config
	logger zerolog.Logger
	now    func() time.Time
}

// NewRunner creates a runner reading the system clock.
func NewRunner(config *Config, logger zerolog.Logger) *Runner {
	return &Runner{
		config: config,
		logger: logger,
		now:    time.Now,
	}
}

// WithClock replaces the clock used for the current day and position.
func (r *Runner) WithClock(now func() time.Time) *Runner {
	r.now = now
	return r
}

// Run computes everything and writes the chart followed by the badges. Files
// written before a failure are left in place.
func (r *Runner) Run() (*Report, error) {
	loc := r.config.Location()
	tz, err := loc.TimeLocation()
	if err != nil {
		return nil, err
	}

	now := r.now().In(tz)
	day := utils.StartOfDay(now)
	if r.config.Date != "" {
		if day, err = sun.ParseDay(r.config.Date, tz); err != nil {
			return nil, err
		}
	}

	table, err := r.config.LoadTable()
	if err != nil {
		return nil, fmt.Errorf("failed to load translations: %w", err)
	}

	report := &Report{
		Day:       day,
		DateLabel: table.FormatDate(day),
	}

	logger := r.logger.With().Str("day", utils.GetDayStamp(day)).Str("location", loc.Name).Logger()
	logger.Info().Float64("latitude", loc.Latitude).Float64("longitude", loc.Longitude).Msg("computing sun path")

	if report.Target, err = sun.DailyTrajectory(loc, day); err != nil {
		return nil, fmt.Errorf("target day: %w", err)
	}
	if report.Summer, report.Winter, err = sun.Solstices(loc, day); err != nil {
		return nil, err
	}

	daylight, err := sun.DaySummary(loc, day)
	switch {
	case errors.Is(err, sun.ErrEmptyWindow):
		logger.Warn().Msg("no sunrise or sunset on this day")
	case err != nil:
		return nil, err
	default:
		report.Daylight = &daylight
		logger.Info().
			Str("sunrise", daylight.Sunrise.Format(time.RFC3339)).
			Str("sunset", daylight.Sunset.Format(time.RFC3339)).
			Str("solar_noon", daylight.SolarNoon.Format(time.RFC3339)).
			Dur("day_length", daylight.Length).
			Msg("daylight")
	}

	if err := os.MkdirAll(r.config.OutputDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}

	chartPath := filepath.Join(r.config.OutputDir, chart.FileName)
	input := chart.Input{
		Target:    report.Target,
		Summer:    report.Summer,
		Winter:    report.Winter,
		Location:  loc,
		DateLabel: report.DateLabel,
		Labels:    table.Labels,
	}
	if report.Layout, err = chart.RenderFile(chartPath, input, r.config.ChartOptions()); err != nil {
		return nil, err
	}
	if report.Layout.Clamped {
		logger.Warn().Msg("summer solstice never reaches the sunlit threshold, chart uses full ranges")
	}
	report.Files = append(report.Files, chartPath)
	logger.Debug().Str("file", chartPath).Msg("chart written")

	report.Current = sun.At(loc, now)
	badges := []struct {
		file  string
		badge badge.Badge
	}{
		{badge.LastUpdateFile, badge.New(table.Labels.LastUpdate, report.DateLabel)},
		{badge.CurrentAltitudeFile, badge.New(table.Labels.Altitude, badge.FormatDegrees(report.Current.Altitude))},
		{badge.CurrentAzimuthFile, badge.New(table.Labels.Azimuth, badge.FormatDegrees(report.Current.Azimuth))},
	}
	for _, b := range badges {
		path := filepath.Join(r.config.OutputDir, b.file)
		if err := badge.Write(path, b.badge); err != nil {
			return nil, err
		}
		report.Files = append(report.Files, path)
		logger.Debug().Str("file", path).Str("message", b.badge.Message).Msg("badge written")
	}

	logger.Info().
		Float64("altitude", report.Current.Altitude).
		Float64("azimuth", report.Current.Azimuth).
		Int("files", len(report.Files)).
		Msg("sun path updated")

	return report, nil
}
