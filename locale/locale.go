// Package locale holds the translation tables used for dates and chart labels.
package locale

import (
	"embed"
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

//go:embed tables/*.yaml
var tables embed.FS

// DefaultCode is the table used when none is configured.
const DefaultCode = "fr"

// Labels are the user facing strings of a run.
type Labels struct {
	LastUpdate     string `yaml:"lastUpdate"`
	Altitude       string `yaml:"altitude"`
	Azimuth        string `yaml:"azimuth"`
	Title          string `yaml:"title"`
	WinterSolstice string `yaml:"winterSolstice"`
	SummerSolstice string `yaml:"summerSolstice"`
	AzimuthAxis    string `yaml:"azimuthAxis"`
	AltitudeAxis   string `yaml:"altitudeAxis"`
	TimeAxis       string `yaml:"timeAxis"`
	East           string `yaml:"east"`
	South          string `yaml:"south"`
	West           string `yaml:"west"`
}

// Table maps canonical English weekday and month names to localized ones.
type Table struct {
	Code     string            `yaml:"code"`
	Weekdays map[string]string `yaml:"weekdays"`
	Months   map[string]string `yaml:"months"`
	Labels   Labels            `yaml:"labels"`
}

// Load returns the embedded table for code, e.g. "fr".
func Load(code string) (*Table, error) {
	data, err := tables.ReadFile("tables/" + code + ".yaml")
	if err != nil {
		return nil, fmt.Errorf("unknown locale %q: %w", code, err)
	}
	return Parse(data)
}

// LoadFile reads a table from a YAML file on disk.
func LoadFile(path string) (*Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read locale file: %w", err)
	}
	return Parse(data)
}

// Parse decodes a YAML table.
func Parse(data []byte) (*Table, error) {
	var t Table
	if err := yaml.Unmarshal(data, &t); err != nil {
		return nil, fmt.Errorf("parse locale table: %w", err)
	}
	if t.Code == "" {
		return nil, errors.New("locale table has no code")
	}
	return &t, nil
}

// Weekday returns the localized name of d, or its English name when missing.
func (t *Table) Weekday(d time.Weekday) string {
	if name, ok := t.Weekdays[d.String()]; ok && name != "" {
		return name
	}
	return d.String()
}

// Month returns the localized name of m, or its English name when missing.
func (t *Table) Month(m time.Month) string {
	if name, ok := t.Months[m.String()]; ok && name != "" {
		return name
	}
	return m.String()
}

// FormatDate renders t as "<weekday> <DD> <month> <YYYY>", for instance
// "Vendredi 21 Juin 2024".
func (t *Table) FormatDate(ts time.Time) string {
	return fmt.Sprintf("%s %02d %s %d", t.Weekday(ts.Weekday()), ts.Day(), t.Month(ts.Month()), ts.Year())
}

// Merge fills the empty labels of l from base.
func (l Labels) Merge(base Labels) Labels {
	pick := func(v, fallback string) string {
		if v == "" {
			return fallback
		}
		return v
	}
	return Labels{
		LastUpdate:     pick(l.LastUpdate, base.LastUpdate),
		Altitude:       pick(l.Altitude, base.Altitude),
		Azimuth:        pick(l.Azimuth, base.Azimuth),
		Title:          pick(l.Title, base.Title),
		WinterSolstice: pick(l.WinterSolstice, base.WinterSolstice),
		SummerSolstice: pick(l.SummerSolstice, base.SummerSolstice),
		AzimuthAxis:    pick(l.AzimuthAxis, base.AzimuthAxis),
		AltitudeAxis:   pick(l.AltitudeAxis, base.AltitudeAxis),
		TimeAxis:       pick(l.TimeAxis, base.TimeAxis),
		East:           pick(l.East, base.East),
		South:          pick(l.South, base.South),
		West:           pick(l.West, base.West),
	}
}
