package runner

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"gonum.org/v1/plot/vg"

	"github.com/devskill-org/sunpath/chart"
	"github.com/devskill-org/sunpath/locale"
	"github.com/devskill-org/sunpath/sun"
)

// Config represents the configuration of a run
type Config struct {
	// Observer
	Name      string  `json:"name"`      // Location name shown in the chart title
	Region    string  `json:"region"`    // Region shown in the chart title
	Timezone  string  `json:"timezone"`  // IANA timezone of the observer
	Latitude  float64 `json:"latitude"`  // Latitude in degrees
	Longitude float64 `json:"longitude"` // Longitude in degrees

	// Run settings
	Date       string `json:"date"`        // Day to process (YYYYMMDD or YYYY-MM-DD), empty for today
	OutputDir  string `json:"output_dir"`  // Directory receiving the chart and the badges
	Locale     string `json:"locale"`      // Embedded translation table code
	LocaleFile string `json:"locale_file"` // Optional YAML translation table overriding the embedded one

	// Chart settings
	ChartWidth      float64       `json:"chart_width"`      // Figure width in inches
	ChartHeight     float64       `json:"chart_height"`     // Figure height in inches
	ChartDPI        int           `json:"chart_dpi"`        // Raster resolution
	AzimuthPadding  float64       `json:"azimuth_padding"`  // Degrees added around the summer sunlit azimuths
	TimePadding     time.Duration `json:"time_padding"`     // Time added around the summer sunlit hours
	SunlitThreshold float64       `json:"sunlit_threshold"` // Altitude from which the sun counts as up

	// Logging settings
	LogLevel  string `json:"log_level"`  // Log level: debug, info, warn, error
	LogFormat string `json:"log_format"` // Log format: text, json
}

// DefaultConfig returns a configuration with default values
func DefaultConfig() *Config {
	return &Config{
		Name:            sun.Brest.Name,
		Region:          sun.Brest.Region,
		Timezone:        sun.Brest.Timezone,
		Latitude:        sun.Brest.Latitude,
		Longitude:       sun.Brest.Longitude,
		OutputDir:       ".",
		Locale:          locale.DefaultCode,
		ChartWidth:      20,
		ChartHeight:     7,
		ChartDPI:        200,
		AzimuthPadding:  5,
		TimePadding:     15 * time.Minute,
		SunlitThreshold: 0,
		LogLevel:        "info",
		LogFormat:       "text",
	}
}

// LoadConfig loads configuration from a JSON file
func LoadConfig(filename string) (*Config, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open config file: %w", err)
	}
	defer file.Close()

	return LoadConfigFromReader(file)
}

// LoadConfigFromReader loads configuration from an io.Reader
func LoadConfigFromReader(reader io.Reader) (*Config, error) {
	config := DefaultConfig()

	decoder := json.NewDecoder(reader)
	if err := decoder.Decode(config); err != nil {
		return nil, fmt.Errorf("failed to decode config JSON: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return config, nil
}

// LoadEnv reads a dotenv file, if present, and applies SUNPATH_* overrides.
func (c *Config) LoadEnv(filename string) error {
	if filename != "" {
		if err := godotenv.Load(filename); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("failed to load env file: %w", err)
		}
	}
	return c.applyEnvOverrides()
}

func (c *Config) applyEnvOverrides() error {
	if v := os.Getenv("SUNPATH_DATE"); v != "" {
		c.Date = v
	}
	if v := os.Getenv("SUNPATH_OUTPUT_DIR"); v != "" {
		c.OutputDir = v
	}
	if v := os.Getenv("SUNPATH_LOCALE"); v != "" {
		c.Locale = v
	}
	if v := os.Getenv("SUNPATH_LOCALE_FILE"); v != "" {
		c.LocaleFile = v
	}
	if v := os.Getenv("SUNPATH_LOG_LEVEL"); v != "" {
		c.LogLevel = v
	}
	if v := os.Getenv("SUNPATH_LOG_FORMAT"); v != "" {
		c.LogFormat = v
	}
	if v := os.Getenv("SUNPATH_CHART_DPI"); v != "" {
		dpi, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid SUNPATH_CHART_DPI: %w", err)
		}
		c.ChartDPI = dpi
	}
	return nil
}

// Validate checks if the configuration values are valid
func (c *Config) Validate() error {
	if c.Name == "" {
		return &ValidationError{Field: "name", Message: "cannot be empty"}
	}

	if _, err := time.LoadLocation(c.Timezone); err != nil || c.Timezone == "" {
		return &ValidationError{Field: "timezone", Message: fmt.Sprintf("unknown timezone %q", c.Timezone)}
	}

	if c.Latitude < -90 || c.Latitude > 90 {
		return &ValidationError{Field: "latitude", Message: fmt.Sprintf("must be between -90 and 90, got: %f", c.Latitude)}
	}

	if c.Longitude < -180 || c.Longitude > 180 {
		return &ValidationError{Field: "longitude", Message: fmt.Sprintf("must be between -180 and 180, got: %f", c.Longitude)}
	}

	if c.Date != "" {
		if _, err := sun.ParseDay(c.Date, time.UTC); err != nil {
			return err
		}
	}

	if c.OutputDir == "" {
		return &ValidationError{Field: "output_dir", Message: "cannot be empty"}
	}

	if c.Locale == "" {
		return &ValidationError{Field: "locale", Message: "cannot be empty"}
	}

	if c.ChartWidth <= 0 || c.ChartHeight <= 0 {
		return &ValidationError{Field: "chart_width", Message: fmt.Sprintf("chart size must be positive, got: %gx%g", c.ChartWidth, c.ChartHeight)}
	}

	if c.ChartDPI <= 0 {
		return &ValidationError{Field: "chart_dpi", Message: fmt.Sprintf("must be greater than 0, got: %d", c.ChartDPI)}
	}

	if c.AzimuthPadding < 0 {
		return &ValidationError{Field: "azimuth_padding", Message: fmt.Sprintf("must be non-negative, got: %f", c.AzimuthPadding)}
	}

	if c.TimePadding < 0 {
		return &ValidationError{Field: "time_padding", Message: fmt.Sprintf("must be non-negative, got: %s", c.TimePadding)}
	}

	if c.SunlitThreshold < -90 || c.SunlitThreshold > 90 {
		return &ValidationError{Field: "sunlit_threshold", Message: fmt.Sprintf("must be between -90 and 90, got: %f", c.SunlitThreshold)}
	}

	validLogLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLogLevels[c.LogLevel] {
		return &ValidationError{Field: "log_level", Message: fmt.Sprintf("invalid value %q, must be one of: debug, info, warn, error", c.LogLevel)}
	}

	validLogFormats := map[string]bool{
		"text": true,
		"json": true,
	}
	if !validLogFormats[c.LogFormat] {
		return &ValidationError{Field: "log_format", Message: fmt.Sprintf("invalid value %q, must be one of: text, json", c.LogFormat)}
	}

	return nil
}

// Location returns the observer described by the configuration.
func (c *Config) Location() sun.Location {
	return sun.Location{
		Name:      c.Name,
		Region:    c.Region,
		Timezone:  c.Timezone,
		Latitude:  c.Latitude,
		Longitude: c.Longitude,
	}
}

// ChartOptions converts the chart settings.
func (c *Config) ChartOptions() chart.Options {
	return chart.Options{
		Width:          vg.Length(c.ChartWidth) * vg.Inch,
		Height:         vg.Length(c.ChartHeight) * vg.Inch,
		DPI:            c.ChartDPI,
		AzimuthPadding: c.AzimuthPadding,
		TimePadding:    c.TimePadding,
		Threshold:      c.SunlitThreshold,
	}
}

// LoadTable returns the translation table of the run. Labels missing from a
// custom table file are taken from the embedded one.
func (c *Config) LoadTable() (*locale.Table, error) {
	base, err := locale.Load(c.Locale)
	if err != nil {
		return nil, err
	}
	if c.LocaleFile == "" {
		return base, nil
	}

	custom, err := locale.LoadFile(c.LocaleFile)
	if err != nil {
		return nil, err
	}
	custom.Labels = custom.Labels.Merge(base.Labels)
	return custom, nil
}

// MarshalJSON implements custom JSON marshaling to handle durations
func (c *Config) MarshalJSON() ([]byte, error) {
	type Alias Config
	return json.Marshal(&struct {
		*Alias
		TimePadding string `json:"time_padding"`
	}{
		Alias:       (*Alias)(c),
		TimePadding: c.TimePadding.String(),
	})
}

// UnmarshalJSON implements custom JSON unmarshaling to handle durations
func (c *Config) UnmarshalJSON(data []byte) error {
	type Alias Config
	aux := &struct {
		*Alias
		TimePadding string `json:"time_padding"`
	}{
		Alias: (*Alias)(c),
	}

	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}

	if aux.TimePadding != "" {
		var err error
		if c.TimePadding, err = time.ParseDuration(aux.TimePadding); err != nil {
			return fmt.Errorf("invalid time_padding: %w", err)
		}
	}

	return nil
}

// String returns a string representation of the config
func (c *Config) String() string {
	data, _ := json.MarshalIndent(c, "", "  ")
	return string(data)
}
