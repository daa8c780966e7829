// Package badge writes the small JSON status files consumed by badge
// rendering services (shields.io endpoint schema).
package badge

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
)

const (
	// SchemaVersion is the endpoint schema version expected by shields.io.
	SchemaVersion = 1

	// DefaultColor is used for every status badge.
	DefaultColor = "green"
)

// Fixed output file names.
const (
	LastUpdateFile      = "last_update.json"
	CurrentAltitudeFile = "current_altitude.json"
	CurrentAzimuthFile  = "current_azimuth.json"
)

// Badge is one status artifact.
type Badge struct {
	SchemaVersion int    `json:"schemaVersion"`
	Label         string `json:"label"`
	Message       string `json:"message"`
	Color         string `json:"color"`
}

// New returns a green badge with the current schema version.
func New(label, message string) Badge {
	return Badge{
		SchemaVersion: SchemaVersion,
		Label:         label,
		Message:       message,
		Color:         DefaultColor,
	}
}

// FormatDegrees formats an angle with three decimals.
func FormatDegrees(v float64) string {
	return strconv.FormatFloat(v, 'f', 3, 64)
}

// Encode writes b as a single JSON object.
func Encode(w io.Writer, b Badge) error {
	if err := json.NewEncoder(w).Encode(b); err != nil {
		return fmt.Errorf("failed to encode badge JSON: %w", err)
	}
	return nil
}

// Decode reads a badge from r.
func Decode(r io.Reader) (Badge, error) {
	var b Badge
	if err := json.NewDecoder(r).Decode(&b); err != nil {
		return Badge{}, fmt.Errorf("failed to decode badge JSON: %w", err)
	}
	return b, nil
}

// Write creates or truncates path and writes b to it.
func Write(path string, b Badge) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create badge file: %w", err)
	}
	defer file.Close()

	if err := Encode(file, b); err != nil {
		return err
	}
	return file.Close()
}

// Read loads a badge previously written by Write.
func Read(path string) (Badge, error) {
	file, err := os.Open(path)
	if err != nil {
		return Badge{}, fmt.Errorf("failed to open badge file: %w", err)
	}
	defer file.Close()

	return Decode(file)
}
