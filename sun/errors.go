package sun

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidDate is returned when a day string cannot be parsed.
	ErrInvalidDate = errors.New("invalid date")

	// ErrEmptyWindow is returned when no sample reaches the altitude threshold.
	ErrEmptyWindow = errors.New("empty sunlit window")
)

// DateError represents a malformed day string
type DateError struct {
	Input string
	Err   error
}

func (e *DateError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%v: %q", ErrInvalidDate, e.Input)
	}
	return fmt.Sprintf("%v: %q: %v", ErrInvalidDate, e.Input, e.Err)
}

func (e *DateError) Unwrap() error {
	return e.Err
}

// Is reports ErrInvalidDate as a match so callers can use errors.Is.
func (e *DateError) Is(target error) bool {
	return target == ErrInvalidDate
}

// WindowError represents a trajectory in which the sun never reaches the threshold
type WindowError struct {
	Day       string
	Threshold float64
}

func (e *WindowError) Error() string {
	return fmt.Sprintf("%v: no sample at or above %.1f° on %s", ErrEmptyWindow, e.Threshold, e.Day)
}

func (e *WindowError) Is(target error) bool {
	return target == ErrEmptyWindow
}
