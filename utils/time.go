// Package utils provides small time helpers shared by the sunpath packages.
package utils //nolint:revive // utils is a common and acceptable package name

import "time"

// DayStampLayout is the compact day format used for dates, e.g. 20240621.
const DayStampLayout = "20060102"

// GetDayStamp formats t as YYYYMMDD in its own location.
func GetDayStamp(t time.Time) string {
	return t.Format(DayStampLayout)
}

// StartOfDay returns local midnight of the calendar day containing t.
func StartOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// NextDay returns local midnight of the calendar day following t.
func NextDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d+1, 0, 0, 0, 0, t.Location())
}

// OnDay returns the wall-clock time of t placed on the calendar day of day,
// in day's location.
func OnDay(day, t time.Time) time.Time {
	local := t.In(day.Location())
	y, m, d := day.Date()
	return time.Date(y, m, d, local.Hour(), local.Minute(), local.Second(), local.Nanosecond(), day.Location())
}
