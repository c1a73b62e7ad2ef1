// Package timeutil provides utility functions for working with local
// calendar days and durations.
package timeutil

import (
	"fmt"
	"math"
	"time"
)

const minutesInAnHour = 60

// Round rounds a time value in seconds, minutes, or hours to the nearest integer.
func Round(t float64) int {
	return int(math.Round(t))
}

// MinsToHoursAndMins expresses a minutes value in hours and mins.
func MinsToHoursAndMins(val int) (hrs, mins int) {
	hrs = int(math.Floor(float64(val) / float64(minutesInAnHour)))
	mins = val % minutesInAnHour

	return
}

// RoundToStart resets the given time to the start of the day.
func RoundToStart(t time.Time) time.Time {
	y, m, d := t.Date()

	return StartOfDay(y, m, d, t.Location())
}

// StartOfDay returns the first instant of the given calendar day in loc.
// When a daylight saving change skips midnight, that is the moment the
// clocks jump forward.
func StartOfDay(year int, month time.Month, day int, loc *time.Location) time.Time {
	t := time.Date(year, month, day, 0, 0, 0, 0, loc)

	// time.Date may resolve a skipped midnight into the previous day
	if t.Day() != time.Date(year, month, day, 0, 0, 0, 0, time.UTC).Day() {
		if _, end := t.ZoneBounds(); !end.IsZero() {
			t = end
		}
	}

	return t
}

// DaysBetween returns the number of calendar days from a to b, ignoring
// the time of day. Daylight saving transitions do not affect the count.
func DaysBetween(a, b time.Time) int {
	y1, m1, d1 := a.Date()
	y2, m2, d2 := b.Date()

	start := time.Date(y1, m1, d1, 0, 0, 0, 0, time.UTC)
	end := time.Date(y2, m2, d2, 0, 0, 0, 0, time.UTC)

	return int(end.Sub(start).Hours() / 24)
}

// FormatDuration renders d as "1h 05m" or "12m".
func FormatDuration(d time.Duration) string {
	hrs, mins := MinsToHoursAndMins(Round(d.Minutes()))

	if hrs == 0 {
		return fmt.Sprintf("%dm", mins)
	}

	return fmt.Sprintf("%dh %02dm", hrs, mins)
}

// FormatClock renders an elapsed duration as "HH:MM:SS".
func FormatClock(d time.Duration) string {
	total := int(d.Seconds())

	return fmt.Sprintf(
		"%02d:%02d:%02d",
		total/3600,
		(total%3600)/60,
		total%60,
	)
}

// MinutesToDuration converts a fractional minute count to a Duration.
func MinutesToDuration(m float64) time.Duration {
	return time.Duration(m * float64(time.Minute))
}
