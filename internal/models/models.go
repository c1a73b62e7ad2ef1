// Package models defines the focus and time interval records that the
// tracker persists
package models

import (
	"math"
	"time"

	"github.com/google/uuid"
)

// TimeInterval is one completed tracking session.
type TimeInterval struct {
	// Start is the wall-clock start in Unix epoch seconds
	Start float64 `json:"start"`
	// Length is the session length in seconds
	Length float64 `json:"length"`
}

// Focus is a named activity that time is tracked against.
type Focus struct {
	ID    string         `json:"id"`
	Name  string         `json:"name"`
	Times []TimeInterval `json:"times"`
	// IsSelected marks the focus for inclusion in the weekly report. It is
	// presentation state that is persisted alongside the focus.
	IsSelected bool `json:"isSelected"`
}

// NewTimeInterval creates an interval that starts at start and lasts for
// length. Negative lengths are stored as zero.
func NewTimeInterval(start time.Time, length time.Duration) TimeInterval {
	if length < 0 {
		length = 0
	}

	return TimeInterval{
		Start:  float64(start.UnixNano()) / float64(time.Second),
		Length: length.Seconds(),
	}
}

// StartTime converts the epoch start to a local time value.
func (t TimeInterval) StartTime() time.Time {
	sec, frac := math.Modf(t.Start)

	return time.Unix(int64(sec), int64(math.Round(frac*float64(time.Second))))
}

// Duration returns the length of the interval.
func (t TimeInterval) Duration() time.Duration {
	return time.Duration(t.Length * float64(time.Second))
}

// Minutes returns the length of the interval in minutes.
func (t TimeInterval) Minutes() float64 {
	return t.Length / 60
}

// NewFocus creates a focus with a fresh identifier and no recorded time.
func NewFocus(name string) *Focus {
	return &Focus{
		ID:    uuid.NewString(),
		Name:  name,
		Times: []TimeInterval{},
	}
}

// Clone returns a deep copy of the focus.
func (f *Focus) Clone() *Focus {
	c := *f

	c.Times = make([]TimeInterval, len(f.Times))
	copy(c.Times, f.Times)

	return &c
}

// Total returns the sum of all recorded intervals.
func (f *Focus) Total() time.Duration {
	var total time.Duration

	for _, t := range f.Times {
		total += t.Duration()
	}

	return total
}
