package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTimeInterval(t *testing.T) {
	start := time.Date(2024, time.March, 4, 10, 0, 0, 500_000_000, time.Local)

	iv := NewTimeInterval(start, 90*time.Minute)

	assert.InDelta(t, float64(start.Unix())+0.5, iv.Start, 1e-6)
	assert.InDelta(t, 5400.0, iv.Length, 1e-9)
	assert.InDelta(t, 90.0, iv.Minutes(), 1e-9)
	assert.Equal(t, 90*time.Minute, iv.Duration())
	assert.WithinDuration(t, start, iv.StartTime(), time.Microsecond)
}

func TestNewTimeIntervalClampsNegativeLength(t *testing.T) {
	iv := NewTimeInterval(time.Now(), -5*time.Second)

	assert.Zero(t, iv.Length)
}

func TestFocusCloneIsIndependent(t *testing.T) {
	f := NewFocus("Reading")
	f.Times = append(f.Times, TimeInterval{Start: 100, Length: 60})

	c := f.Clone()
	c.Times[0].Length = 120
	c.Times = append(c.Times, TimeInterval{Start: 200, Length: 30})
	c.IsSelected = true

	require.Len(t, f.Times, 1)
	assert.InDelta(t, 60.0, f.Times[0].Length, 0)
	assert.False(t, f.IsSelected)
	assert.Equal(t, f.ID, c.ID)
}

func TestNewFocus(t *testing.T) {
	a := NewFocus("Writing")
	b := NewFocus("Writing")

	assert.NotEmpty(t, a.ID)
	assert.NotEqual(t, a.ID, b.ID)
	assert.NotNil(t, a.Times)
	assert.Empty(t, a.Times)
	assert.False(t, a.IsSelected)
}

func TestFocusTotal(t *testing.T) {
	f := NewFocus("Coding")
	f.Times = []TimeInterval{
		{Start: 0, Length: 1800},
		{Start: 3600, Length: 900},
	}

	assert.Equal(t, 45*time.Minute, f.Total())
}
