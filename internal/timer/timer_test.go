package timer

import (
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ayoisaiah/tracker/internal/models"
)

type recorded struct {
	focusID  string
	interval models.TimeInterval
}

type fakeRecorder struct {
	err      error
	recorded []recorded
}

func (f *fakeRecorder) RecordInterval(id string, iv models.TimeInterval) error {
	if f.err != nil {
		return f.err
	}

	f.recorded = append(f.recorded, recorded{id, iv})

	return nil
}

type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.now = c.now.Add(d)
}

func newTestTimer() (*Timer, *fakeRecorder, *fakeClock) {
	rec := &fakeRecorder{}
	clock := &fakeClock{
		now: time.Date(2024, time.March, 4, 10, 0, 0, 0, time.Local),
	}

	t := New(
		rec,
		WithClock(clock.Now),
		WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))),
	)

	return t, rec, clock
}

func TestStartStopRecordsInterval(t *testing.T) {
	tm, rec, clock := newTestTimer()

	require.Equal(t, Idle, tm.Status().State)

	start := clock.Now()

	require.NoError(t, tm.Start("writing"))
	assert.True(t, tm.Running())

	clock.Advance(25 * time.Minute)
	assert.Equal(t, 25*time.Minute, tm.Elapsed())

	iv, err := tm.Stop()
	require.NoError(t, err)

	assert.False(t, tm.Running())
	assert.InDelta(t, 1500.0, iv.Length, 1e-9)
	assert.WithinDuration(t, start, iv.StartTime(), time.Microsecond)

	require.Len(t, rec.recorded, 1)
	assert.Equal(t, "writing", rec.recorded[0].focusID)
	assert.Equal(t, iv, rec.recorded[0].interval)
}

func TestRepeatedSessions(t *testing.T) {
	tm, rec, clock := newTestTimer()

	lengths := []time.Duration{time.Minute, 90 * time.Minute, 10 * time.Second}

	for _, l := range lengths {
		require.NoError(t, tm.Start("reading"))
		clock.Advance(l)

		_, err := tm.Stop()
		require.NoError(t, err)

		clock.Advance(5 * time.Minute)
	}

	require.Len(t, rec.recorded, len(lengths))

	for i, l := range lengths {
		assert.InDelta(t, l.Seconds(), rec.recorded[i].interval.Length, 1e-9)
	}
}

func TestStopWhileIdle(t *testing.T) {
	tm, rec, _ := newTestTimer()

	_, err := tm.Stop()

	assert.ErrorIs(t, err, ErrNotRunning)
	assert.Equal(t, Idle, tm.Status().State)
	assert.Empty(t, rec.recorded)
}

func TestStartWhileRunningKeepsSession(t *testing.T) {
	tm, rec, clock := newTestTimer()

	require.NoError(t, tm.Start("writing"))
	clock.Advance(10 * time.Minute)

	err := tm.Start("reading")
	assert.ErrorIs(t, err, ErrAlreadyRunning)
	assert.Equal(t, "writing", tm.FocusID())

	clock.Advance(5 * time.Minute)

	iv, err := tm.Stop()
	require.NoError(t, err)
	assert.InDelta(t, (15 * time.Minute).Seconds(), iv.Length, 1e-9)
	assert.Equal(t, "writing", rec.recorded[0].focusID)
}

func TestStartRequiresFocus(t *testing.T) {
	tm, _, _ := newTestTimer()

	assert.ErrorIs(t, tm.Start(""), ErrNoFocus)
	assert.False(t, tm.Running())
}

func TestNegativeLengthIsClamped(t *testing.T) {
	tm, rec, clock := newTestTimer()

	require.NoError(t, tm.Start("writing"))
	clock.Advance(-time.Hour)

	assert.Zero(t, tm.Elapsed())

	iv, err := tm.Stop()
	require.NoError(t, err)
	assert.Zero(t, iv.Length)
	require.Len(t, rec.recorded, 1)
}

func TestFailedRecordKeepsRunning(t *testing.T) {
	tm, rec, clock := newTestTimer()
	rec.err = errors.New("disk full")

	require.NoError(t, tm.Start("writing"))
	clock.Advance(time.Minute)

	_, err := tm.Stop()
	assert.ErrorIs(t, err, rec.err)
	assert.True(t, tm.Running())

	rec.err = nil
	clock.Advance(time.Minute)

	iv, err := tm.Stop()
	require.NoError(t, err)
	assert.InDelta(t, 120.0, iv.Length, 1e-9)
}

func TestDiscard(t *testing.T) {
	tm, rec, clock := newTestTimer()

	require.NoError(t, tm.Start("writing"))
	clock.Advance(time.Minute)

	tm.Discard()

	assert.False(t, tm.Running())
	assert.Empty(t, tm.FocusID())
	assert.Empty(t, rec.recorded)
}

func TestStateString(t *testing.T) {
	assert.Equal(t, "idle", Idle.String())
	assert.Equal(t, "running", Running.String())
}
