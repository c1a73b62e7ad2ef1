// Package timer implements the start/stop state machine that turns tracked
// time into intervals
package timer

import (
	"log/slog"
	"time"

	"github.com/ayoisaiah/tracker/internal/models"
)

// State is the state of the timer.
type State int

const (
	Idle State = iota
	Running
)

func (s State) String() string {
	if s == Running {
		return "running"
	}

	return "idle"
}

// Recorder stores completed intervals against a focus.
type Recorder interface {
	RecordInterval(focusID string, interval models.TimeInterval) error
}

// Status is a snapshot of the timer.
type Status struct {
	StartedAt time.Time
	FocusID   string
	Elapsed   time.Duration
	State     State
}

// Timer tracks time for one focus at a time. It is not safe for concurrent
// use; callers confine it to a single goroutine.
type Timer struct {
	recorder  Recorder
	now       func() time.Time
	log       *slog.Logger
	startedAt time.Time
	focusID   string
	state     State
}

// Option configures a Timer.
type Option func(*Timer)

// WithClock replaces the wall clock.
func WithClock(now func() time.Time) Option {
	return func(t *Timer) {
		t.now = now
	}
}

// WithLogger sets the logger used for warnings about out of sequence calls.
func WithLogger(l *slog.Logger) Option {
	return func(t *Timer) {
		t.log = l
	}
}

// New returns an idle timer that records intervals with r.
func New(r Recorder, opts ...Option) *Timer {
	t := &Timer{
		recorder: r,
		now:      time.Now,
		log:      slog.Default(),
	}

	for _, opt := range opts {
		opt(t)
	}

	return t
}

// Start begins tracking time for focusID. The focus is bound for the whole
// session: the interval is recorded against it even if another focus is
// selected before Stop.
func (t *Timer) Start(focusID string) error {
	if t.state == Running {
		t.log.Warn(
			"start ignored: timer already running",
			slog.String("focus", t.focusID),
			slog.Time("started_at", t.startedAt),
		)

		return ErrAlreadyRunning
	}

	if focusID == "" {
		return ErrNoFocus
	}

	t.state = Running
	t.focusID = focusID
	t.startedAt = t.now()

	t.log.Debug(
		"timer started",
		slog.String("focus", focusID),
		slog.Time("started_at", t.startedAt),
	)

	return nil
}

// Stop ends the running session and records it. If recording fails the
// timer keeps running so that Stop can be retried.
func (t *Timer) Stop() (models.TimeInterval, error) {
	if t.state != Running {
		t.log.Warn("stop ignored: timer is not running")
		return models.TimeInterval{}, ErrNotRunning
	}

	length := t.now().Sub(t.startedAt)
	if length < 0 {
		t.log.Warn(
			"clock moved backwards during session, recording zero length",
			slog.String("focus", t.focusID),
			slog.Duration("length", length),
		)

		length = 0
	}

	interval := models.NewTimeInterval(t.startedAt, length)

	err := t.recorder.RecordInterval(t.focusID, interval)
	if err != nil {
		return models.TimeInterval{}, err
	}

	t.log.Info(
		"session recorded",
		slog.String("focus", t.focusID),
		slog.Duration("length", length),
	)

	t.reset()

	return interval, nil
}

// Discard abandons the running session without recording it.
func (t *Timer) Discard() {
	if t.state == Running {
		t.log.Info(
			"session discarded",
			slog.String("focus", t.focusID),
			slog.Duration("length", t.Elapsed()),
		)
	}

	t.reset()
}

// Running reports whether a session is in progress.
func (t *Timer) Running() bool {
	return t.state == Running
}

// FocusID returns the focus bound to the running session.
func (t *Timer) FocusID() string {
	return t.focusID
}

// Elapsed returns the time tracked so far in the running session.
func (t *Timer) Elapsed() time.Duration {
	if t.state != Running {
		return 0
	}

	return max(t.now().Sub(t.startedAt), 0)
}

// Status returns a snapshot of the timer.
func (t *Timer) Status() Status {
	return Status{
		State:     t.state,
		FocusID:   t.focusID,
		StartedAt: t.startedAt,
		Elapsed:   t.Elapsed(),
	}
}

func (t *Timer) reset() {
	t.state = Idle
	t.focusID = ""
	t.startedAt = time.Time{}
}
