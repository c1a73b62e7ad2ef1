package timer

import "github.com/ayoisaiah/tracker/internal/apperr"

var (
	ErrAlreadyRunning = &apperr.Error{
		Message: "timer is already running",
	}

	ErrNotRunning = &apperr.Error{
		Message: "timer is not running",
	}

	ErrNoFocus = &apperr.Error{
		Message: "select a focus before starting the timer",
	}
)
