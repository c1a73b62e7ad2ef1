package store

import "github.com/ayoisaiah/tracker/internal/apperr"

var (
	// ErrCorruptPayload means the stored focus list could not be decoded.
	ErrCorruptPayload = &apperr.Error{
		Message: "stored focus list is corrupt",
	}

	errTrackerRunning = &apperr.Error{
		Message: "is tracker already running? Only one instance can be active at a time",
	}

	errUnknownDriver = &apperr.Error{
		Message: "unknown storage driver: %s",
	}

	errEncodeFocuses = &apperr.Error{
		Message: "unable to encode focus list",
	}
)
