package focus

import "github.com/ayoisaiah/tracker/internal/apperr"

var (
	ErrEmptyName = &apperr.Error{
		Message: "focus name cannot be empty",
	}

	ErrFocusNotFound = &apperr.Error{
		Message: "focus not found: %s",
	}

	ErrIndexOutOfRange = &apperr.Error{
		Message: "no focus at position %d",
	}

	errPersist = &apperr.Error{
		Message: "unable to save focuses",
	}
)
