package app

import "github.com/ayoisaiah/tracker/internal/apperr"

var (
	errMissingFocus = &apperr.Error{
		Message: "specify a focus by its position or name",
	}

	errConfirmRequired = &apperr.Error{
		Message: "refusing to remove %q without confirmation: pass --yes",
	}

	errInvalidDate = &apperr.Error{
		Message: "unable to parse date %q",
	}
)
