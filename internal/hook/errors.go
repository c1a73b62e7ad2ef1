package hook

import "github.com/ayoisaiah/tracker/internal/apperr"

var (
	errParseCmd = &apperr.Error{
		Message: "unable to parse settings.cmd option",
	}

	errRunCmd = &apperr.Error{
		Message: "session command %q failed",
	}

	errNotify = &apperr.Error{
		Message: "unable to display notification",
	}
)
