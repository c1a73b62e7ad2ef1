package config

import "github.com/ayoisaiah/tracker/internal/apperr"

var (
	errConfigOption = &apperr.Error{
		Message: "config option error",
	}

	errReadConfig = &apperr.Error{
		Message: "reading config file failed",
	}

	errWriteConfig = &apperr.Error{
		Message: "writing default config failed",
	}

	errInvalidDuration = &apperr.Error{
		Message: "invalid duration format: %s",
	}

	errUnknownDriver = &apperr.Error{
		Message: "storage driver must be one of %s, got %q",
	}

	errInvalidRefreshInterval = &apperr.Error{
		Message: "refresh interval must be between %v and %v, got %v",
	}

	errInvalidLogLevel = &apperr.Error{
		Message: "log level must be one of %s, got %q",
	}

	errInvalidLogRotation = &apperr.Error{
		Message: "log max_size must be positive and max_backups cannot be negative",
	}
)
