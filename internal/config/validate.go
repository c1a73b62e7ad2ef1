package config

import (
	"slices"
	"strings"
	"time"

	"github.com/ayoisaiah/tracker/internal/store"
)

var (
	minRefreshInterval = 100 * time.Millisecond
	maxRefreshInterval = time.Minute

	validDrivers   = []string{store.DriverBolt, store.DriverSQLite}
	validLogLevels = []string{"debug", "info", "warn", "error"}
)

// Validate performs validation checks on the Config struct and its fields.
func (c *Config) Validate() error {
	if !slices.Contains(validDrivers, c.Storage.Driver) {
		return errUnknownDriver.Fmt(
			strings.Join(validDrivers, ", "),
			c.Storage.Driver,
		)
	}

	if c.Settings.RefreshInterval < minRefreshInterval ||
		c.Settings.RefreshInterval > maxRefreshInterval {
		return errInvalidRefreshInterval.Fmt(
			minRefreshInterval,
			maxRefreshInterval,
			c.Settings.RefreshInterval,
		)
	}

	if !slices.Contains(validLogLevels, strings.ToLower(c.Log.Level)) {
		return errInvalidLogLevel.Fmt(
			strings.Join(validLogLevels, ", "),
			c.Log.Level,
		)
	}

	if c.Log.MaxSize <= 0 || c.Log.MaxBackups < 0 {
		return errInvalidLogRotation
	}

	return nil
}
