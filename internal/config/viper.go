package config

import (
	"errors"
	"os"
	"time"

	"github.com/spf13/viper"

	"github.com/ayoisaiah/tracker/internal/store"
)

const (
	keyDarkTheme            = "display.dark_theme"
	keyTwentyFourHour       = "display.24hr_clock"
	keyRefreshInterval      = "settings.refresh_interval"
	keySessionCmd           = "settings.cmd"
	keyStorageDriver        = "storage.driver"
	keyStoragePath          = "storage.path"
	keyNotificationsEnabled = "notifications.enabled"
	keyLogLevel             = "log.level"
	keyLogMaxSize           = "log.max_size"
	keyLogMaxBackups        = "log.max_backups"
)

// WithViperConfig returns an Option that loads configuration from the YAML
// file at configPath. The file is created with default values if it does
// not exist.
func WithViperConfig(configPath string) Option {
	return func(c *Config) error {
		v := viper.New()

		v.SetConfigFile(configPath)
		v.SetConfigType("yaml")

		setupViper(v, c)

		c.PathToConfig = configPath

		err := v.ReadInConfig()
		if err == nil {
			return loadViperConfig(v, c)
		}

		if !errors.Is(err, os.ErrNotExist) {
			return errReadConfig.Wrap(err)
		}

		if err := v.WriteConfig(); err != nil {
			return errWriteConfig.Wrap(err)
		}

		return loadViperConfig(v, c)
	}
}

// setupViper configures Viper with defaults and prompt values.
func setupViper(v *viper.Viper, c *Config) {
	v.SetDefault(keyDarkTheme, true)
	v.SetDefault(keyTwentyFourHour, false)
	v.SetDefault(keyRefreshInterval, "1s")
	v.SetDefault(keySessionCmd, "")
	v.SetDefault(keyStorageDriver, store.DriverBolt)
	v.SetDefault(keyStoragePath, "")
	v.SetDefault(keyNotificationsEnabled, true)
	v.SetDefault(keyLogLevel, "info")
	v.SetDefault(keyLogMaxSize, 5)
	v.SetDefault(keyLogMaxBackups, 3)

	if c.prompt != nil {
		v.Set(keyStorageDriver, c.prompt.Driver)
		v.Set(keyDarkTheme, c.prompt.DarkTheme)
		v.Set(keyNotificationsEnabled, c.prompt.Notify)
	}
}

// loadViperConfig loads configuration from Viper into the Config struct.
func loadViperConfig(v *viper.Viper, c *Config) error {
	if err := v.Unmarshal(c); err != nil {
		return errReadConfig.Wrap(err)
	}

	dur, err := parseDuration(v.GetString(keyRefreshInterval))
	if err != nil {
		return err
	}

	c.Settings.RefreshInterval = dur

	return nil
}

// parseDuration accepts Go duration strings and bare millisecond values.
func parseDuration(s string) (time.Duration, error) {
	dur, err := time.ParseDuration(s)
	if err == nil {
		return dur, nil
	}

	ms, err := time.ParseDuration(s + "ms")
	if err != nil {
		return 0, errInvalidDuration.Fmt(s)
	}

	return ms, nil
}
