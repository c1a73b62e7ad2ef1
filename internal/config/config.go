// Package config loads the tracker configuration from the YAML config file
// and command-line flags.
package config

import (
	"io"
	"os"
	"time"
)

type (
	// Config holds all configuration settings
	Config struct {
		Storage       StorageConfig      `mapstructure:"storage"`
		Log           LogConfig          `mapstructure:"log"`
		Settings      SettingsConfig     `mapstructure:"settings"`
		PathToConfig  string             `mapstructure:"-"`
		Display       DisplayConfig      `mapstructure:"display"`
		Notifications NotificationConfig `mapstructure:"notifications"`
		Debug         bool               `mapstructure:"-"`
		prompt        *PromptOptions
	}

	// SettingsConfig holds tracker behaviour settings
	SettingsConfig struct {
		// Cmd runs after every recorded session
		Cmd string `mapstructure:"cmd"`
		// RefreshInterval accepts a duration string or bare milliseconds
		RefreshInterval time.Duration `mapstructure:"-"`
	}

	// StorageConfig selects the database backend
	StorageConfig struct {
		Driver string `mapstructure:"driver"`
		// Path overrides the default database location when set
		Path string `mapstructure:"path"`
	}

	// LogConfig holds log file settings
	LogConfig struct {
		Level      string `mapstructure:"level"`
		MaxSize    int    `mapstructure:"max_size"`
		MaxBackups int    `mapstructure:"max_backups"`
	}

	// NotificationConfig holds notification settings
	NotificationConfig struct {
		Enabled bool `mapstructure:"enabled"`
	}

	// DisplayConfig holds display-related settings
	DisplayConfig struct {
		DarkTheme      bool `mapstructure:"dark_theme"`
		TwentyFourHour bool `mapstructure:"24hr_clock"`
	}

	// Option is a function that modifies Config
	Option func(*Config) error
)

const Version = "v0.3.0"

var (
	Stdin  io.Reader = os.Stdin
	Stdout io.Writer = os.Stdout
	Stderr io.Writer = os.Stderr
)

// New creates a new Config and applies options in order. The result is
// validated before it is returned.
func New(opts ...Option) (*Config, error) {
	cfg := &Config{}

	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, errConfigOption.Wrap(err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}
