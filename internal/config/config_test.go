package config_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ayoisaiah/tracker/internal/config"
	"github.com/ayoisaiah/tracker/internal/store"
)

// defaultConfig returns a new Config instance with default values.
func defaultConfig(path string) *config.Config {
	return &config.Config{
		Storage: config.StorageConfig{
			Driver: store.DriverBolt,
		},
		Log: config.LogConfig{
			Level:      "info",
			MaxSize:    5,
			MaxBackups: 3,
		},
		Settings: config.SettingsConfig{
			RefreshInterval: time.Second,
		},
		Display: config.DisplayConfig{
			DarkTheme: true,
		},
		Notifications: config.NotificationConfig{
			Enabled: true,
		},
		PathToConfig: path,
	}
}

func TestViperWriteConfig(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.yml")

	cfg, err := config.New(
		config.WithViperConfig(configPath),
	)
	require.NoError(t, err)

	assert.Equal(t, defaultConfig(configPath), cfg)

	b, err := os.ReadFile(configPath)
	require.NoError(t, err, "default config was not written")

	for _, key := range []string{
		"dark_theme",
		"24hr_clock",
		"refresh_interval",
		"driver: bolt",
		"max_backups",
	} {
		assert.Contains(t, string(b), key)
	}
}

func TestViperReadConfig(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.yml")

	err := os.WriteFile(configPath, []byte(`display:
  dark_theme: false
  24hr_clock: true
settings:
  refresh_interval: 500
  cmd: notify-send "Tracked"
storage:
  driver: sqlite
  path: /tmp/tracker.sqlite
notifications:
  enabled: false
log:
  level: warn
  max_size: 10
  max_backups: 0
`), 0o600)
	require.NoError(t, err)

	want := &config.Config{
		Storage: config.StorageConfig{
			Driver: store.DriverSQLite,
			Path:   "/tmp/tracker.sqlite",
		},
		Log: config.LogConfig{
			Level:      "warn",
			MaxSize:    10,
			MaxBackups: 0,
		},
		Settings: config.SettingsConfig{
			Cmd:             `notify-send "Tracked"`,
			RefreshInterval: 500 * time.Millisecond,
		},
		Display: config.DisplayConfig{
			DarkTheme:      false,
			TwentyFourHour: true,
		},
		Notifications: config.NotificationConfig{
			Enabled: false,
		},
		PathToConfig: configPath,
	}

	cfg, err := config.New(
		config.WithViperConfig(configPath),
	)
	require.NoError(t, err)

	assert.Equal(t, want, cfg)
}

func TestViperPartialConfigKeepsDefaults(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.yml")

	err := os.WriteFile(configPath, []byte("settings:\n  refresh_interval: 2s\n"), 0o600)
	require.NoError(t, err)

	cfg, err := config.New(
		config.WithViperConfig(configPath),
	)
	require.NoError(t, err)

	want := defaultConfig(configPath)
	want.Settings.RefreshInterval = 2 * time.Second

	assert.Equal(t, want, cfg)
}

func TestNewRejectsInvalidConfig(t *testing.T) {
	cases := []struct {
		name string
		yaml string
	}{
		{name: "unknown driver", yaml: "storage:\n  driver: postgres\n"},
		{name: "refresh too fast", yaml: "settings:\n  refresh_interval: 10ms\n"},
		{name: "refresh too slow", yaml: "settings:\n  refresh_interval: 2h\n"},
		{name: "bad duration", yaml: "settings:\n  refresh_interval: soon\n"},
		{name: "unknown log level", yaml: "log:\n  level: loud\n"},
		{name: "no log size", yaml: "log:\n  max_size: 0\n"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			configPath := filepath.Join(t.TempDir(), "config.yml")

			err := os.WriteFile(configPath, []byte(tc.yaml), 0o600)
			require.NoError(t, err)

			cfg, err := config.New(config.WithViperConfig(configPath))
			assert.Error(t, err)
			assert.Nil(t, cfg)
		})
	}
}

func TestNewStopsAtFailingOption(t *testing.T) {
	boom := errors.New("boom")
	called := false

	_, err := config.New(
		func(*config.Config) error { return boom },
		func(*config.Config) error {
			called = true
			return nil
		},
	)

	assert.ErrorIs(t, err, boom)
	assert.False(t, called)
}
