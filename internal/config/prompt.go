package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/huh"
	"github.com/pterm/pterm"
	"github.com/pterm/pterm/putils"

	"github.com/ayoisaiah/tracker/internal/store"
)

// PromptOptions holds the user's responses to the first-run prompts.
type PromptOptions struct {
	Driver    string
	DarkTheme bool
	Notify    bool
}

// WithPromptConfig returns an Option that asks for the initial settings
// when no config file exists at configPath. It must come before
// WithViperConfig so the answers are written to the new file.
func WithPromptConfig(configPath string) Option {
	return func(c *Config) error {
		_, err := os.Stat(configPath)
		if err == nil || !errors.Is(err, os.ErrNotExist) {
			return err
		}

		opts, err := promptUser()
		if err != nil {
			return fmt.Errorf("user prompt failed: %w", err)
		}

		c.prompt = &opts

		return nil
	}
}

// promptUser handles the interactive configuration process.
func promptUser() (PromptOptions, error) {
	opts := PromptOptions{
		Driver:    store.DriverBolt,
		DarkTheme: true,
		Notify:    true,
	}

	_ = putils.BulletListFromString(`Follow the prompts below to configure Tracker for the first time.
Select your preferred value, or press ENTER to accept the defaults.
Edit the config file with 'tracker edit-config' to change any settings.`, " ").
		Render()

	pterm.Println()

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Storage backend").
				Options(
					huh.NewOption("bbolt (single file, one instance at a time)", store.DriverBolt).
						Selected(true),
					huh.NewOption("SQLite", store.DriverSQLite),
				).
				Value(&opts.Driver),
		),
		huh.NewGroup(
			huh.NewConfirm().
				Title("Is your terminal using a dark theme?").
				Value(&opts.DarkTheme),
			huh.NewConfirm().
				Title("Show a desktop notification when a session is recorded?").
				Value(&opts.Notify),
		),
	)

	err := form.Run()
	if err != nil {
		return opts, fmt.Errorf("form interaction failed: %w", err)
	}

	return opts, nil
}
