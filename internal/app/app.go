// Package app is the tracker command-line application
package app

import (
	"github.com/pterm/pterm"
	"github.com/urfave/cli/v2"

	"github.com/ayoisaiah/tracker/internal/config"
)

// disableStyling disables all styling provided by pterm.
func disableStyling() {
	pterm.DisableColor()
	pterm.DisableStyling()
	pterm.Debug.Prefix.Text = ""
	pterm.Info.Prefix.Text = ""
	pterm.Success.Prefix.Text = ""
	pterm.Warning.Prefix.Text = ""
	pterm.Error.Prefix.Text = ""
	pterm.Fatal.Prefix.Text = ""
}

// Get retrieves the tracker app instance.
func Get() *cli.App {
	focusArg := "<#|name>"

	return &cli.App{
		Name: "tracker",
		Usage: `
		Tracker records how long you spend on each of your focuses and shows 
		a Monday to Sunday breakdown of the week. Run it without a command to 
		open the interactive timer.`,
		UsageText:            "[COMMAND] [OPTIONS]",
		Version:              config.Version,
		EnableBashCompletion: true,
		Commands: []*cli.Command{
			{
				Name:      "add",
				Usage:     "Add a focus",
				ArgsUsage: "[name]",
				Action:    withEnv(addAction),
			},
			{
				Name:         "remove",
				Aliases:      []string{"rm"},
				Usage:        "Remove a focus and all its recorded time",
				ArgsUsage:    focusArg,
				Flags:        []cli.Flag{yesFlag},
				Action:       withEnv(removeAction),
				BashComplete: completeFocuses,
			},
			{
				Name:    "list",
				Aliases: []string{"ls"},
				Usage:   "List focuses with their recorded time",
				Flags:   []cli.Flag{jsonFlag},
				Action:  withEnv(listAction),
			},
			{
				Name:         "select",
				Usage:        "Set the current focus",
				ArgsUsage:    focusArg,
				Action:       withEnv(selectAction),
				BashComplete: completeFocuses,
			},
			{
				Name:         "include",
				Usage:        "Include focuses in the weekly report",
				ArgsUsage:    focusArg + "...",
				Action:       withEnv(includeAction(true)),
				BashComplete: completeFocuses,
			},
			{
				Name:         "exclude",
				Usage:        "Exclude focuses from the weekly report",
				ArgsUsage:    focusArg + "...",
				Action:       withEnv(includeAction(false)),
				BashComplete: completeFocuses,
			},
			{
				Name:   "report",
				Usage:  "Show the weekly breakdown of the included focuses",
				Flags:  []cli.Flag{dateFlag, weekFlag, jsonFlag},
				Action: withEnv(reportAction),
			},
			{
				Name:   "edit-config",
				Usage:  "Edit the configuration file",
				Action: editConfigAction,
			},
		},
		Flags: []cli.Flag{
			noColorFlag,
			debugFlag,
			dbFlag,
			driverFlag,
		},
		Action: withEnv(defaultAction),
		Before: beforeAction,
		After:  afterAction,
	}
}
