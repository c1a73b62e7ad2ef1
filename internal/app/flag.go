package app

import "github.com/urfave/cli/v2"

var (
	noColorFlag = &cli.BoolFlag{
		Name:  "no-color",
		Usage: "Disable coloured output",
	}

	debugFlag = &cli.BoolFlag{
		Name:  "debug",
		Usage: "Write debug records to the log file",
	}

	dbFlag = &cli.StringFlag{
		Name:  "db",
		Usage: "Path to the database file (overrides storage.path)",
	}

	driverFlag = &cli.StringFlag{
		Name:  "driver",
		Usage: "Storage backend: bolt or sqlite (overrides storage.driver)",
	}

	jsonFlag = &cli.BoolFlag{
		Name:  "json",
		Usage: "Print the output as JSON",
	}

	yesFlag = &cli.BoolFlag{
		Name:    "yes",
		Aliases: []string{"y"},
		Usage:   "Skip the confirmation prompt",
	}

	dateFlag = &cli.StringFlag{
		Name:    "date",
		Aliases: []string{"d"},
		Usage:   "Report on the week containing this date (e.g. 'last friday', '2024-03-06')",
	}

	weekFlag = &cli.IntFlag{
		Name:    "week",
		Aliases: []string{"w"},
		Usage:   "Shift the reported week by this many weeks (e.g. -1 for last week)",
	}
)
