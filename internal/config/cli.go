package config

import (
	"github.com/urfave/cli/v2"
)

// CLIOptions represents command-line configuration options.
type CLIOptions struct {
	DBPath string
	Driver string
	Debug  bool
}

// WithCLIConfig returns an Option that loads configuration from CLI flags.
func WithCLIConfig(ctx *cli.Context) Option {
	return func(c *Config) error {
		opts := CLIOptions{
			DBPath: ctx.String("db"),
			Driver: ctx.String("driver"),
			Debug:  ctx.Bool("debug"),
		}

		applyCLIOptions(c, opts)

		return nil
	}
}

// applyCLIOptions applies CLI options to the config. Flags take precedence
// over the config file.
func applyCLIOptions(c *Config, opts CLIOptions) {
	if opts.DBPath != "" {
		c.Storage.Path = opts.DBPath
	}

	if opts.Driver != "" {
		c.Storage.Driver = opts.Driver
	}

	if opts.Debug {
		c.Debug = true
		c.Log.Level = "debug"
	}
}
