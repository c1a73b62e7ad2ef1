package app

import (
	"errors"
	"io"
	"log/slog"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/urfave/cli/v2"

	"github.com/ayoisaiah/tracker/internal/config"
	"github.com/ayoisaiah/tracker/internal/focus"
	"github.com/ayoisaiah/tracker/internal/logger"
	"github.com/ayoisaiah/tracker/internal/pathutil"
	"github.com/ayoisaiah/tracker/internal/store"
	"github.com/ayoisaiah/tracker/internal/ui"
)

// env holds everything an action needs. Close releases the database and
// the log file.
type env struct {
	cfg    *config.Config
	log    *slog.Logger
	db     store.DB
	store  *focus.Store
	closer io.Closer
}

func (e *env) Close() error {
	return errors.Join(e.db.Close(), e.closer.Close())
}

// isTerminal reports whether f is attached to a terminal.
func isTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// loadConfig reads the config file and applies the command-line overrides.
func loadConfig(ctx *cli.Context) (*config.Config, error) {
	if err := pathutil.Initialize(); err != nil {
		return nil, err
	}

	configPath := pathutil.ConfigFilePath()

	opts := []config.Option{}

	if isTerminal(os.Stdin) && isTerminal(os.Stdout) {
		opts = append(opts, config.WithPromptConfig(configPath))
	}

	opts = append(
		opts,
		config.WithViperConfig(configPath),
		config.WithCLIConfig(ctx),
	)

	return config.New(opts...)
}

// setup loads the config, opens the log file and the database, and reads
// the focus list.
func setup(ctx *cli.Context) (*env, error) {
	cfg, err := loadConfig(ctx)
	if err != nil {
		return nil, err
	}

	ui.DarkTheme = cfg.Display.DarkTheme

	log, closer := logger.New(pathutil.LogFilePath(), cfg.Log)
	slog.SetDefault(log)

	dbPath := cfg.Storage.Path
	if dbPath == "" {
		dbPath = pathutil.DBFilePath()
	}

	db, err := store.Open(cfg.Storage.Driver, dbPath)
	if err != nil {
		_ = closer.Close()
		return nil, err
	}

	log.Debug(
		"database opened",
		slog.String("driver", cfg.Storage.Driver),
		slog.String("path", dbPath),
	)

	s, err := focus.Open(db, log)
	if err != nil {
		_ = db.Close()
		_ = closer.Close()

		return nil, err
	}

	return &env{
		cfg:    cfg,
		log:    log,
		db:     db,
		store:  s,
		closer: closer,
	}, nil
}

// withEnv runs fn with a fresh env and closes it afterwards.
func withEnv(fn func(ctx *cli.Context, e *env) error) cli.ActionFunc {
	return func(ctx *cli.Context) error {
		e, err := setup(ctx)
		if err != nil {
			return err
		}

		defer e.Close()

		return fn(ctx, e)
	}
}
