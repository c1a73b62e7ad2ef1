package app

import (
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"runtime"
	"strings"
	"time"

	"github.com/bytedance/sonic"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/markusmobius/go-dateparser"
	"github.com/pterm/pterm"
	"github.com/urfave/cli/v2"

	"github.com/ayoisaiah/tracker/internal/config"
	"github.com/ayoisaiah/tracker/internal/osutil"
	"github.com/ayoisaiah/tracker/internal/stats"
	"github.com/ayoisaiah/tracker/internal/timer"
	"github.com/ayoisaiah/tracker/internal/tui"
)

const (
	envNoColor        = "NO_COLOR"
	envTrackerNoColor = "TRACKER_NO_COLOR"
)

var (
	// now is replaced in tests
	now = time.Now

	codec = sonic.ConfigStd
)

// firstNonEmptyString returns its first non-empty argument, or "" if all
// arguments are empty.
func firstNonEmptyString(ss ...string) string {
	for _, s := range ss {
		if s != "" {
			return s
		}
	}

	return ""
}

// printJSON writes v to stdout as a single line of JSON.
func printJSON(v any) error {
	b, err := codec.Marshal(v)
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(config.Stdout, string(b))

	return err
}

// addAction handles the add command. The name is requested interactively
// when it is omitted.
func addAction(ctx *cli.Context, e *env) error {
	name := strings.Join(ctx.Args().Slice(), " ")

	if strings.TrimSpace(name) == "" && isTerminal(os.Stdin) {
		err := huh.NewInput().
			Title("What do you want to track?").
			Placeholder("Focus name").
			Value(&name).
			Run()
		if err != nil {
			return err
		}
	}

	id, err := e.store.Add(name)
	if err != nil {
		return err
	}

	pterm.Fprintln(
		config.Stdout,
		pterm.Success.Sprintf("Added %q at position %d", strings.TrimSpace(name), e.store.IndexOf(id)+1),
	)

	return nil
}

// removeAction handles the remove command. It asks for confirmation unless
// --yes is set.
func removeAction(ctx *cli.Context, e *env) error {
	f, err := resolveFocus(e.store, ctx.Args().First())
	if err != nil {
		return err
	}

	if !ctx.Bool("yes") {
		if !isTerminal(os.Stdin) {
			return errConfirmRequired.Fmt(f.Name)
		}

		var confirmed bool

		err = huh.NewConfirm().
			Title(fmt.Sprintf("Remove %q?", f.Name)).
			Description(fmt.Sprintf("%d recorded sessions will be deleted permanently", len(f.Times))).
			Value(&confirmed).
			Run()
		if err != nil {
			return err
		}

		if !confirmed {
			return nil
		}
	}

	if err := e.store.Remove(f.ID); err != nil {
		return err
	}

	pterm.Fprintln(config.Stdout, pterm.Success.Sprintf("Removed %q", f.Name))

	return nil
}

// listAction handles the list command.
func listAction(ctx *cli.Context, e *env) error {
	items := listItems(e.store)

	if ctx.Bool("json") {
		return printJSON(items)
	}

	if len(items) == 0 {
		pterm.Fprintln(config.Stdout, pterm.Info.Sprint(noFocusesMsg))
		return nil
	}

	return printFocusTable(config.Stdout, items)
}

// selectAction handles the select command which sets the current focus.
func selectAction(ctx *cli.Context, e *env) error {
	f, err := resolveFocus(e.store, ctx.Args().First())
	if err != nil {
		return err
	}

	if err := e.store.Select(f.ID); err != nil {
		return err
	}

	pterm.Fprintln(config.Stdout, pterm.Success.Sprintf("Current focus: %s", f.Name))

	return nil
}

// includeAction returns the action for the include and exclude commands.
func includeAction(include bool) func(*cli.Context, *env) error {
	verb := "Excluded"
	if include {
		verb = "Included"
	}

	return func(ctx *cli.Context, e *env) error {
		if ctx.NArg() == 0 {
			return errMissingFocus
		}

		for _, arg := range ctx.Args().Slice() {
			f, err := resolveFocus(e.store, arg)
			if err != nil {
				return err
			}

			if err := e.store.SetSelectedForReport(f.ID, include); err != nil {
				return err
			}

			pterm.Fprintln(
				config.Stdout,
				pterm.Success.Sprintf("%s %q in the report", verb, f.Name),
			)
		}

		return nil
	}
}

// reportDate works out the reference date for the report command.
func reportDate(ctx *cli.Context) (time.Time, error) {
	ref := now()

	if s := ctx.String("date"); s != "" {
		d, err := dateparser.Parse(&dateparser.Configuration{
			CurrentTime: ref,
		}, s)
		if err != nil {
			return time.Time{}, errInvalidDate.Fmt(s).Wrap(err)
		}

		ref = d.Time
	}

	return ref.AddDate(0, 0, 7*ctx.Int("week")), nil
}

// reportAction prints the weekly breakdown for the included focuses.
func reportAction(ctx *cli.Context, e *env) error {
	ref, err := reportDate(ctx)
	if err != nil {
		return err
	}

	week := stats.Weekly(e.store.Focuses(), ref)

	if ctx.Bool("json") {
		return printJSON(week)
	}

	return stats.Render(config.Stdout, week)
}

// editConfigAction handles the edit-config command which opens the config
// file in the user's default text editor.
func editConfigAction(ctx *cli.Context) error {
	defaultEditor := "nano"

	if runtime.GOOS == osutil.Windows {
		defaultEditor = "C:\\Windows\\system32\\notepad.exe"
	}

	editor := firstNonEmptyString(
		os.Getenv("VISUAL"),
		os.Getenv("EDITOR"),
		defaultEditor,
	)

	cfg, err := loadConfig(ctx)
	if err != nil {
		return err
	}

	cmd := exec.Command(editor, cfg.PathToConfig)

	cmd.Stderr = config.Stderr
	cmd.Stdin = config.Stdin
	cmd.Stdout = config.Stdout

	return cmd.Run()
}

// defaultAction opens the interactive timer on a terminal and lists the
// focuses otherwise.
func defaultAction(ctx *cli.Context, e *env) error {
	if !isTerminal(os.Stdout) {
		return listAction(ctx, e)
	}

	t := timer.New(e.store, timer.WithLogger(e.log))

	m := tui.New(e.store, t, tui.Options{
		Cmd:             e.cfg.Settings.Cmd,
		RefreshInterval: e.cfg.Settings.RefreshInterval,
		Notify:          e.cfg.Notifications.Enabled,
		TwentyFourHour:  e.cfg.Display.TwentyFourHour,
		DarkTheme:       e.cfg.Display.DarkTheme,
		Debug:           e.cfg.Debug,
	}, e.log)

	_, err := tea.NewProgram(m, tea.WithAltScreen()).Run()

	return err
}

func beforeAction(ctx *cli.Context) error {
	// Override the default help template
	cli.AppHelpTemplate = helpText()

	pterm.Error.MessageStyle = pterm.NewStyle(pterm.FgRed)
	pterm.Error.Prefix = pterm.Prefix{
		Text:  "ERROR",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}

	// Disable colour output if NO_COLOR is set
	if _, exists := os.LookupEnv(envNoColor); exists {
		disableStyling()
	}

	// Disable colour output if TRACKER_NO_COLOR is set
	if _, exists := os.LookupEnv(envTrackerNoColor); exists {
		disableStyling()
	}

	if ctx.Bool("no-color") {
		disableStyling()
	}

	return nil
}

func afterAction(ctx *cli.Context) error {
	slog.InfoContext(ctx.Context, "exiting tracker")

	return nil
}
