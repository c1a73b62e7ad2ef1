// Package hook runs the post-session command and desktop notification
package hook

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"strconv"

	"github.com/gen2brain/beeep"
	"github.com/kballard/go-shellquote"

	"github.com/ayoisaiah/tracker/internal/timeutil"
)

// Environment variables passed to the session command.
const (
	EnvFocus   = "TRACKER_FOCUS"
	EnvMinutes = "TRACKER_MINUTES"
)

// Event describes a recorded session.
type Event struct {
	Focus   string
	Minutes float64
}

var (
	defaultNotifier = beeep.Notify
	notifier        = defaultNotifier
)

// Command parses cmdline with shell quoting rules and prepares it to run
// with the event in its environment. A blank cmdline yields a nil command.
func Command(ctx context.Context, cmdline string, ev Event) (*exec.Cmd, error) {
	args, err := shellquote.Split(cmdline)
	if err != nil {
		return nil, errParseCmd.Wrap(err)
	}

	if len(args) == 0 {
		return nil, nil
	}

	cmd := exec.CommandContext(ctx, args[0], args[1:]...)
	cmd.Env = append(
		os.Environ(),
		EnvFocus+"="+ev.Focus,
		EnvMinutes+"="+strconv.FormatFloat(ev.Minutes, 'f', 2, 64),
	)

	return cmd, nil
}

// Run executes the session command, if any, and waits for it to exit.
func Run(ctx context.Context, cmdline string, ev Event) error {
	cmd, err := Command(ctx, cmdline, ev)
	if err != nil || cmd == nil {
		return err
	}

	if out, err := cmd.CombinedOutput(); err != nil {
		return errRunCmd.Fmt(cmdline).Wrap(fmt.Errorf("%w: %s", err, out))
	}

	return nil
}

// Notify shows a desktop notification for the event.
func Notify(ev Event) error {
	title := "Session recorded"
	msg := fmt.Sprintf(
		"%s: %s",
		ev.Focus,
		timeutil.FormatDuration(timeutil.MinutesToDuration(ev.Minutes)),
	)

	if err := notifier(title, msg, ""); err != nil {
		return errNotify.Wrap(err)
	}

	return nil
}
