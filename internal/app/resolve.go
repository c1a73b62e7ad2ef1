package app

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/maruel/natural"
	"github.com/urfave/cli/v2"

	"github.com/ayoisaiah/tracker/internal/config"
	"github.com/ayoisaiah/tracker/internal/focus"
	"github.com/ayoisaiah/tracker/internal/models"
)

// resolveFocus finds a focus by exact name, then by its 1-based position in
// the list, then by a case-insensitive name match.
func resolveFocus(s *focus.Store, arg string) (*models.Focus, error) {
	arg = strings.TrimSpace(arg)
	if arg == "" {
		return nil, errMissingFocus
	}

	focuses := s.Focuses()

	for _, f := range focuses {
		if f.Name == arg {
			return f, nil
		}
	}

	if n, err := strconv.Atoi(arg); err == nil {
		if n < 1 || n > len(focuses) {
			return nil, focus.ErrIndexOutOfRange.Fmt(n)
		}

		return focuses[n-1], nil
	}

	for _, f := range focuses {
		if strings.EqualFold(f.Name, arg) {
			return f, nil
		}
	}

	return nil, focus.ErrFocusNotFound.Fmt(arg)
}

// focusNames returns the focus names in natural order.
func focusNames(focuses []*models.Focus) []string {
	names := make([]string, len(focuses))
	for i, f := range focuses {
		names[i] = f.Name
	}

	sort.Sort(natural.StringSlice(names))

	return names
}

// completeFocuses prints the focus names for shell completion.
func completeFocuses(ctx *cli.Context) {
	e, err := setup(ctx)
	if err != nil {
		return
	}

	defer e.Close()

	for _, name := range focusNames(e.store.Focuses()) {
		fmt.Fprintln(config.Stdout, name)
	}
}
