package app

import (
	"fmt"
	"io"

	"github.com/ayoisaiah/tracker/internal/focus"
	"github.com/ayoisaiah/tracker/internal/timeutil"
	"github.com/ayoisaiah/tracker/internal/ui"
)

const noFocusesMsg = "No focuses yet. Add one with `tracker add <name>`"

// listItem is a focus as shown by the list command.
type listItem struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Position int     `json:"position"`
	Sessions int     `json:"sessions"`
	Minutes  float64 `json:"minutes"`
	Current  bool    `json:"current"`
	Report   bool    `json:"report"`
}

func listItems(s *focus.Store) []listItem {
	cur := s.SelectedIndex()
	focuses := s.Focuses()

	items := make([]listItem, len(focuses))

	for i, f := range focuses {
		items[i] = listItem{
			ID:       f.ID,
			Name:     f.Name,
			Position: i + 1,
			Sessions: len(f.Times),
			Minutes:  f.Total().Minutes(),
			Current:  i == cur,
			Report:   f.IsSelected,
		}
	}

	return items
}

// printFocusTable prints a focus table to the command-line.
func printFocusTable(w io.Writer, items []listItem) error {
	tableBody := make([][]string, 0, len(items)+1)

	tableBody = append(tableBody, []string{
		"#", "NAME", "SESSIONS", "TOTAL", "REPORT",
	})

	for _, item := range items {
		name := item.Name
		if item.Current {
			name = ui.Green("* " + name)
		}

		tableBody = append(tableBody, []string{
			fmt.Sprintf("%d", item.Position),
			name,
			fmt.Sprintf("%d", item.Sessions),
			timeutil.FormatDuration(timeutil.MinutesToDuration(item.Minutes)),
			ui.Marker(item.Report),
		})
	}

	return ui.WriteTable(w, tableBody, false)
}
