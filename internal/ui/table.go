package ui

import (
	"fmt"
	"io"

	"github.com/pterm/pterm"
)

// WriteTable writes rows to w as a boxed table. The first row is styled as
// the header and the last row can be highlighted as a footer, which the
// report uses for its totals.
func WriteTable(w io.Writer, rows [][]string, footer bool) error {
	if len(rows) == 0 {
		return nil
	}

	if footer && len(rows) > 2 {
		last := rows[len(rows)-1]
		styled := make([]string, len(last))

		for i, cell := range last {
			styled[i] = Highlight(cell)
		}

		rows = append(rows[:len(rows)-1:len(rows)-1], styled)
	}

	out, err := pterm.DefaultTable.
		WithBoxed().
		WithHasHeader().
		WithData(rows).
		Srender()
	if err != nil {
		return fmt.Errorf("rendering table with %d rows: %w", len(rows), err)
	}

	_, err = fmt.Fprintln(w, out)

	return err
}
