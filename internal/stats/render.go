package stats

import (
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/pterm/pterm"

	"github.com/ayoisaiah/tracker/internal/timeutil"
	"github.com/ayoisaiah/tracker/internal/ui"
)

const barChartChar = "▇"

var dayNames = [daysInAWeek]string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}

// Render prints the week's header, one bar chart per series and a table of
// weekly totals.
func Render(w io.Writer, week Week) error {
	period := fmt.Sprintf(
		"Week of %s - %s",
		week.Start.Format("January 02, 2006"),
		week.End.AddDate(0, 0, -1).Format("January 02, 2006"),
	)

	header := pterm.DefaultHeader.WithBackgroundStyle(pterm.NewStyle(pterm.BgYellow)).
		WithTextStyle(pterm.NewStyle(pterm.FgBlack)).
		Sprintfln("%s", period)

	fmt.Fprint(w, header)

	if week.Placeholder {
		fmt.Fprintln(
			w,
			pterm.Info.Sprint(
				"No focus is included in the report. Use `tracker include` to add one.",
			),
		)

		return nil
	}

	for _, s := range week.Series {
		fmt.Fprintln(w, barChart(s))
	}

	return ui.WriteTable(w, tableData(week), len(week.Series) > 1)
}

func barChart(s Series) string {
	header := ui.Cyan(fmt.Sprintf("\n%s (minutes)", s.Name))

	bars := make(pterm.Bars, 0, daysInAWeek)

	for i, m := range s.Minutes {
		bars = append(bars, pterm.Bar{
			Value: int(math.Ceil(m)),
			Label: dayNames[i],
		})
	}

	chart, err := pterm.DefaultBarChart.WithHorizontalBarCharacter(barChartChar).
		WithHorizontal().
		WithShowValue().
		WithBars(bars).
		Srender()
	if err != nil {
		pterm.Error.Println(err)
		return ""
	}

	return header + "\n" + strings.TrimRight(chart, "\n")
}

// tableData lays the week out as a header row, one row per series and a
// totals row when there is more than one series.
func tableData(week Week) [][]string {
	head := append([]string{"Focus"}, dayNames[:]...)
	head = append(head, "Total")

	data := [][]string{head}

	row := func(name string, minutes [daysInAWeek]float64, total float64) []string {
		r := []string{name}
		for _, m := range minutes {
			r = append(r, formatMinutes(m))
		}

		return append(r, formatMinutes(total))
	}

	for _, s := range week.Series {
		data = append(data, row(s.Name, s.Minutes, s.Total()))
	}

	if len(week.Series) > 1 {
		data = append(data, row("Total", week.DayTotals(), week.Total()))
	}

	return data
}

func formatMinutes(m float64) string {
	if m <= 0 {
		return "-"
	}

	return timeutil.FormatDuration(timeutil.MinutesToDuration(m))
}
