package tui

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/bubbles/key"

	"github.com/ayoisaiah/tracker/internal/stats"
	"github.com/ayoisaiah/tracker/internal/timeutil"
)

var dayNames = [7]string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}

func (m *Model) View() string {
	var view string

	switch m.mode {
	case statsMode:
		view = m.statsView()
	case addMode:
		view = m.addView()
	case confirmMode:
		view = m.confirmView()
	case listMode:
		view = m.listView()
	}

	if m.flash != "" {
		view += "\n\n" + m.style.Error.Render(m.flash)
	}

	return m.style.Base.Render(view)
}

func (m *Model) statusView() string {
	if !m.timer.Running() {
		return m.style.Hint.Render("[Idle]")
	}

	name := m.timer.FocusID()
	if f, err := m.store.Get(name); err == nil {
		name = f.Name
	}

	timeFormat := "03:04 PM"
	if m.opts.TwentyFourHour {
		timeFormat = "15:04"
	}

	status := m.timer.Status()

	return m.style.Running.Render("● "+name) +
		m.style.Hint.Render(" since "+status.StartedAt.Format(timeFormat)) +
		"\n\n" +
		m.style.Main.Render(timeutil.FormatClock(status.Elapsed))
}

func (m *Model) focusList(markers bool) string {
	var s strings.Builder

	if m.store.Len() == 0 {
		s.WriteString(m.style.Hint.Render("No focuses yet. Press a to add one."))
		return s.String()
	}

	cur := m.store.SelectedIndex()

	for i, f := range m.store.Focuses() {
		line := f.Name

		if markers {
			marker := "[ ] "
			if f.IsSelected {
				marker = "[x] "
			}

			line = marker + line
		}

		if i == cur {
			s.WriteString(m.style.Cursor.Render("> " + line))
		} else {
			s.WriteString(m.style.Secondary.Render("  " + line))
		}

		if m.timer.Running() && m.timer.FocusID() == f.ID {
			s.WriteString(m.style.Running.Render(" ●"))
		}

		s.WriteString("\n")
	}

	return strings.TrimRight(s.String(), "\n")
}

func (m *Model) listView() string {
	var s strings.Builder

	s.WriteString(m.statusView())
	s.WriteString("\n\n")
	s.WriteString(m.style.Main.Render("Current Focus"))
	s.WriteString("\n\n")
	s.WriteString(m.focusList(false))
	s.WriteString("\n\n" + m.help.ShortHelpView([]key.Binding{
		defaultKeymap.togglePlay,
		defaultKeymap.down,
		defaultKeymap.up,
		defaultKeymap.add,
		defaultKeymap.remove,
		defaultKeymap.stats,
		defaultKeymap.quit,
	}))

	return s.String()
}

func (m *Model) addView() string {
	return m.style.Main.Render("New focus") +
		"\n\n" + m.input.View() +
		"\n\n" + m.help.ShortHelpView([]key.Binding{
		defaultKeymap.enter,
		defaultKeymap.esc,
	})
}

func (m *Model) confirmView() string {
	name := m.pending
	if f, err := m.store.Get(m.pending); err == nil {
		name = f.Name
	}

	return m.style.Main.Render(fmt.Sprintf("Remove %q and all its recorded time?", name)) +
		"\n\n" + m.help.ShortHelpView([]key.Binding{
		defaultKeymap.confirm,
		defaultKeymap.esc,
	})
}

func (m *Model) statsView() string {
	week := stats.Weekly(m.store.Focuses(), m.weekRef)

	var s strings.Builder

	s.WriteString(m.style.Main.Render(fmt.Sprintf(
		"Week of %s",
		week.Start.Format("Jan 02, 2006"),
	)))
	s.WriteString(m.style.Hint.Render(fmt.Sprintf(
		"  (scale: %.0f min)",
		week.Scale,
	)))
	s.WriteString("\n\n")

	if week.Placeholder {
		s.WriteString(m.style.Hint.Render("No focus is included in the report. Press t to include one."))
		s.WriteString("\n")
	}

	for _, series := range week.Series {
		if !week.Placeholder {
			s.WriteString(m.style.Secondary.Render(series.Name))
			s.WriteString("\n")
		}

		for day, minutes := range series.Minutes {
			s.WriteString(m.style.Hint.Render(dayNames[day] + " "))
			s.WriteString(m.style.Bar.Render(bar(minutes, week.Scale)))
			s.WriteString(m.style.Hint.Render(fmt.Sprintf(" %.0f", math.Ceil(minutes))))
			s.WriteString("\n")
		}

		s.WriteString("\n")
	}

	s.WriteString(m.focusList(true))
	s.WriteString("\n\n" + m.help.ShortHelpView([]key.Binding{
		defaultKeymap.prevWeek,
		defaultKeymap.nextWeek,
		defaultKeymap.include,
		defaultKeymap.esc,
	}))

	return s.String()
}

// bar draws minutes as a horizontal bar scaled so that scale fills
// barWidth cells.
func bar(minutes, scale float64) string {
	if minutes <= 0 || scale <= 0 {
		return ""
	}

	n := max(int(math.Round(minutes/scale*barWidth)), 1)

	return strings.Repeat("▇", min(n, barWidth))
}
