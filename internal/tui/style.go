package tui

import "github.com/charmbracelet/lipgloss"

type style struct {
	Base      lipgloss.Style
	Main      lipgloss.Style
	Secondary lipgloss.Style
	Hint      lipgloss.Style
	Cursor    lipgloss.Style
	Running   lipgloss.Style
	Bar       lipgloss.Style
	Error     lipgloss.Style
}

const (
	padding  = 2
	barWidth = 30
)

func newStyle(dark bool) style {
	main := lipgloss.Color("#1F2937")
	hint := lipgloss.Color("#6B7280")

	if dark {
		main = lipgloss.Color("#F9FAFB")
		hint = lipgloss.Color("#9CA3AF")
	}

	return style{
		Base:      lipgloss.NewStyle().Padding(1, padding),
		Main:      lipgloss.NewStyle().Bold(true).Foreground(main),
		Secondary: lipgloss.NewStyle().Foreground(main),
		Hint:      lipgloss.NewStyle().Foreground(hint),
		Cursor:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#B0DB43")),
		Running:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#12EAEA")),
		Bar:       lipgloss.NewStyle().Foreground(lipgloss.Color("#C492B1")),
		Error:     lipgloss.NewStyle().Foreground(lipgloss.Color("#EF4444")),
	}
}
