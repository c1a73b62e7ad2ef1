package tui

import "github.com/charmbracelet/bubbles/key"

type keymap struct {
	togglePlay key.Binding
	up         key.Binding
	down       key.Binding
	add        key.Binding
	remove     key.Binding
	stats      key.Binding
	prevWeek   key.Binding
	nextWeek   key.Binding
	include    key.Binding
	enter      key.Binding
	confirm    key.Binding
	esc        key.Binding
	quit       key.Binding
}

var defaultKeymap = keymap{
	togglePlay: key.NewBinding(
		key.WithKeys(" "),
		key.WithHelp("space", "start/stop"),
	),
	up: key.NewBinding(
		key.WithKeys("k", "up"),
		key.WithHelp("k", "up"),
	),
	down: key.NewBinding(
		key.WithKeys("j", "down"),
		key.WithHelp("j", "down"),
	),
	add: key.NewBinding(
		key.WithKeys("a"),
		key.WithHelp("a", "add"),
	),
	remove: key.NewBinding(
		key.WithKeys("d"),
		key.WithHelp("d", "remove"),
	),
	stats: key.NewBinding(
		key.WithKeys("s"),
		key.WithHelp("s", "stats"),
	),
	prevWeek: key.NewBinding(
		key.WithKeys("h", "left"),
		key.WithHelp("h", "prev week"),
	),
	nextWeek: key.NewBinding(
		key.WithKeys("l", "right"),
		key.WithHelp("l", "next week"),
	),
	include: key.NewBinding(
		key.WithKeys("t"),
		key.WithHelp("t", "toggle in report"),
	),
	enter: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "save"),
	),
	confirm: key.NewBinding(
		key.WithKeys("y"),
		key.WithHelp("y", "confirm"),
	),
	esc: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "back"),
	),
	quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}
