// Package tui is the interactive terminal interface for tracking time
package tui

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/davecgh/go-spew/spew"

	"github.com/ayoisaiah/tracker/internal/focus"
	"github.com/ayoisaiah/tracker/internal/hook"
	"github.com/ayoisaiah/tracker/internal/models"
	"github.com/ayoisaiah/tracker/internal/stats"
	"github.com/ayoisaiah/tracker/internal/timer"
)

type mode int

const (
	listMode mode = iota
	addMode
	confirmMode
	statsMode
)

const maxNameLength = 64

type (
	tickMsg time.Time

	hookDoneMsg struct {
		err error
	}
)

// Options controls the behaviour of the interface.
type Options struct {
	// Cmd is a shell command run after each recorded session
	Cmd             string
	RefreshInterval time.Duration
	Notify          bool
	TwentyFourHour  bool
	DarkTheme       bool
	Debug           bool
}

// Model is the bubbletea model for the tracker. All mutations of the focus
// store and the timer happen in Update.
type Model struct {
	store   *focus.Store
	timer   *timer.Timer
	log     *slog.Logger
	now     func() time.Time
	weekRef time.Time
	flash   string
	pending string
	style   style
	input   textinput.Model
	help    help.Model
	opts    Options
	mode    mode
}

// New returns a model over the given store and timer.
func New(
	s *focus.Store,
	t *timer.Timer,
	opts Options,
	logger *slog.Logger,
) *Model {
	if opts.RefreshInterval <= 0 {
		opts.RefreshInterval = time.Second
	}

	ti := textinput.New()
	ti.Placeholder = "Focus name"
	ti.CharLimit = maxNameLength

	return &Model{
		store: s,
		timer: t,
		log:   logger,
		now:   time.Now,
		opts:  opts,
		style: newStyle(opts.DarkTheme),
		input: ti,
		help:  help.New(),
	}
}

func (m *Model) Init() tea.Cmd {
	return m.tick()
}

func (m *Model) tick() tea.Cmd {
	return tea.Tick(m.opts.RefreshInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		// ticks only trigger a redraw of the elapsed time
		return m, m.tick()

	case hookDoneMsg:
		if msg.err != nil {
			m.log.Warn("post-session hook failed", slog.Any("error", msg.err))
			m.flash = msg.err.Error()
		}

		return m, nil

	case tea.WindowSizeMsg:
		m.help.Width = msg.Width - padding*2

		return m, nil

	case tea.KeyMsg:
		if m.opts.Debug {
			m.log.Debug(spew.Sdump(msg))
		}

		switch m.mode {
		case addMode:
			return m.updateAdd(msg)
		case confirmMode:
			return m.updateConfirm(msg)
		case statsMode:
			return m.updateStats(msg)
		case listMode:
			return m.updateList(msg)
		}
	}

	return m, nil
}

func (m *Model) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.flash = ""

	switch {
	case key.Matches(msg, defaultKeymap.quit):
		return m, m.quit()

	case key.Matches(msg, defaultKeymap.togglePlay):
		return m, m.toggle()

	case key.Matches(msg, defaultKeymap.up):
		m.moveCursor(-1)

	case key.Matches(msg, defaultKeymap.down):
		m.moveCursor(1)

	case key.Matches(msg, defaultKeymap.add):
		m.mode = addMode
		m.input.Reset()

		return m, m.input.Focus()

	case key.Matches(msg, defaultKeymap.remove):
		m.startRemove()

	case key.Matches(msg, defaultKeymap.stats):
		m.mode = statsMode
		m.weekRef = m.now()
	}

	return m, nil
}

func (m *Model) updateAdd(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	// q is a valid character in a name, so only ctrl+c quits here
	case msg.Type == tea.KeyCtrlC:
		return m, m.quit()

	case key.Matches(msg, defaultKeymap.esc):
		m.mode = listMode
		m.input.Blur()

		return m, nil

	case key.Matches(msg, defaultKeymap.enter):
		if _, err := m.store.Add(m.input.Value()); err != nil {
			m.flash = err.Error()
			return m, nil
		}

		m.flash = ""
		m.mode = listMode
		m.input.Blur()

		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)

	return m, cmd
}

func (m *Model) updateConfirm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	id := m.pending
	m.pending = ""
	m.mode = listMode

	if !key.Matches(msg, defaultKeymap.confirm) {
		return m, nil
	}

	if err := m.store.Remove(id); err != nil {
		m.flash = err.Error()
	}

	return m, nil
}

func (m *Model) updateStats(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.flash = ""

	switch {
	case key.Matches(msg, defaultKeymap.quit):
		return m, m.quit()

	case key.Matches(msg, defaultKeymap.esc), key.Matches(msg, defaultKeymap.stats):
		m.mode = listMode

	case key.Matches(msg, defaultKeymap.prevWeek):
		m.weekRef = stats.PreviousWeek(m.weekRef)

	case key.Matches(msg, defaultKeymap.nextWeek):
		m.weekRef = stats.NextWeek(m.weekRef)

	case key.Matches(msg, defaultKeymap.up):
		m.moveCursor(-1)

	case key.Matches(msg, defaultKeymap.down):
		m.moveCursor(1)

	case key.Matches(msg, defaultKeymap.include):
		f, ok := m.store.Selected()
		if !ok {
			return m, nil
		}

		if err := m.store.SetSelectedForReport(f.ID, !f.IsSelected); err != nil {
			m.flash = err.Error()
		}
	}

	return m, nil
}

// moveCursor changes the current focus by delta positions, stopping at the
// ends of the list.
func (m *Model) moveCursor(delta int) {
	if m.store.Len() == 0 {
		return
	}

	next := min(max(m.store.SelectedIndex()+delta, 0), m.store.Len()-1)
	if next == m.store.SelectedIndex() {
		return
	}

	if err := m.store.SelectAt(next); err != nil {
		m.flash = err.Error()
	}
}

func (m *Model) startRemove() {
	f, ok := m.store.Selected()
	if !ok {
		return
	}

	if m.timer.Running() && m.timer.FocusID() == f.ID {
		m.flash = fmt.Sprintf("Stop the timer before removing %q", f.Name)
		return
	}

	m.pending = f.ID
	m.mode = confirmMode
}

// toggle starts tracking the current focus, or stops and records the
// running session.
func (m *Model) toggle() tea.Cmd {
	if m.timer.Running() {
		return m.stop()
	}

	f, ok := m.store.Selected()
	if !ok {
		m.flash = timer.ErrNoFocus.Error()
		return nil
	}

	if err := m.timer.Start(f.ID); err != nil {
		m.flash = err.Error()
	}

	return nil
}

func (m *Model) stop() tea.Cmd {
	id := m.timer.FocusID()

	interval, err := m.timer.Stop()
	if err != nil {
		m.flash = err.Error()

		// the focus was removed from under the session
		if errors.Is(err, focus.ErrFocusNotFound) {
			m.timer.Discard()
		}

		return nil
	}

	f, err := m.store.Get(id)
	if err != nil {
		return nil
	}

	return m.afterStop(f, interval)
}

// quit records the running session, if any, before exiting.
func (m *Model) quit() tea.Cmd {
	if !m.timer.Running() {
		return tea.Quit
	}

	cmd := m.stop()
	if m.timer.Running() {
		m.log.Error("unable to record session on exit; discarding it")
		m.timer.Discard()
	}

	if cmd == nil {
		return tea.Quit
	}

	return tea.Sequence(cmd, tea.Quit)
}

// afterStop runs the configured hooks for a recorded session. Hooks report
// back through hookDoneMsg and never touch the model directly.
func (m *Model) afterStop(f *models.Focus, interval models.TimeInterval) tea.Cmd {
	ev := hook.Event{
		Focus:   f.Name,
		Minutes: interval.Minutes(),
	}

	var cmds []tea.Cmd

	if m.opts.Cmd != "" {
		cmdline := m.opts.Cmd

		cmds = append(cmds, func() tea.Msg {
			return hookDoneMsg{err: hook.Run(context.Background(), cmdline, ev)}
		})
	}

	if m.opts.Notify {
		cmds = append(cmds, func() tea.Msg {
			return hookDoneMsg{err: hook.Notify(ev)}
		})
	}

	switch len(cmds) {
	case 0:
		return nil
	case 1:
		return cmds[0]
	}

	return tea.Batch(cmds...)
}
