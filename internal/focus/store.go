// Package focus manages the list of focuses and the focus the timer is
// pointed at. Every mutation is persisted before it returns.
package focus

import (
	"errors"
	"log/slog"
	"slices"
	"strings"

	"github.com/ayoisaiah/tracker/internal/models"
	"github.com/ayoisaiah/tracker/internal/store"
)

// Store holds all focuses in display order.
type Store struct {
	db       store.DB
	log      *slog.Logger
	selected string
	focuses  []*models.Focus
}

// Open loads the persisted focuses from db. A corrupt payload is logged and
// replaced with an empty list.
func Open(db store.DB, logger *slog.Logger) (*Store, error) {
	if logger == nil {
		logger = slog.Default()
	}

	state, err := db.Load()
	if err != nil {
		if !errors.Is(err, store.ErrCorruptPayload) {
			return nil, err
		}

		logger.Warn("discarding unreadable focus list", slog.Any("error", err))

		state.Focuses = []*models.Focus{}
	}

	s := &Store{
		db:       db,
		log:      logger,
		focuses:  state.Focuses,
		selected: state.Selected,
	}

	// a stale selection falls back to the first focus
	if s.IndexOf(s.selected) == -1 {
		s.selected = ""
		if len(s.focuses) > 0 {
			s.selected = s.focuses[0].ID
		}
	}

	return s, nil
}

// Len returns the number of focuses.
func (s *Store) Len() int {
	return len(s.focuses)
}

// Focuses returns a copy of all focuses in display order.
func (s *Store) Focuses() []*models.Focus {
	out := make([]*models.Focus, len(s.focuses))

	for i, f := range s.focuses {
		out[i] = f.Clone()
	}

	return out
}

// Included returns a copy of the focuses marked for the weekly report.
func (s *Store) Included() []*models.Focus {
	var out []*models.Focus

	for _, f := range s.focuses {
		if f.IsSelected {
			out = append(out, f.Clone())
		}
	}

	return out
}

// IndexOf returns the position of the focus with the given id, or -1.
func (s *Store) IndexOf(id string) int {
	if id == "" {
		return -1
	}

	return slices.IndexFunc(s.focuses, func(f *models.Focus) bool {
		return f.ID == id
	})
}

// Get returns a copy of the focus with the given id.
func (s *Store) Get(id string) (*models.Focus, error) {
	i := s.IndexOf(id)
	if i == -1 {
		return nil, ErrFocusNotFound.Fmt(id)
	}

	return s.focuses[i].Clone(), nil
}

// At returns a copy of the focus at index.
func (s *Store) At(index int) (*models.Focus, error) {
	if index < 0 || index >= len(s.focuses) {
		return nil, ErrIndexOutOfRange.Fmt(index)
	}

	return s.focuses[index].Clone(), nil
}

// Selected returns the focus the timer is pointed at.
func (s *Store) Selected() (*models.Focus, bool) {
	i := s.IndexOf(s.selected)
	if i == -1 {
		return nil, false
	}

	return s.focuses[i].Clone(), true
}

// SelectedIndex returns the display position of the selected focus, or -1
// when the store is empty.
func (s *Store) SelectedIndex() int {
	return s.IndexOf(s.selected)
}

// Add appends a new focus and returns its id. The first focus added to an
// empty store becomes the selected focus.
func (s *Store) Add(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", ErrEmptyName
	}

	f := models.NewFocus(name)

	next := append(slices.Clone(s.focuses), f)

	selected := s.selected
	if selected == "" {
		selected = f.ID
	}

	if err := s.commit(next, selected); err != nil {
		return "", err
	}

	s.log.Info("focus added", slog.String("id", f.ID), slog.String("name", name))

	return f.ID, nil
}

// Remove deletes the focus with the given id.
func (s *Store) Remove(id string) error {
	i := s.IndexOf(id)
	if i == -1 {
		return ErrFocusNotFound.Fmt(id)
	}

	return s.removeAt(i)
}

// RemoveAt deletes the focus at index.
func (s *Store) RemoveAt(index int) error {
	if index < 0 || index >= len(s.focuses) {
		return ErrIndexOutOfRange.Fmt(index)
	}

	return s.removeAt(index)
}

func (s *Store) removeAt(index int) error {
	removed := s.focuses[index]

	next := slices.Delete(slices.Clone(s.focuses), index, index+1)

	selected := s.selected
	if selected == removed.ID {
		selected = ""

		if len(next) > 0 {
			selected = next[min(index, len(next)-1)].ID
		}
	}

	if err := s.commit(next, selected); err != nil {
		return err
	}

	s.log.Info(
		"focus removed",
		slog.String("id", removed.ID),
		slog.String("name", removed.Name),
		slog.Int("intervals", len(removed.Times)),
	)

	return nil
}

// RecordInterval appends a completed interval to the focus with the given
// id.
func (s *Store) RecordInterval(id string, interval models.TimeInterval) error {
	return s.update(id, func(f *models.Focus) {
		f.Times = append(f.Times, interval)
	})
}

// SetSelectedForReport sets whether the focus is included in the weekly
// report.
func (s *Store) SetSelectedForReport(id string, include bool) error {
	return s.update(id, func(f *models.Focus) {
		f.IsSelected = include
	})
}

// Select points the timer at the focus with the given id.
func (s *Store) Select(id string) error {
	if s.IndexOf(id) == -1 {
		return ErrFocusNotFound.Fmt(id)
	}

	if id == s.selected {
		return nil
	}

	return s.commit(s.focuses, id)
}

// SelectAt points the timer at the focus at index.
func (s *Store) SelectAt(index int) error {
	if index < 0 || index >= len(s.focuses) {
		return ErrIndexOutOfRange.Fmt(index)
	}

	return s.Select(s.focuses[index].ID)
}

// update applies fn to a copy of the focus with the given id and commits
// the result.
func (s *Store) update(id string, fn func(f *models.Focus)) error {
	i := s.IndexOf(id)
	if i == -1 {
		return ErrFocusNotFound.Fmt(id)
	}

	f := s.focuses[i].Clone()
	fn(f)

	next := slices.Clone(s.focuses)
	next[i] = f

	return s.commit(next, s.selected)
}

// commit persists the next state and only then makes it current.
func (s *Store) commit(next []*models.Focus, selected string) error {
	err := s.db.Save(store.State{
		Focuses:  next,
		Selected: selected,
	})
	if err != nil {
		s.log.Error("persisting focuses failed", slog.Any("error", err))
		return errPersist.Wrap(err)
	}

	s.focuses = next
	s.selected = selected

	return nil
}
