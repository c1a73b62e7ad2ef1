package focus

import (
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ayoisaiah/tracker/internal/models"
	"github.com/ayoisaiah/tracker/internal/store"
)

var errDiskFull = errors.New("disk full")

// memDB is an in-memory store.DB that encodes state the way a real backend
// would.
type memDB struct {
	payload  []byte
	selected string
	saves    int
	failSave bool
	loadErr  error
}

func (m *memDB) Load() (store.State, error) {
	if m.loadErr != nil {
		return store.State{}, m.loadErr
	}

	focuses, err := store.DecodeFocuses(m.payload)

	return store.State{Focuses: focuses, Selected: m.selected}, err
}

func (m *memDB) Save(state store.State) error {
	if m.failSave {
		return errDiskFull
	}

	b, err := store.EncodeFocuses(state.Focuses)
	if err != nil {
		return err
	}

	m.payload = b
	m.selected = state.Selected
	m.saves++

	return nil
}

func (m *memDB) Close() error {
	return nil
}

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestStore(t *testing.T, names ...string) (*Store, *memDB) {
	t.Helper()

	db := &memDB{}

	s, err := Open(db, quietLogger())
	require.NoError(t, err)

	for _, name := range names {
		_, err := s.Add(name)
		require.NoError(t, err)
	}

	return s, db
}

func names(focuses []*models.Focus) []string {
	out := make([]string, len(focuses))
	for i, f := range focuses {
		out[i] = f.Name
	}

	return out
}

func TestAddFocus(t *testing.T) {
	s, db := newTestStore(t)

	id, err := s.Add("  Writing ")
	require.NoError(t, err)

	f, err := s.Get(id)
	require.NoError(t, err)
	assert.Equal(t, "Writing", f.Name)
	assert.Empty(t, f.Times)
	assert.False(t, f.IsSelected)

	sel, ok := s.Selected()
	require.True(t, ok)
	assert.Equal(t, id, sel.ID)

	_, err = s.Add("Reading")
	require.NoError(t, err)

	assert.Equal(t, []string{"Writing", "Reading"}, names(s.Focuses()))
	assert.Equal(t, 0, s.SelectedIndex())
	assert.Equal(t, 2, db.saves)
}

func TestAddFocusRejectsEmptyName(t *testing.T) {
	s, db := newTestStore(t)

	for _, name := range []string{"", "   "} {
		_, err := s.Add(name)
		assert.ErrorIs(t, err, ErrEmptyName)
	}

	assert.Zero(t, s.Len())
	assert.Zero(t, db.saves)
}

func TestRemoveFocus(t *testing.T) {
	s, _ := newTestStore(t, "Writing", "Reading", "Coding")

	reading := s.Focuses()[1]

	require.NoError(t, s.Remove(reading.ID))
	assert.Equal(t, []string{"Writing", "Coding"}, names(s.Focuses()))

	err := s.Remove(reading.ID)
	assert.ErrorIs(t, err, ErrFocusNotFound)

	err = s.RemoveAt(5)
	assert.ErrorIs(t, err, ErrIndexOutOfRange)

	err = s.RemoveAt(-1)
	assert.ErrorIs(t, err, ErrIndexOutOfRange)
}

func TestRemoveClampsSelection(t *testing.T) {
	s, _ := newTestStore(t, "Writing", "Reading", "Coding")

	// removing the last focus while it is selected moves the selection to
	// the new last focus
	require.NoError(t, s.SelectAt(2))
	require.NoError(t, s.RemoveAt(2))

	sel, ok := s.Selected()
	require.True(t, ok)
	assert.Equal(t, "Reading", sel.Name)
	assert.Equal(t, 1, s.SelectedIndex())

	// removing a focus before the selected one keeps the selection by id
	require.NoError(t, s.RemoveAt(0))

	sel, ok = s.Selected()
	require.True(t, ok)
	assert.Equal(t, "Reading", sel.Name)
	assert.Equal(t, 0, s.SelectedIndex())

	require.NoError(t, s.RemoveAt(0))

	_, ok = s.Selected()
	assert.False(t, ok)
	assert.Equal(t, -1, s.SelectedIndex())
}

func TestRemoveSelectedMiddleFocus(t *testing.T) {
	s, _ := newTestStore(t, "Writing", "Reading", "Coding")

	require.NoError(t, s.SelectAt(1))
	require.NoError(t, s.RemoveAt(1))

	sel, ok := s.Selected()
	require.True(t, ok)
	assert.Equal(t, "Coding", sel.Name)
}

func TestRecordInterval(t *testing.T) {
	s, _ := newTestStore(t, "Writing", "Reading")

	writing := s.Focuses()[0]

	first := models.TimeInterval{Start: 1000, Length: 60}
	second := models.TimeInterval{Start: 2000, Length: 90}

	require.NoError(t, s.RecordInterval(writing.ID, first))
	require.NoError(t, s.RecordInterval(writing.ID, second))

	got, err := s.Get(writing.ID)
	require.NoError(t, err)
	assert.Equal(t, []models.TimeInterval{first, second}, got.Times)

	err = s.RecordInterval("missing", first)
	assert.ErrorIs(t, err, ErrFocusNotFound)
}

func TestSetSelectedForReport(t *testing.T) {
	s, _ := newTestStore(t, "Writing", "Reading", "Coding")

	focuses := s.Focuses()

	require.NoError(t, s.SetSelectedForReport(focuses[0].ID, true))
	require.NoError(t, s.SetSelectedForReport(focuses[2].ID, true))

	assert.Equal(t, []string{"Writing", "Coding"}, names(s.Included()))

	require.NoError(t, s.SetSelectedForReport(focuses[0].ID, false))
	assert.Equal(t, []string{"Coding"}, names(s.Included()))

	err := s.SetSelectedForReport("missing", true)
	assert.ErrorIs(t, err, ErrFocusNotFound)
}

func TestMutationsSurviveReopen(t *testing.T) {
	s, db := newTestStore(t, "Writing", "Reading")

	reading := s.Focuses()[1]

	require.NoError(t, s.Select(reading.ID))
	require.NoError(t, s.RecordInterval(reading.ID, models.TimeInterval{Start: 5, Length: 10}))
	require.NoError(t, s.SetSelectedForReport(reading.ID, true))

	reopened, err := Open(db, quietLogger())
	require.NoError(t, err)

	assert.Equal(t, s.Focuses(), reopened.Focuses())
	assert.Equal(t, 1, reopened.SelectedIndex())
}

func TestFailedPersistLeavesStateUnchanged(t *testing.T) {
	s, db := newTestStore(t, "Writing")

	writing := s.Focuses()[0]
	db.failSave = true

	_, err := s.Add("Reading")
	assert.ErrorIs(t, err, errDiskFull)

	err = s.RecordInterval(writing.ID, models.TimeInterval{Start: 1, Length: 1})
	assert.ErrorIs(t, err, errDiskFull)

	err = s.RemoveAt(0)
	assert.ErrorIs(t, err, errDiskFull)

	assert.Equal(t, []string{"Writing"}, names(s.Focuses()))
	assert.Empty(t, s.Focuses()[0].Times)
	assert.Equal(t, 0, s.SelectedIndex())
}

func TestReturnedFocusesAreCopies(t *testing.T) {
	s, _ := newTestStore(t, "Writing")

	f := s.Focuses()[0]
	f.Name = "Changed"
	f.Times = append(f.Times, models.TimeInterval{Start: 1, Length: 1})

	got := s.Focuses()[0]
	assert.Equal(t, "Writing", got.Name)
	assert.Empty(t, got.Times)
}

func TestOpenCorruptPayloadStartsEmpty(t *testing.T) {
	db := &memDB{payload: []byte(`[{"id":`), selected: "gone"}

	s, err := Open(db, quietLogger())
	require.NoError(t, err)

	assert.Zero(t, s.Len())
	assert.Equal(t, -1, s.SelectedIndex())

	// the next mutation overwrites the corrupt payload
	_, err = s.Add("Writing")
	require.NoError(t, err)

	reopened, err := Open(db, quietLogger())
	require.NoError(t, err)
	assert.Equal(t, 1, reopened.Len())
}

func TestOpenStaleSelectionFallsBackToFirst(t *testing.T) {
	_, db := newTestStore(t, "Writing", "Reading")

	db.selected = "does-not-exist"

	reopened, err := Open(db, quietLogger())
	require.NoError(t, err)
	assert.Equal(t, 0, reopened.SelectedIndex())
}

func TestOpenPropagatesReadErrors(t *testing.T) {
	_, err := Open(&memDB{loadErr: errDiskFull}, quietLogger())

	assert.ErrorIs(t, err, errDiskFull)
}
