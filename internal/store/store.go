// Package store persists the focus list to a key-value backend
package store

import (
	"github.com/ayoisaiah/tracker/internal/models"
)

const (
	keyFocuses  = "focuses"
	keySelected = "selected_focus"
)

// Supported storage drivers.
const (
	DriverBolt   = "bolt"
	DriverSQLite = "sqlite"
)

// State is everything the tracker persists between runs.
type State struct {
	// Selected is the id of the focus the timer is pointed at
	Selected string
	Focuses  []*models.Focus
}

// DB is the database storage interface.
type DB interface {
	// Load reads the persisted state. A payload that cannot be decoded is
	// reported with ErrCorruptPayload alongside an empty focus list.
	Load() (State, error)
	// Save overwrites the persisted state
	Save(state State) error
	// Close ends the database connection
	Close() error
}

// KV is a durable key-value backend. Put writes all entries in a single
// transaction.
type KV interface {
	Get(key string) ([]byte, error)
	Put(entries map[string][]byte) error
	Close() error
}

// Client stores the tracker state in a KV backend.
type Client struct {
	kv KV
}

func (c *Client) Load() (State, error) {
	var state State

	sel, err := c.kv.Get(keySelected)
	if err != nil {
		return state, err
	}

	state.Selected = string(sel)

	b, err := c.kv.Get(keyFocuses)
	if err != nil {
		return state, err
	}

	state.Focuses, err = DecodeFocuses(b)

	return state, err
}

func (c *Client) Save(state State) error {
	b, err := EncodeFocuses(state.Focuses)
	if err != nil {
		return err
	}

	return c.kv.Put(map[string][]byte{
		keyFocuses:  b,
		keySelected: []byte(state.Selected),
	})
}

func (c *Client) Close() error {
	return c.kv.Close()
}

// NewClient wraps a KV backend.
func NewClient(kv KV) *Client {
	return &Client{kv: kv}
}

// Open opens the database at path with the named driver.
func Open(driver, path string) (*Client, error) {
	var (
		kv  KV
		err error
	)

	switch driver {
	case DriverBolt, "":
		kv, err = OpenBolt(path)
	case DriverSQLite:
		kv, err = OpenSQLite(path)
	default:
		return nil, errUnknownDriver.Fmt(driver)
	}

	if err != nil {
		return nil, err
	}

	return NewClient(kv), nil
}
