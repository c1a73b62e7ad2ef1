package store

import (
	"database/sql"
	"errors"
	"fmt"

	_ "modernc.org/sqlite"

	"github.com/ayoisaiah/tracker/internal/osutil"
)

const schema = `CREATE TABLE IF NOT EXISTS kv (
	key   TEXT PRIMARY KEY,
	value BLOB
)`

// SQLiteKV is a SQLite key-value backend.
type SQLiteKV struct {
	db *sql.DB
}

func (s *SQLiteKV) Get(key string) ([]byte, error) {
	var value []byte

	err := s.db.QueryRow(`SELECT value FROM kv WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}

	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", key, err)
	}

	return value, nil
}

func (s *SQLiteKV) Put(entries map[string][]byte) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}

	for k, v := range entries {
		_, err = tx.Exec(
			`INSERT INTO kv (key, value) VALUES (?, ?)
			ON CONFLICT(key) DO UPDATE SET value = excluded.value`,
			k, v,
		)
		if err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("writing %s: %w", k, err)
		}
	}

	return tx.Commit()
}

func (s *SQLiteKV) Close() error {
	return s.db.Close()
}

// OpenSQLite opens a SQLite database at path. ":memory:" opens an in-memory
// database.
func OpenSQLite(path string) (*SQLiteKV, error) {
	if path != ":memory:" {
		if err := osutil.EnsureParentDir(path); err != nil {
			return nil, err
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	// a single connection keeps ":memory:" databases alive across queries
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	return &SQLiteKV{db: db}, nil
}
