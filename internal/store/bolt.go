package store

import (
	"errors"
	"io/fs"
	"time"

	bolt "go.etcd.io/bbolt"

	"github.com/ayoisaiah/tracker/internal/osutil"
)

var bucketName = []byte("tracker")

// BoltKV is a BoltDB key-value backend.
type BoltKV struct {
	*bolt.DB
}

func (b *BoltKV) Get(key string) ([]byte, error) {
	var value []byte

	err := b.View(func(tx *bolt.Tx) error {
		v := tx.Bucket(bucketName).Get([]byte(key))
		if v != nil {
			// values are only valid for the life of the transaction
			value = append([]byte{}, v...)
		}

		return nil
	})

	return value, err
}

func (b *BoltKV) Put(entries map[string][]byte) error {
	return b.Update(func(tx *bolt.Tx) error {
		bucket := tx.Bucket(bucketName)

		for k, v := range entries {
			if err := bucket.Put([]byte(k), v); err != nil {
				return err
			}
		}

		return nil
	})
}

// openDB creates or opens a database and locks it.
func openDB(pathToDB string) (*bolt.DB, error) {
	var fileMode fs.FileMode = 0o600

	if err := osutil.EnsureParentDir(pathToDB); err != nil {
		return nil, err
	}

	db, err := bolt.Open(
		pathToDB,
		fileMode,
		&bolt.Options{Timeout: 1 * time.Second},
	)
	if err != nil {
		if errors.Is(err, bolt.ErrDatabaseOpen) ||
			errors.Is(err, bolt.ErrTimeout) {
			return nil, errTrackerRunning
		}

		return nil, err
	}

	return db, nil
}

// OpenBolt opens the BoltDB file at pathToDB and creates the tracker bucket
// if it does not exist already.
func OpenBolt(pathToDB string) (*BoltKV, error) {
	db, err := openDB(pathToDB)
	if err != nil {
		return nil, err
	}

	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(bucketName)
		return err
	})
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	return &BoltKV{db}, nil
}
