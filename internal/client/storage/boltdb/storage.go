package boltdb

import (
	"context"
	"fmt"
	"sync/atomic"

	"go.etcd.io/bbolt"

	"github.com/chatterbox-app/chatterbox/internal/client/storage"
)

var (
	// BoltDB bucket names
	bucketTokens  = []byte("tokens")
	bucketInstall = []byte("install")
)

// Storage is the BoltDB-backed local store: the token pair plus the
// install identity, keyed by fixed bucket/key names.
type Storage struct {
	db     *bbolt.DB
	closed atomic.Bool
}

// New opens the database at dbPath, creating it 0600 on first use.
func New(ctx context.Context, dbPath string) (*Storage, error) {
	db, err := bbolt.Open(dbPath, 0o600, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to open boltdb: %w", err)
	}

	storage := &Storage{db: db}

	if err := storage.initBuckets(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize buckets: %w", err)
	}

	return storage, nil
}

// Close closes the database connection.
func (s *Storage) Close() error {
	if s.db == nil || !s.closed.CompareAndSwap(false, true) {
		return nil
	}
	return s.db.Close()
}

// checkClosed guards operations against use after Close.
func (s *Storage) checkClosed() error {
	if s.closed.Load() {
		return storage.ErrStorageClosed
	}
	return nil
}

func (s *Storage) initBuckets() error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		if _, err := tx.CreateBucketIfNotExists(bucketTokens); err != nil {
			return fmt.Errorf("failed to create tokens bucket: %w", err)
		}
		if _, err := tx.CreateBucketIfNotExists(bucketInstall); err != nil {
			return fmt.Errorf("failed to create install bucket: %w", err)
		}
		return nil
	})
}
