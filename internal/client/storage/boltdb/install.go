package boltdb

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.etcd.io/bbolt"
)

var installIDKey = []byte("install_id")

// InstallID returns the stable identifier of this installation,
// generating and persisting one on first call.
func (s *Storage) InstallID(ctx context.Context) (string, error) {
	if err := s.checkClosed(); err != nil {
		return "", err
	}

	var id string

	err := s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketInstall)
		if bucket == nil {
			return fmt.Errorf("install bucket not found")
		}

		if data := bucket.Get(installIDKey); data != nil {
			id = string(data)
			return nil
		}

		id = uuid.New().String()
		if err := bucket.Put(installIDKey, []byte(id)); err != nil {
			return fmt.Errorf("failed to save install id: %w", err)
		}

		return nil
	})

	if err != nil {
		return "", err
	}

	return id, nil
}
