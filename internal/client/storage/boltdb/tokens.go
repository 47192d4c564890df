package boltdb

import (
	"context"
	"encoding/json"
	"fmt"

	"go.etcd.io/bbolt"

	"github.com/chatterbox-app/chatterbox/internal/client/storage"
	"github.com/chatterbox-app/chatterbox/internal/models"
)

var tokensKey = []byte("current")

// SaveTokens stores the token pair, overwriting any prior value.
func (s *Storage) SaveTokens(ctx context.Context, tokens *models.AuthTokens) error {
	if err := s.checkClosed(); err != nil {
		return err
	}
	if tokens == nil {
		return fmt.Errorf("tokens are nil")
	}

	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketTokens)
		if bucket == nil {
			return fmt.Errorf("tokens bucket not found")
		}

		data, err := json.Marshal(tokens)
		if err != nil {
			return fmt.Errorf("failed to marshal tokens: %w", err)
		}

		if err := bucket.Put(tokensKey, data); err != nil {
			return fmt.Errorf("failed to save tokens: %w", err)
		}

		return nil
	})
}

// LoadTokens retrieves the stored token pair.
// An undecodable value counts as not found: there is nothing the caller
// could do with it except sign out.
func (s *Storage) LoadTokens(ctx context.Context) (*models.AuthTokens, error) {
	if err := s.checkClosed(); err != nil {
		return nil, err
	}

	var tokens *models.AuthTokens

	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketTokens)
		if bucket == nil {
			return fmt.Errorf("tokens bucket not found")
		}

		data := bucket.Get(tokensKey)
		if data == nil {
			return storage.ErrTokensNotFound
		}

		tokens = &models.AuthTokens{}
		if err := json.Unmarshal(data, tokens); err != nil {
			return storage.ErrTokensNotFound
		}

		return nil
	})

	if err != nil {
		return nil, err
	}

	return tokens, nil
}

// ClearTokens removes the stored pair. Clearing an empty store is a
// no-op success so logout stays idempotent.
func (s *Storage) ClearTokens(ctx context.Context) error {
	if err := s.checkClosed(); err != nil {
		return err
	}

	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketTokens)
		if bucket == nil {
			return fmt.Errorf("tokens bucket not found")
		}

		if err := bucket.Delete(tokensKey); err != nil {
			return fmt.Errorf("failed to clear tokens: %w", err)
		}

		return nil
	})
}
