package storage

import (
	"context"
	"fmt"

	"github.com/chatterbox-app/chatterbox/internal/crypto"
	"github.com/chatterbox-app/chatterbox/internal/models"
)

// SealedTokenStore wraps a raw TokenStorage and seals the token pair
// before it reaches the underlying store, so tokens are encrypted at
// rest. A load that fails to unseal (key change, corrupted file) is
// reported as ErrTokensNotFound: the pair is unrecoverable either way
// and the caller falls back to signed-out.
type SealedTokenStore struct {
	inner TokenStorage
	key   []byte
}

var _ TokenStorage = (*SealedTokenStore)(nil)

// NewSealedTokenStore creates the sealing layer. key must be
// crypto.KeySize bytes, derived from the install secret.
func NewSealedTokenStore(inner TokenStorage, key []byte) (*SealedTokenStore, error) {
	if len(key) != crypto.KeySize {
		return nil, fmt.Errorf("sealing key must be %d bytes, got %d", crypto.KeySize, len(key))
	}
	return &SealedTokenStore{inner: inner, key: key}, nil
}

// SaveTokens seals both tokens and stores the sealed pair.
func (s *SealedTokenStore) SaveTokens(ctx context.Context, tokens *models.AuthTokens) error {
	if tokens == nil {
		return fmt.Errorf("tokens are nil")
	}

	sealedAccess, err := crypto.SealToBase64([]byte(tokens.AccessToken), s.key)
	if err != nil {
		return fmt.Errorf("failed to seal access token: %w", err)
	}
	sealedRefresh, err := crypto.SealToBase64([]byte(tokens.RefreshToken), s.key)
	if err != nil {
		return fmt.Errorf("failed to seal refresh token: %w", err)
	}

	return s.inner.SaveTokens(ctx, &models.AuthTokens{
		AccessToken:  sealedAccess,
		RefreshToken: sealedRefresh,
	})
}

// LoadTokens loads and unseals the stored pair.
func (s *SealedTokenStore) LoadTokens(ctx context.Context) (*models.AuthTokens, error) {
	sealed, err := s.inner.LoadTokens(ctx)
	if err != nil {
		return nil, err
	}

	access, err := crypto.OpenFromBase64(sealed.AccessToken, s.key)
	if err != nil {
		return nil, ErrTokensNotFound
	}
	refresh, err := crypto.OpenFromBase64(sealed.RefreshToken, s.key)
	if err != nil {
		return nil, ErrTokensNotFound
	}

	return &models.AuthTokens{
		AccessToken:  string(access),
		RefreshToken: string(refresh),
	}, nil
}

// ClearTokens removes the stored pair.
func (s *SealedTokenStore) ClearTokens(ctx context.Context) error {
	return s.inner.ClearTokens(ctx)
}
