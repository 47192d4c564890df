package storage

import (
	"context"

	"github.com/chatterbox-app/chatterbox/internal/models"
)

// TokenStorage is durable storage for the session token pair. The pair
// is always written and read as one value; implementations must never
// expose a half-written pair.
type TokenStorage interface {
	// SaveTokens overwrites any previously stored pair.
	SaveTokens(ctx context.Context, tokens *models.AuthTokens) error

	// LoadTokens returns the stored pair.
	// Returns ErrTokensNotFound if no pair exists or the stored value
	// cannot be decoded.
	LoadTokens(ctx context.Context) (*models.AuthTokens, error)

	// ClearTokens removes all stored token material. Clearing an empty
	// store is a no-op success.
	ClearTokens(ctx context.Context) error
}
