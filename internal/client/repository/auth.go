package repository

import (
	"context"
	"fmt"

	"github.com/chatterbox-app/chatterbox/internal/client/api"
	"github.com/chatterbox-app/chatterbox/internal/models"
	pkgapi "github.com/chatterbox-app/chatterbox/pkg/api"
)

// AuthRepository performs the authentication RPCs.
type AuthRepository struct {
	client Caller
}

// NewAuthRepository creates an auth repository.
func NewAuthRepository(client Caller) *AuthRepository {
	return &AuthRepository{client: client}
}

// RequestMagicLink asks the backend to send a login link to the
// identifier.
func (r *AuthRepository) RequestMagicLink(ctx context.Context, identifier string) error {
	req := pkgapi.MagicLinkRequest{Identifier: identifier}

	var resp pkgapi.MagicLinkResponse
	if err := r.client.Call(ctx, api.EndpointRequestMagicLink, req, &resp); err != nil {
		return translateAuthError(err, "request magic link")
	}

	return nil
}

// LoginWithMagicToken exchanges a one-time magic token for a session
// token pair.
func (r *AuthRepository) LoginWithMagicToken(ctx context.Context, token string) (models.AuthTokens, error) {
	req := pkgapi.LoginRequest{Token: token}

	var resp pkgapi.TokenResponse
	if err := r.client.Call(ctx, api.EndpointLoginWithMagicToken, req, &resp); err != nil {
		return models.AuthTokens{}, translateAuthError(err, "login with magic token")
	}

	tokens := models.AuthTokens{
		AccessToken:  resp.AccessToken,
		RefreshToken: resp.RefreshToken,
	}
	if !tokens.Valid() {
		return models.AuthTokens{}, fmt.Errorf("login with magic token: server returned incomplete token pair")
	}

	return tokens, nil
}

// RefreshTokens asks the backend to rotate the token pair explicitly.
// Most rotations happen transparently via response headers; this covers
// the backend-initiated rotation flow.
func (r *AuthRepository) RefreshTokens(ctx context.Context, refreshToken string) (models.AuthTokens, error) {
	req := pkgapi.RefreshRequest{RefreshToken: refreshToken}

	var resp pkgapi.TokenResponse
	if err := r.client.Call(ctx, api.EndpointRefreshTokens, req, &resp); err != nil {
		return models.AuthTokens{}, translateAuthError(err, "refresh tokens")
	}

	return models.AuthTokens{
		AccessToken:  resp.AccessToken,
		RefreshToken: resp.RefreshToken,
	}, nil
}

// translateAuthError maps backend error codes to domain errors and
// passes everything else through wrapped.
func translateAuthError(err error, op string) error {
	switch api.BackendCode(err) {
	case pkgapi.ErrCodeInvalidMagicToken:
		return fmt.Errorf("%s: %w", op, ErrInvalidMagicLink)
	case pkgapi.ErrCodeMagicTokenExpired:
		return fmt.Errorf("%s: %w", op, ErrMagicLinkExpired)
	case pkgapi.ErrCodeCooldownActive:
		return fmt.Errorf("%s: %w", op, ErrCooldownActive)
	case pkgapi.ErrCodeInvalidIdentifier:
		return fmt.Errorf("%s: %w", op, ErrInvalidIdentifier)
	default:
		return fmt.Errorf("%s: %w", op, err)
	}
}
