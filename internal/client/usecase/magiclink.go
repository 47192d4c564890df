package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/chatterbox-app/chatterbox/internal/client/repository"
	"github.com/chatterbox-app/chatterbox/internal/models"
	"github.com/chatterbox-app/chatterbox/internal/validation"
)

// AuthService is the slice of the auth repository the login flow needs.
type AuthService interface {
	RequestMagicLink(ctx context.Context, identifier string) error
	LoginWithMagicToken(ctx context.Context, token string) (models.AuthTokens, error)
}

// SessionWriter is the slice of the session controller the login flow
// mutates.
type SessionWriter interface {
	LoginSucceeded(ctx context.Context, tokens models.AuthTokens)
	Logout(ctx context.Context)
}

// RequestMagicLink validates the identifier locally and asks the
// backend to send a login link. Validation failures never reach the
// network.
type RequestMagicLink struct {
	auth      AuthService
	analytics Analytics
}

// NewRequestMagicLink creates the request-magic-link use case.
func NewRequestMagicLink(auth AuthService, analytics Analytics) *RequestMagicLink {
	return &RequestMagicLink{auth: auth, analytics: analytics}
}

// Execute sends the magic link. The identifier is an email address or
// an E.164 phone number.
func (u *RequestMagicLink) Execute(ctx context.Context, identifier string) error {
	identifier = strings.TrimSpace(identifier)
	if err := validation.ValidateIdentifier(identifier); err != nil {
		return fmt.Errorf("request magic link: %w", repository.ErrInvalidIdentifier)
	}

	if err := u.auth.RequestMagicLink(ctx, identifier); err != nil {
		return err
	}

	u.analytics.Track(ctx, EventMagicLinkRequested)

	return nil
}

// LoginWithMagicToken exchanges a one-time magic token for a session.
// On success the tokens are handed to the session controller, which
// persists them and broadcasts the transition.
type LoginWithMagicToken struct {
	auth      AuthService
	session   SessionWriter
	analytics Analytics
}

// NewLoginWithMagicToken creates the login use case.
func NewLoginWithMagicToken(auth AuthService, session SessionWriter, analytics Analytics) *LoginWithMagicToken {
	return &LoginWithMagicToken{auth: auth, session: session, analytics: analytics}
}

// Execute performs the token exchange and session transition.
func (u *LoginWithMagicToken) Execute(ctx context.Context, token string) error {
	tokens, err := u.auth.LoginWithMagicToken(ctx, token)
	if err != nil {
		u.analytics.Track(ctx, EventLoginFailed, slog.String("reason", reasonFor(err)))
		return err
	}

	u.session.LoginSucceeded(ctx, tokens)
	u.analytics.Track(ctx, EventLoginSucceeded)

	return nil
}

func reasonFor(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, repository.ErrInvalidMagicLink):
		return "invalid_token"
	case errors.Is(err, repository.ErrMagicLinkExpired):
		return "expired_token"
	default:
		return "network"
	}
}
