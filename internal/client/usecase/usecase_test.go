package usecase

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chatterbox-app/chatterbox/internal/client/repository"
	"github.com/chatterbox-app/chatterbox/internal/models"
)

type mockAuthService struct {
	requestErr     error
	loginErr       error
	loginTokens    models.AuthTokens
	requestedIDs   []string
	loginTokenArgs []string
}

func (m *mockAuthService) RequestMagicLink(ctx context.Context, identifier string) error {
	m.requestedIDs = append(m.requestedIDs, identifier)
	return m.requestErr
}

func (m *mockAuthService) LoginWithMagicToken(ctx context.Context, token string) (models.AuthTokens, error) {
	m.loginTokenArgs = append(m.loginTokenArgs, token)
	if m.loginErr != nil {
		return models.AuthTokens{}, m.loginErr
	}
	return m.loginTokens, nil
}

type mockSessionWriter struct {
	loginCalls  []models.AuthTokens
	logoutCalls int
}

func (m *mockSessionWriter) LoginSucceeded(ctx context.Context, tokens models.AuthTokens) {
	m.loginCalls = append(m.loginCalls, tokens)
}

func (m *mockSessionWriter) Logout(ctx context.Context) {
	m.logoutCalls++
}

type recordingAnalytics struct {
	events []string
}

func (a *recordingAnalytics) Track(ctx context.Context, event string, attrs ...slog.Attr) {
	a.events = append(a.events, event)
}

func TestRequestMagicLink_Execute(t *testing.T) {
	auth := &mockAuthService{}
	analytics := &recordingAnalytics{}
	uc := NewRequestMagicLink(auth, analytics)

	err := uc.Execute(context.Background(), "  user@example.com  ")

	require.NoError(t, err)
	require.Len(t, auth.requestedIDs, 1)
	assert.Equal(t, "user@example.com", auth.requestedIDs[0])
	assert.Equal(t, []string{EventMagicLinkRequested}, analytics.events)
}

func TestRequestMagicLink_InvalidIdentifierSkipsNetwork(t *testing.T) {
	tests := []struct {
		name       string
		identifier string
	}{
		{name: "empty", identifier: ""},
		{name: "no at sign", identifier: "user.example.com"},
		{name: "phone without plus", identifier: "791234567"},
		{name: "whitespace only", identifier: "   "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			auth := &mockAuthService{}
			uc := NewRequestMagicLink(auth, &recordingAnalytics{})

			err := uc.Execute(context.Background(), tt.identifier)

			assert.ErrorIs(t, err, repository.ErrInvalidIdentifier)
			assert.Empty(t, auth.requestedIDs)
		})
	}
}

func TestRequestMagicLink_CooldownPassesThrough(t *testing.T) {
	auth := &mockAuthService{requestErr: repository.ErrCooldownActive}
	analytics := &recordingAnalytics{}
	uc := NewRequestMagicLink(auth, analytics)

	err := uc.Execute(context.Background(), "user@example.com")

	assert.ErrorIs(t, err, repository.ErrCooldownActive)
	assert.Empty(t, analytics.events)
}

func TestLoginWithMagicToken_Execute(t *testing.T) {
	auth := &mockAuthService{loginTokens: models.AuthTokens{AccessToken: "a1", RefreshToken: "r1"}}
	session := &mockSessionWriter{}
	analytics := &recordingAnalytics{}
	uc := NewLoginWithMagicToken(auth, session, analytics)

	err := uc.Execute(context.Background(), "magic-token")

	require.NoError(t, err)
	require.Len(t, session.loginCalls, 1)
	assert.Equal(t, "a1", session.loginCalls[0].AccessToken)
	assert.Equal(t, []string{EventLoginSucceeded}, analytics.events)
}

func TestLoginWithMagicToken_FailureLeavesSessionUntouched(t *testing.T) {
	auth := &mockAuthService{loginErr: repository.ErrMagicLinkExpired}
	session := &mockSessionWriter{}
	analytics := &recordingAnalytics{}
	uc := NewLoginWithMagicToken(auth, session, analytics)

	err := uc.Execute(context.Background(), "old-token")

	assert.ErrorIs(t, err, repository.ErrMagicLinkExpired)
	assert.Empty(t, session.loginCalls)
	assert.Equal(t, []string{EventLoginFailed}, analytics.events)
}

func TestLogout_Execute(t *testing.T) {
	session := &mockSessionWriter{}
	analytics := &recordingAnalytics{}
	uc := NewLogout(session, analytics)

	uc.Execute(context.Background())
	uc.Execute(context.Background())

	assert.Equal(t, 2, session.logoutCalls)
	assert.Equal(t, []string{EventLogout, EventLogout}, analytics.events)
}

func TestReasonFor(t *testing.T) {
	assert.Equal(t, "invalid_token", reasonFor(repository.ErrInvalidMagicLink))
	assert.Equal(t, "expired_token", reasonFor(repository.ErrMagicLinkExpired))
	assert.Equal(t, "network", reasonFor(context.DeadlineExceeded))
}
