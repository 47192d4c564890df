package repository

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chatterbox-app/chatterbox/internal/client/api"
	"github.com/chatterbox-app/chatterbox/internal/client/config"
	pkgapi "github.com/chatterbox-app/chatterbox/pkg/api"
)

// respondingCaller fills the result from a canned response.
func respondingCaller(response any) *CallerMock {
	return &CallerMock{
		CallFunc: func(ctx context.Context, ep api.Endpoint, body any, result any) error {
			if result == nil || response == nil {
				return nil
			}
			data, err := json.Marshal(response)
			if err != nil {
				return err
			}
			return json.Unmarshal(data, result)
		},
	}
}

// failingCaller fails every call with the given error.
func failingCaller(err error) *CallerMock {
	return &CallerMock{
		CallFunc: func(ctx context.Context, ep api.Endpoint, body any, result any) error {
			return err
		},
	}
}

func TestAuthRepository_RequestMagicLink(t *testing.T) {
	caller := respondingCaller(pkgapi.MagicLinkResponse{Message: "sent"})
	repo := NewAuthRepository(caller)

	err := repo.RequestMagicLink(context.Background(), "u@example.com")

	require.NoError(t, err)
	calls := caller.CallCalls()
	require.Len(t, calls, 1)
	assert.Equal(t, api.EndpointRequestMagicLink, calls[0].Ep)
	assert.Equal(t, pkgapi.MagicLinkRequest{Identifier: "u@example.com"}, calls[0].Body)
}

func TestAuthRepository_RequestMagicLink_DomainErrors(t *testing.T) {
	tests := []struct {
		name    string
		code    string
		wantErr error
	}{
		{name: "cooldown", code: pkgapi.ErrCodeCooldownActive, wantErr: ErrCooldownActive},
		{name: "invalid identifier", code: pkgapi.ErrCodeInvalidIdentifier, wantErr: ErrInvalidIdentifier},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			caller := failingCaller(&api.NetworkError{Kind: api.KindServer, StatusCode: 400, Code: tt.code})
			repo := NewAuthRepository(caller)

			err := repo.RequestMagicLink(context.Background(), "u@example.com")

			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestAuthRepository_LoginWithMagicToken(t *testing.T) {
	caller := respondingCaller(pkgapi.TokenResponse{AccessToken: "a1", RefreshToken: "r1"})
	repo := NewAuthRepository(caller)

	tokens, err := repo.LoginWithMagicToken(context.Background(), "magic-token")

	require.NoError(t, err)
	assert.Equal(t, "a1", tokens.AccessToken)
	assert.Equal(t, "r1", tokens.RefreshToken)
	calls := caller.CallCalls()
	require.Len(t, calls, 1)
	assert.Equal(t, api.EndpointLoginWithMagicToken, calls[0].Ep)
}

func TestAuthRepository_LoginWithMagicToken_InvalidToken(t *testing.T) {
	caller := failingCaller(&api.NetworkError{Kind: api.KindServer, StatusCode: 400, Code: pkgapi.ErrCodeInvalidMagicToken})
	repo := NewAuthRepository(caller)

	_, err := repo.LoginWithMagicToken(context.Background(), "bad-token")

	assert.ErrorIs(t, err, ErrInvalidMagicLink)
}

func TestAuthRepository_LoginWithMagicToken_ExpiredToken(t *testing.T) {
	caller := failingCaller(&api.NetworkError{Kind: api.KindServer, StatusCode: 400, Code: pkgapi.ErrCodeMagicTokenExpired})
	repo := NewAuthRepository(caller)

	_, err := repo.LoginWithMagicToken(context.Background(), "old-token")

	assert.ErrorIs(t, err, ErrMagicLinkExpired)
}

func TestAuthRepository_LoginWithMagicToken_IncompletePair(t *testing.T) {
	caller := respondingCaller(pkgapi.TokenResponse{AccessToken: "a1"})
	repo := NewAuthRepository(caller)

	_, err := repo.LoginWithMagicToken(context.Background(), "magic-token")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "incomplete token pair")
}

func TestAuthRepository_NetworkErrorPassesThrough(t *testing.T) {
	caller := failingCaller(&api.NetworkError{Kind: api.KindOffline})
	repo := NewAuthRepository(caller)

	err := repo.RequestMagicLink(context.Background(), "u@example.com")

	assert.True(t, api.IsOffline(err))
}

func TestAuthRepository_RefreshTokens(t *testing.T) {
	caller := respondingCaller(pkgapi.TokenResponse{AccessToken: "a2", RefreshToken: "r2"})
	repo := NewAuthRepository(caller)

	tokens, err := repo.RefreshTokens(context.Background(), "r1")

	require.NoError(t, err)
	assert.Equal(t, "a2", tokens.AccessToken)
	calls := caller.CallCalls()
	require.Len(t, calls, 1)
	assert.Equal(t, api.EndpointRefreshTokens, calls[0].Ep)
	assert.Equal(t, pkgapi.RefreshRequest{RefreshToken: "r1"}, calls[0].Body)
}

func TestAccountRepository_Me(t *testing.T) {
	created := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	caller := respondingCaller(pkgapi.MeResponse{
		ID:             "user-1",
		Email:          "u@example.com",
		DisplayName:    "U",
		NativeLanguage: "en",
		TargetLanguage: "de",
		Entitlements:   []string{"reports"},
		CreatedAt:      created,
	})
	repo := NewAccountRepository(caller)

	account, err := repo.Me(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "user-1", account.ID)
	assert.Equal(t, "de", account.TargetLanguage)
	assert.True(t, account.HasEntitlement("reports"))
	assert.Equal(t, created, account.CreatedAt)
}

func TestAccountRepository_Me_NotFound(t *testing.T) {
	caller := failingCaller(&api.NetworkError{Kind: api.KindNotFound, StatusCode: 404, Code: pkgapi.ErrCodeAccountNotFound})
	repo := NewAccountRepository(caller)

	_, err := repo.Me(context.Background())

	assert.ErrorIs(t, err, ErrAccountNotFound)
}

func TestAccountRepository_AppConfig(t *testing.T) {
	caller := respondingCaller(pkgapi.AppConfigResponse{
		MagicLinkCooldownSeconds: 45,
		CuesPageSize:             12,
		EnabledFlags:             []string{"shuffle_cues"},
	})
	repo := NewAccountRepository(caller)

	snapshot, err := repo.AppConfig(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 45*time.Second, snapshot.MagicLinkCooldown)
	assert.Equal(t, 12, snapshot.CuesPageSize)
	assert.True(t, snapshot.Enabled(config.FlagShuffleCues))
}

func TestCueRepository_GetCues(t *testing.T) {
	caller := respondingCaller(pkgapi.CuesResponse{Cues: []pkgapi.Cue{
		{ID: "c1", Title: "Order a coffee", LanguageCode: "de"},
		{ID: "c2", Title: "Ask for directions", LanguageCode: "de"},
	}})
	repo := NewCueRepository(caller)

	cues, err := repo.GetCues(context.Background(), "p1", 2)

	require.NoError(t, err)
	require.Len(t, cues, 2)
	assert.Equal(t, "c1", cues[0].ID)
	calls := caller.CallCalls()
	require.Len(t, calls, 1)
	assert.Equal(t, api.EndpointGetCues, calls[0].Ep)
	assert.Equal(t, pkgapi.CuesRequest{ProfileID: "p1", Count: 2}, calls[0].Body)
}

func TestCueRepository_ShuffleCues_UsesShuffleEndpoint(t *testing.T) {
	caller := respondingCaller(pkgapi.CuesResponse{})
	repo := NewCueRepository(caller)

	_, err := repo.ShuffleCues(context.Background(), "p1", 5)

	require.NoError(t, err)
	calls := caller.CallCalls()
	require.Len(t, calls, 1)
	assert.Equal(t, api.EndpointShuffleCues, calls[0].Ep)
}

func TestRecordingRepository_GetRecordings(t *testing.T) {
	caller := respondingCaller(pkgapi.RecordingsResponse{Recordings: []pkgapi.Recording{
		{ID: "rec1", CueID: "c1", Stage: "transcribed", ReportStatus: "ready"},
	}})
	repo := NewRecordingRepository(caller)

	recordings, err := repo.GetRecordings(context.Background(), "p1", 10)

	require.NoError(t, err)
	require.Len(t, recordings, 1)
	assert.Equal(t, "rec1", recordings[0].ID)
	assert.Equal(t, "ready", recordings[0].ReportStatus)
}

func TestRecordingRepository_CreateUploadIntent(t *testing.T) {
	caller := respondingCaller(pkgapi.CreateUploadIntentResponse{
		IntentID:  "intent-1",
		UploadURL: "https://uploads.example.com/abc?sig=xyz",
	})
	repo := NewRecordingRepository(caller)

	intent, err := repo.CreateUploadIntent(context.Background(), "c1", "take.m4a", "audio/mp4", 1024, 12.5)

	require.NoError(t, err)
	assert.Equal(t, "intent-1", intent.IntentID)
	calls := caller.CallCalls()
	require.Len(t, calls, 1)
	assert.Equal(t, api.EndpointCreateUploadIntent, calls[0].Ep)
}

func TestRecordingRepository_CompleteUploadIntent(t *testing.T) {
	caller := respondingCaller(pkgapi.CompleteUploadIntentResponse{RecordingID: "rec-9"})
	repo := NewRecordingRepository(caller)

	recordingID, err := repo.CompleteUploadIntent(context.Background(), "intent-1")

	require.NoError(t, err)
	assert.Equal(t, "rec-9", recordingID)
}

func TestRecordingRepository_CompleteUploadIntent_Expired(t *testing.T) {
	caller := failingCaller(&api.NetworkError{Kind: api.KindServer, StatusCode: 410, Code: pkgapi.ErrCodeUploadExpired})
	repo := NewRecordingRepository(caller)

	_, err := repo.CompleteUploadIntent(context.Background(), "intent-1")

	assert.ErrorIs(t, err, ErrUploadExpired)
}
