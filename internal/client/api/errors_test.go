package api

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNetworkError_Error(t *testing.T) {
	tests := []struct {
		name string
		err  *NetworkError
		want string
	}{
		{
			name: "with backend code",
			err:  &NetworkError{Kind: KindUnauthorized, StatusCode: 401, Code: "token_revoked"},
			want: "unauthorized (401): token_revoked",
		},
		{
			name: "status only",
			err:  &NetworkError{Kind: KindServer, StatusCode: 502},
			want: "server (502)",
		},
		{
			name: "wrapped cause",
			err:  &NetworkError{Kind: KindTransport, Err: errors.New("connection reset")},
			want: "transport: connection reset",
		},
		{
			name: "bare kind",
			err:  &NetworkError{Kind: KindOffline},
			want: "offline",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.err.Error())
		})
	}
}

func TestKindOf(t *testing.T) {
	nerr := &NetworkError{Kind: KindRateLimited, StatusCode: 429}
	wrapped := fmt.Errorf("request magic link: %w", nerr)

	kind, ok := KindOf(wrapped)
	assert.True(t, ok)
	assert.Equal(t, KindRateLimited, kind)

	_, ok = KindOf(errors.New("plain"))
	assert.False(t, ok)
}

func TestBackendCode(t *testing.T) {
	nerr := &NetworkError{Kind: KindServer, StatusCode: 400, Code: "invalid_identifier"}
	wrapped := fmt.Errorf("outer: %w", nerr)

	assert.Equal(t, "invalid_identifier", BackendCode(wrapped))
	assert.Empty(t, BackendCode(errors.New("plain")))
}

func TestIsHelpers(t *testing.T) {
	assert.True(t, IsUnauthorized(&NetworkError{Kind: KindUnauthorized}))
	assert.False(t, IsUnauthorized(&NetworkError{Kind: KindForbidden}))
	assert.True(t, IsOffline(&NetworkError{Kind: KindOffline}))
	assert.False(t, IsOffline(errors.New("plain")))
}
