// Package repository wraps API calls in typed domain operations.
// Repositories do DTO-to-domain mapping and backend-error-code
// translation only; they never touch the token store, which keeps the
// session controller the single point of truth for session mutation.
package repository

import (
	"context"
	"io"

	"github.com/chatterbox-app/chatterbox/internal/client/api"
)

//go:generate moq -out caller_mock_test.go . Caller

// Caller is the slice of the API client repositories use.
type Caller interface {
	Call(ctx context.Context, ep api.Endpoint, body, result any) error
	UploadFile(ctx context.Context, uploadURL, contentType string, payload io.Reader, size int64) error
}
