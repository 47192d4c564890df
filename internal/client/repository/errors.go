package repository

import "errors"

// Domain errors translated from backend error codes. These are the
// preferred surface for user-facing messaging; transport-level
// *api.NetworkError values pass through unchanged.
var (
	ErrInvalidMagicLink  = errors.New("magic link is invalid")
	ErrMagicLinkExpired  = errors.New("magic link has expired")
	ErrCooldownActive    = errors.New("magic link recently requested, cooldown active")
	ErrInvalidIdentifier = errors.New("identifier rejected by server")
	ErrAccountNotFound   = errors.New("account not found")
	ErrUploadExpired     = errors.New("upload intent expired")
)
