package api

// MagicLinkRequest asks the backend to send a login link to the given
// identifier (email address or phone number).
type MagicLinkRequest struct {
	Identifier string `json:"identifier"`
}

// MagicLinkResponse acknowledges a magic link request. No tokens are
// returned; the user completes login with the token from the link.
type MagicLinkResponse struct {
	Message string `json:"message"`
}

// LoginRequest exchanges a one-time magic token for a session.
type LoginRequest struct {
	Token string `json:"token"`
}

// TokenResponse carries a freshly issued token pair.
type TokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

// RefreshRequest rotates the token pair. The refresh token also travels
// in the X-Refresh-Token header; the body mirrors it for the backend's
// request log correlation.
type RefreshRequest struct {
	RefreshToken string `json:"refresh_token"`
}

// ErrorResponse is the backend's error body. Error holds a stable
// machine-readable code, Message a human-readable description.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

// Stable backend error codes translated into domain errors by the
// repository layer.
const (
	ErrCodeInvalidMagicToken = "invalid_magic_token"
	ErrCodeMagicTokenExpired = "magic_token_expired"
	ErrCodeCooldownActive    = "cooldown_active"
	ErrCodeInvalidIdentifier = "invalid_identifier"
	ErrCodeAccountNotFound   = "account_not_found"
	ErrCodeUploadExpired     = "upload_intent_expired"
)
