package api

import (
	"errors"
	"fmt"
)

// ErrorKind classifies a failed request. Exactly one kind is active per
// failure; KindUnauthorized is the only kind with a session-wide side
// effect (logout, triggered inside the client).
type ErrorKind int

const (
	KindInvalidURL ErrorKind = iota
	KindEncodingFailed
	KindUnauthorized
	KindForbidden
	KindNotFound
	KindRateLimited
	KindServer
	KindTransport
	KindOffline
	KindCancelled
)

func (k ErrorKind) String() string {
	switch k {
	case KindInvalidURL:
		return "invalid_url"
	case KindEncodingFailed:
		return "encoding_failed"
	case KindUnauthorized:
		return "unauthorized"
	case KindForbidden:
		return "forbidden"
	case KindNotFound:
		return "not_found"
	case KindRateLimited:
		return "rate_limited"
	case KindServer:
		return "server"
	case KindTransport:
		return "transport"
	case KindOffline:
		return "offline"
	case KindCancelled:
		return "cancelled"
	default:
		return "unknown"
	}
}

// NetworkError is the typed failure produced by the client. Code and
// Message carry the backend error body when one was decodable, so the
// repository layer can translate backend business-rule errors without
// re-reading the response.
type NetworkError struct {
	Err        error
	Code       string
	Message    string
	Kind       ErrorKind
	StatusCode int
	RetryAfter int // seconds, 0 when the backend sent no Retry-After
}

func (e *NetworkError) Error() string {
	switch {
	case e.Code != "":
		return fmt.Sprintf("%s (%d): %s", e.Kind, e.StatusCode, e.Code)
	case e.StatusCode != 0:
		return fmt.Sprintf("%s (%d)", e.Kind, e.StatusCode)
	case e.Err != nil:
		return fmt.Sprintf("%s: %v", e.Kind, e.Err)
	default:
		return e.Kind.String()
	}
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}

// KindOf extracts the error kind from err's chain.
func KindOf(err error) (ErrorKind, bool) {
	var nerr *NetworkError
	if errors.As(err, &nerr) {
		return nerr.Kind, true
	}
	return 0, false
}

// BackendCode extracts the backend error code from err's chain, if the
// failed response carried a decodable error body.
func BackendCode(err error) string {
	var nerr *NetworkError
	if errors.As(err, &nerr) {
		return nerr.Code
	}
	return ""
}

// IsUnauthorized reports whether err is an unauthorized failure.
func IsUnauthorized(err error) bool {
	kind, ok := KindOf(err)
	return ok && kind == KindUnauthorized
}

// IsOffline reports whether err indicates no connectivity.
func IsOffline(err error) bool {
	kind, ok := KindOf(err)
	return ok && kind == KindOffline
}
