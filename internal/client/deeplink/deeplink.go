// Package deeplink validates incoming magic-link URLs before the
// token they carry is exchanged for a session.
package deeplink

import (
	"errors"
	"net/url"
)

// Hosts allowed to originate magic links. Anything else is rejected
// even when the path and token look right.
var allowedHosts = map[string]struct{}{
	"chatterbox.app":     {},
	"www.chatterbox.app": {},
}

// magicPath is the only path a magic link may use.
const magicPath = "/auth/magic"

var (
	ErrNotMagicLink = errors.New("url is not a magic link")
	ErrMissingToken = errors.New("magic link has no token")
)

// ParseMagicLink extracts the one-time login token from a magic-link
// URL. It returns ErrNotMagicLink for anything that is not an https
// link to the magic path on an allowed host, and ErrMissingToken when
// the link is well formed but the token parameter is absent or empty.
func ParseMagicLink(raw string) (string, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return "", ErrNotMagicLink
	}

	if u.Scheme != "https" {
		return "", ErrNotMagicLink
	}

	if _, ok := allowedHosts[u.Hostname()]; !ok {
		return "", ErrNotMagicLink
	}

	if u.Path != magicPath {
		return "", ErrNotMagicLink
	}

	token := u.Query().Get("token")
	if token == "" {
		return "", ErrMissingToken
	}

	return token, nil
}
