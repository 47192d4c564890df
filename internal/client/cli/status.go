package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/chatterbox-app/chatterbox/internal/client/session"
)

func (c *Cli) runStatus(ctx context.Context) error {
	fmt.Println("=== Session Status ===")
	fmt.Println()

	if c.session.Current() != session.Authenticated {
		fmt.Println("Status: Signed out")
		fmt.Println()
		fmt.Println("Run 'chatterbox login' to sign in.")
		return nil
	}

	fmt.Println("Status: Signed in")

	accessToken, ok := c.session.AccessToken()
	if !ok {
		return nil
	}

	// The expiry is informational only; the server is the authority and
	// the client never verifies the signature.
	expiresAt, err := tokenExpiry(accessToken)
	if err != nil {
		fmt.Println("Access token expiry: unknown")
		return nil
	}

	fmt.Printf("Access token expires: %s\n", expiresAt.Format(time.RFC3339))

	remaining := time.Until(expiresAt)
	if remaining > 0 {
		fmt.Printf("Time remaining: %s\n", remaining.Round(time.Second))
	} else {
		fmt.Println("Access token has expired. It rotates on the next request.")
	}

	return nil
}

func tokenExpiry(accessToken string) (time.Time, error) {
	token, _, err := jwt.NewParser().ParseUnverified(accessToken, jwt.MapClaims{})
	if err != nil {
		return time.Time{}, fmt.Errorf("parse access token: %w", err)
	}

	expiresAt, err := token.Claims.GetExpirationTime()
	if err != nil || expiresAt == nil {
		return time.Time{}, fmt.Errorf("access token has no expiry claim")
	}

	return expiresAt.Time, nil
}
