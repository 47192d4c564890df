package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/chatterbox-app/chatterbox/internal/client/deeplink"
	"github.com/chatterbox-app/chatterbox/internal/client/repository"
)

func (c *Cli) runLogin(ctx context.Context) error {
	fmt.Println("=== Login ===")
	fmt.Println()

	identifier, err := readInput("Email or phone: ")
	if err != nil {
		return fmt.Errorf("failed to read identifier: %w", err)
	}

	fmt.Println()
	fmt.Println("Requesting magic link...")

	if err := c.requestLink.Execute(ctx, identifier); err != nil {
		switch {
		case errors.Is(err, repository.ErrInvalidIdentifier):
			return fmt.Errorf("enter an email address or a phone number in +XXXXXXXX format")
		case errors.Is(err, repository.ErrCooldownActive):
			return fmt.Errorf("a magic link was sent recently, wait a moment before requesting another")
		default:
			return err
		}
	}

	fmt.Println("✓ Magic link sent! Check your inbox.")
	fmt.Println()

	input, err := readSecret("Paste the magic link (or just the token): ")
	if err != nil {
		return fmt.Errorf("failed to read magic link: %w", err)
	}
	if input == "" {
		return fmt.Errorf("magic link cannot be empty")
	}

	token := input
	if parsed, err := deeplink.ParseMagicLink(input); err == nil {
		token = parsed
	} else if !errors.Is(err, deeplink.ErrNotMagicLink) {
		return fmt.Errorf("magic link is invalid: %w", err)
	}

	fmt.Println("Signing in...")

	if err := c.login.Execute(ctx, token); err != nil {
		switch {
		case errors.Is(err, repository.ErrInvalidMagicLink):
			return fmt.Errorf("the magic link is invalid, request a new one")
		case errors.Is(err, repository.ErrMagicLinkExpired):
			return fmt.Errorf("the magic link has expired, request a new one")
		default:
			return err
		}
	}

	fmt.Println()
	fmt.Println("✓ Login successful!")
	fmt.Println("Your session has been saved securely.")

	return nil
}
