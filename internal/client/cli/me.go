package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/chatterbox-app/chatterbox/internal/client/api"
	"github.com/chatterbox-app/chatterbox/internal/client/repository"
)

func (c *Cli) runMe(ctx context.Context) error {
	fmt.Println("=== Account ===")
	fmt.Println()

	account, err := c.accounts.Me(ctx)
	if err != nil {
		switch {
		case errors.Is(err, api.ErrNoAccessToken):
			return fmt.Errorf("not signed in. Run 'chatterbox login' first")
		case errors.Is(err, repository.ErrAccountNotFound):
			return fmt.Errorf("the account no longer exists")
		default:
			return err
		}
	}

	fmt.Printf("Email:           %s\n", account.Email)
	if account.DisplayName != "" {
		fmt.Printf("Name:            %s\n", account.DisplayName)
	}
	fmt.Printf("Native language: %s\n", account.NativeLanguage)
	fmt.Printf("Learning:        %s\n", account.TargetLanguage)
	if len(account.Entitlements) > 0 {
		fmt.Printf("Entitlements:    %s\n", strings.Join(account.Entitlements, ", "))
	}
	fmt.Printf("Member since:    %s\n", account.CreatedAt.Format(time.DateOnly))

	return nil
}
