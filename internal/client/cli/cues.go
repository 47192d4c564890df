package cli

import (
	"context"
	"fmt"

	"github.com/chatterbox-app/chatterbox/internal/client/config"
	"github.com/chatterbox-app/chatterbox/internal/models"
)

func (c *Cli) runCues(ctx context.Context, args []string) error {
	shuffle := len(args) > 0 && args[0] == "--shuffle"

	account, err := c.accounts.Me(ctx)
	if err != nil {
		return fmt.Errorf("failed to load account: %w", err)
	}

	count := c.config.Current().CuesPageSize

	var cues []models.Cue
	if shuffle {
		if !c.gate.Allows(account, config.FlagShuffleCues) {
			return fmt.Errorf("shuffle is not available right now")
		}
		cues, err = c.cues.ShuffleCues(ctx, account.ID, count)
	} else {
		cues, err = c.cues.GetCues(ctx, account.ID, count)
	}
	if err != nil {
		return err
	}

	fmt.Printf("=== Practice Cues (%s) ===\n", account.TargetLanguage)
	fmt.Println()

	if len(cues) == 0 {
		fmt.Println("No cues available.")
		return nil
	}

	for i, cue := range cues {
		fmt.Printf("%2d. %s\n", i+1, cue.Title)
		if cue.Details != "" {
			fmt.Printf("    %s\n", cue.Details)
		}
	}

	return nil
}
