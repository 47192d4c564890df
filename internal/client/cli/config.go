package cli

import (
	"context"
	"fmt"

	"github.com/chatterbox-app/chatterbox/internal/client/config"
)

func (c *Cli) runConfig(ctx context.Context) error {
	fmt.Println("=== Runtime Configuration ===")
	fmt.Println()

	snapshot, err := c.accounts.AppConfig(ctx)
	if err != nil {
		fmt.Println("(backend unreachable, showing current snapshot)")
		fmt.Println()
		snapshot = c.config.Current()
	} else {
		c.config.Replace(snapshot)
	}

	fmt.Printf("Magic link cooldown: %s\n", snapshot.MagicLinkCooldown)
	fmt.Printf("Cues page size:      %d\n", snapshot.CuesPageSize)
	fmt.Println()
	fmt.Println("Flags:")
	for _, flag := range []config.FeatureFlag{
		config.FlagShuffleCues,
		config.FlagRecordingReports,
		config.FlagDeveloperConsole,
	} {
		state := "off"
		if snapshot.Enabled(flag) {
			state = "on"
		}
		fmt.Printf("  %-20s %s\n", flag, state)
	}

	return nil
}
