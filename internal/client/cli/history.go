package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/chatterbox-app/chatterbox/internal/client/api"
	"github.com/chatterbox-app/chatterbox/internal/models"
)

// historyPageSize bounds both the fetch and the local cache.
const historyPageSize = 50

func (c *Cli) runHistory(ctx context.Context) error {
	fmt.Println("=== Recording History ===")
	fmt.Println()

	recordings, fromCache, err := c.loadHistory(ctx)
	if err != nil {
		return err
	}

	if fromCache {
		fmt.Println("(offline, showing cached history)")
		fmt.Println()
	}

	if len(recordings) == 0 {
		fmt.Println("No recordings yet. Try 'chatterbox record <file>'.")
		return nil
	}

	for _, rec := range recordings {
		fmt.Printf("%s  %-12s  %-8s  %s\n",
			rec.CreatedAt.Format(time.DateOnly), rec.Stage, rec.ReportStatus, rec.FileName)
		if rec.TranscriptExcerpt != "" {
			fmt.Printf("    %s\n", rec.TranscriptExcerpt)
		}
	}

	return nil
}

// loadHistory fetches the history from the backend and refreshes the
// cache. When the device is offline the cache serves instead.
func (c *Cli) loadHistory(ctx context.Context) (recordings []models.Recording, fromCache bool, err error) {
	account, err := c.accounts.Me(ctx)
	if err != nil {
		if api.IsOffline(err) {
			cached, cacheErr := c.history.List(ctx, historyPageSize)
			if cacheErr != nil {
				return nil, false, fmt.Errorf("offline and the history cache is unreadable: %w", cacheErr)
			}
			return cached, true, nil
		}
		return nil, false, err
	}

	recordings, err = c.recordings.GetRecordings(ctx, account.ID, historyPageSize)
	if err != nil {
		if api.IsOffline(err) {
			cached, cacheErr := c.history.List(ctx, historyPageSize)
			if cacheErr != nil {
				return nil, false, fmt.Errorf("offline and the history cache is unreadable: %w", cacheErr)
			}
			return cached, true, nil
		}
		return nil, false, err
	}

	// Cache refresh is best effort; a failed write never hides the
	// fetched history.
	if err := c.history.Replace(ctx, recordings); err == nil {
		_ = c.history.Prune(ctx, historyPageSize)
	}

	return recordings, false, nil
}
