package repository

import (
	"context"
	"fmt"

	"github.com/chatterbox-app/chatterbox/internal/client/api"
	"github.com/chatterbox-app/chatterbox/internal/models"
	pkgapi "github.com/chatterbox-app/chatterbox/pkg/api"
)

// CueRepository fetches practice cues.
type CueRepository struct {
	client Caller
}

// NewCueRepository creates a cue repository.
func NewCueRepository(client Caller) *CueRepository {
	return &CueRepository{client: client}
}

// GetCues fetches the current cue list for the profile.
func (r *CueRepository) GetCues(ctx context.Context, profileID string, count int) ([]models.Cue, error) {
	return r.fetch(ctx, api.EndpointGetCues, profileID, count)
}

// ShuffleCues fetches a freshly shuffled cue list for the profile.
func (r *CueRepository) ShuffleCues(ctx context.Context, profileID string, count int) ([]models.Cue, error) {
	return r.fetch(ctx, api.EndpointShuffleCues, profileID, count)
}

func (r *CueRepository) fetch(ctx context.Context, ep api.Endpoint, profileID string, count int) ([]models.Cue, error) {
	req := pkgapi.CuesRequest{ProfileID: profileID, Count: count}

	var resp pkgapi.CuesResponse
	if err := r.client.Call(ctx, ep, req, &resp); err != nil {
		return nil, fmt.Errorf("fetch cues: %w", err)
	}

	cues := make([]models.Cue, 0, len(resp.Cues))
	for _, dto := range resp.Cues {
		cues = append(cues, models.Cue{
			ID:           dto.ID,
			Title:        dto.Title,
			Details:      dto.Details,
			LanguageCode: dto.LanguageCode,
			CreatedAt:    dto.CreatedAt,
		})
	}

	return cues, nil
}
