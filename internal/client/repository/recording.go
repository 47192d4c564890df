package repository

import (
	"context"
	"fmt"

	"github.com/chatterbox-app/chatterbox/internal/client/api"
	"github.com/chatterbox-app/chatterbox/internal/models"
	pkgapi "github.com/chatterbox-app/chatterbox/pkg/api"
)

// RecordingRepository fetches recording history and manages upload
// intents. The upload orchestration (create intent, PUT, complete)
// lives with the caller; each method here is one backend operation.
type RecordingRepository struct {
	client Caller
}

// NewRecordingRepository creates a recording repository.
func NewRecordingRepository(client Caller) *RecordingRepository {
	return &RecordingRepository{client: client}
}

// GetRecordings fetches the recording history for the profile.
func (r *RecordingRepository) GetRecordings(ctx context.Context, profileID string, count int) ([]models.Recording, error) {
	req := pkgapi.RecordingsRequest{ProfileID: profileID, Count: count}

	var resp pkgapi.RecordingsResponse
	if err := r.client.Call(ctx, api.EndpointGetRecordings, req, &resp); err != nil {
		return nil, fmt.Errorf("fetch recordings: %w", err)
	}

	recordings := make([]models.Recording, 0, len(resp.Recordings))
	for _, dto := range resp.Recordings {
		recordings = append(recordings, recordingFromDTO(dto))
	}

	return recordings, nil
}

// CreateUploadIntent starts the upload flow for a new recording.
func (r *RecordingRepository) CreateUploadIntent(ctx context.Context, cueID, fileName, mimeType string, sizeBytes int64, durationSeconds float64) (models.UploadIntent, error) {
	req := pkgapi.CreateUploadIntentRequest{
		CueID:           cueID,
		FileName:        fileName,
		FileSizeBytes:   sizeBytes,
		MimeType:        mimeType,
		DurationSeconds: durationSeconds,
	}

	var resp pkgapi.CreateUploadIntentResponse
	if err := r.client.Call(ctx, api.EndpointCreateUploadIntent, req, &resp); err != nil {
		return models.UploadIntent{}, fmt.Errorf("create upload intent: %w", err)
	}

	return models.UploadIntent{
		IntentID:  resp.IntentID,
		UploadURL: resp.UploadURL,
		ExpiresAt: resp.ExpiresAt,
	}, nil
}

// CompleteUploadIntent notifies the backend that the direct PUT
// finished and returns the new recording's id.
func (r *RecordingRepository) CompleteUploadIntent(ctx context.Context, intentID string) (string, error) {
	req := pkgapi.CompleteUploadIntentRequest{IntentID: intentID}

	var resp pkgapi.CompleteUploadIntentResponse
	if err := r.client.Call(ctx, api.EndpointCompleteUploadIntent, req, &resp); err != nil {
		if api.BackendCode(err) == pkgapi.ErrCodeUploadExpired {
			return "", fmt.Errorf("complete upload intent: %w", ErrUploadExpired)
		}
		return "", fmt.Errorf("complete upload intent: %w", err)
	}

	return resp.RecordingID, nil
}

func recordingFromDTO(dto pkgapi.Recording) models.Recording {
	return models.Recording{
		ID:                dto.ID,
		CueID:             dto.CueID,
		LanguageCode:      dto.LanguageCode,
		Stage:             dto.Stage,
		ReportStatus:      dto.ReportStatus,
		TranscriptExcerpt: dto.TranscriptExcerpt,
		FileName:          dto.FileName,
		DurationSeconds:   dto.DurationSeconds,
		FileSizeBytes:     dto.FileSizeBytes,
		CreatedAt:         dto.CreatedAt,
		UpdatedAt:         dto.UpdatedAt,
	}
}
