package api

import "time"

// RecordingsRequest is the body for /rpc/get_recordings.
type RecordingsRequest struct {
	ProfileID string `json:"profile_id"`
	Count     int    `json:"count"`
}

// Recording mirrors a backend recording row. Stage and report status
// transitions are backend-authoritative; the client only displays them.
type Recording struct {
	ID                string    `json:"id"`
	CueID             string    `json:"cue_id"`
	LanguageCode      string    `json:"language_code"`
	Stage             string    `json:"stage"`
	ReportStatus      string    `json:"report_status"`
	TranscriptExcerpt string    `json:"transcript_excerpt"`
	FileName          string    `json:"file_name"`
	DurationSeconds   float64   `json:"duration_seconds"`
	FileSizeBytes     int64     `json:"file_size_bytes"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

// RecordingsResponse is the response for /rpc/get_recordings.
type RecordingsResponse struct {
	Recordings []Recording `json:"recordings"`
}

// CreateUploadIntentRequest starts the recording upload flow.
type CreateUploadIntentRequest struct {
	CueID           string  `json:"cue_id"`
	FileName        string  `json:"file_name"`
	FileSizeBytes   int64   `json:"file_size_bytes"`
	MimeType        string  `json:"mime_type"`
	DurationSeconds float64 `json:"duration_seconds"`
}

// CreateUploadIntentResponse carries the presigned URL the audio file
// is PUT to directly, bypassing the RPC surface.
type CreateUploadIntentResponse struct {
	IntentID  string    `json:"intent_id"`
	UploadURL string    `json:"upload_url"`
	ExpiresAt time.Time `json:"expires_at"`
}

// CompleteUploadIntentRequest notifies the backend that the direct PUT
// finished.
type CompleteUploadIntentRequest struct {
	IntentID string `json:"intent_id"`
}

// CompleteUploadIntentResponse returns the recording created from the
// completed upload.
type CompleteUploadIntentResponse struct {
	RecordingID string `json:"recording_id"`
}
