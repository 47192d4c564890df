package models

import "time"

// Recording stages as reported by the backend. The client never
// advances a stage itself.
const (
	StageUploaded     = "uploaded"
	StageTranscribing = "transcribing"
	StageTranscribed  = "transcribed"
)

// Report statuses for a recording's transcription report.
const (
	ReportPending = "pending"
	ReportReady   = "ready"
	ReportFailed  = "failed"
)

// Recording is one practice recording with its transcription state.
type Recording struct {
	ID                string
	CueID             string
	LanguageCode      string
	Stage             string
	ReportStatus      string
	TranscriptExcerpt string
	FileName          string
	DurationSeconds   float64
	FileSizeBytes     int64
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// UploadIntent is the client-side view of a pending direct upload.
type UploadIntent struct {
	IntentID  string
	UploadURL string
	ExpiresAt time.Time
}
