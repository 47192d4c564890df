package api

import "time"

// CuesRequest is the body for /rpc/get_cues and /rpc/shuffle_cues.
type CuesRequest struct {
	ProfileID string `json:"profile_id"`
	Count     int    `json:"count"`
}

// Cue is a backend-authored practice prompt. Details holds the
// markdown-ish prompt body; rendering is a client concern.
type Cue struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	Details      string    `json:"details"`
	LanguageCode string    `json:"language_code"`
	CreatedAt    time.Time `json:"created_at"`
}

// CuesResponse is the response for both cue listing endpoints.
type CuesResponse struct {
	Cues []Cue `json:"cues"`
}
