package models

import "time"

// Cue is a practice prompt shown to the user for speaking practice.
type Cue struct {
	ID           string
	Title        string
	Details      string
	LanguageCode string
	CreatedAt    time.Time
}
