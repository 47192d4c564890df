package models

import (
	"slices"
	"time"
)

// Account represents the signed-in user's profile.
type Account struct {
	ID             string
	Email          string
	DisplayName    string
	NativeLanguage string
	TargetLanguage string
	Entitlements   []string
	CreatedAt      time.Time
}

// HasEntitlement reports whether the account carries the named
// entitlement.
func (a *Account) HasEntitlement(name string) bool {
	if a == nil {
		return false
	}
	return slices.Contains(a.Entitlements, name)
}
