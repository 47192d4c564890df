package config

import "github.com/chatterbox-app/chatterbox/internal/models"

// Entitlements required on top of the runtime flag for gated features.
// A flag absent from this map needs no entitlement.
var requiredEntitlements = map[FeatureFlag]string{
	FlagRecordingReports: "reports",
	FlagDeveloperConsole: "developer",
}

// Gate decides feature visibility from the current runtime flags plus
// account entitlements, so functionality can be hidden without a code
// change.
type Gate struct {
	store *Store
}

// NewGate creates a gate reading flags from the given store.
func NewGate(store *Store) *Gate {
	return &Gate{store: store}
}

// Allows reports whether the feature is visible for the account. A nil
// account passes only features with no entitlement requirement.
func (g *Gate) Allows(account *models.Account, flag FeatureFlag) bool {
	if !g.store.Current().Enabled(flag) {
		return false
	}

	required, ok := requiredEntitlements[flag]
	if !ok {
		return true
	}
	return account.HasEntitlement(required)
}
