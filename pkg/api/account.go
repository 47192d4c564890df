package api

import "time"

// MeResponse is the account/profile snapshot returned by /rpc/me.
type MeResponse struct {
	ID             string    `json:"id"`
	Email          string    `json:"email"`
	DisplayName    string    `json:"display_name"`
	NativeLanguage string    `json:"native_language"`
	TargetLanguage string    `json:"target_language"`
	Entitlements   []string  `json:"entitlements"`
	CreatedAt      time.Time `json:"created_at"`
}

// AppConfigResponse is the runtime configuration snapshot returned by
// /rpc/app_config.
type AppConfigResponse struct {
	MagicLinkCooldownSeconds int      `json:"magic_link_cooldown_seconds"`
	CuesPageSize             int      `json:"cues_page_size"`
	EnabledFlags             []string `json:"enabled_flags"`
}
