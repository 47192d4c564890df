package models

// AuthTokens is the opaque bearer token pair issued by the backend.
// The pair is owned exclusively by the session controller and is only
// ever replaced as a whole, never field by field.
type AuthTokens struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

// Valid reports whether both halves of the pair are present.
func (t AuthTokens) Valid() bool {
	return t.AccessToken != "" && t.RefreshToken != ""
}
