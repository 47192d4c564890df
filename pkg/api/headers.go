package api

// Response headers with protocol significance. The backend may rotate
// the token pair on any authenticated call; both headers must be
// present and non-empty for the rotation to be adopted.
const (
	HeaderNewAccessToken  = "X-New-Access-Token"
	HeaderNewRefreshToken = "X-New-Refresh-Token"
)

// Request headers set by the client.
const (
	HeaderInstallID    = "X-Install-Id"
	HeaderRefreshToken = "X-Refresh-Token"
)
