package api

import "time"

// Endpoint describes one backend RPC. All RPCs are POST with a JSON
// body. Only endpoints marked Idempotent are retried automatically on
// transient failures; the flag asserts retry safety, not HTTP
// semantics.
type Endpoint struct {
	Path         string
	Timeout      time.Duration
	RequiresAuth bool
	Idempotent   bool
	SendsRefresh bool
}

// Backend RPC surface. Paths are backend-defined; do not invent new
// ones client-side.
var (
	EndpointRequestMagicLink = Endpoint{
		Path:    "/rpc/request_magic_link",
		Timeout: 15 * time.Second,
	}
	EndpointLoginWithMagicToken = Endpoint{
		Path:    "/rpc/login_with_magic_token",
		Timeout: 15 * time.Second,
	}
	EndpointRefreshTokens = Endpoint{
		Path:         "/rpc/refresh_tokens",
		Timeout:      15 * time.Second,
		RequiresAuth: true,
		SendsRefresh: true,
	}
	EndpointMe = Endpoint{
		Path:         "/rpc/me",
		Timeout:      10 * time.Second,
		RequiresAuth: true,
		Idempotent:   true,
	}
	EndpointAppConfig = Endpoint{
		Path:       "/rpc/app_config",
		Timeout:    10 * time.Second,
		Idempotent: true,
	}
	EndpointGetCues = Endpoint{
		Path:         "/rpc/get_cues",
		Timeout:      15 * time.Second,
		RequiresAuth: true,
		Idempotent:   true,
	}
	EndpointShuffleCues = Endpoint{
		Path:         "/rpc/shuffle_cues",
		Timeout:      15 * time.Second,
		RequiresAuth: true,
		Idempotent:   true,
	}
	EndpointGetRecordings = Endpoint{
		Path:         "/rpc/get_recordings",
		Timeout:      15 * time.Second,
		RequiresAuth: true,
		Idempotent:   true,
	}
	EndpointCreateUploadIntent = Endpoint{
		Path:         "/rpc/create_upload_intent",
		Timeout:      20 * time.Second,
		RequiresAuth: true,
	}
	EndpointCompleteUploadIntent = Endpoint{
		Path:         "/rpc/complete_upload_intent",
		Timeout:      20 * time.Second,
		RequiresAuth: true,
	}
)
