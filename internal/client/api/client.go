// Package api turns typed endpoint descriptions into decoded responses
// or a *NetworkError. It is the only producer of network errors and the
// only component that reads rotated-token response headers.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"syscall"
	"time"

	"github.com/sethvargo/go-retry"

	"github.com/chatterbox-app/chatterbox/internal/models"
	pkgapi "github.com/chatterbox-app/chatterbox/pkg/api"
)

// Session is the slice of the session controller the client needs:
// token reads, rotation adoption, and the 401-triggered logout.
// Tokens returns the pair as one snapshot so a request that sends both
// tokens can never carry a mixed pair across a concurrent rotation.
type Session interface {
	Tokens() (models.AuthTokens, bool)
	AdoptRotated(ctx context.Context, tokens models.AuthTokens)
	Logout(ctx context.Context)
}

// ErrNoAccessToken is the cause of the fail-fast unauthorized error
// produced before any network call when an auth-requiring endpoint has
// no token.
var ErrNoAccessToken = errors.New("no access token held")

const (
	retryBase   = time.Second
	maxAttempts = 3
)

// Client sends typed requests against the Chatterbox RPC backend.
// Concurrent calls are independent; the session controller is the only
// shared state, and it serializes itself.
type Client struct {
	httpClient *http.Client
	session    Session
	log        *slog.Logger
	baseURL    string
	installID  string
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// WithInstallID sets the install identifier sent on every request.
func WithInstallID(id string) Option {
	return func(c *Client) { c.installID = id }
}

// WithLogger sets the logger.
func WithLogger(log *slog.Logger) Option {
	return func(c *Client) { c.log = log }
}

// NewClient creates an API client. Timeouts are per-endpoint, so the
// underlying http.Client carries none of its own.
func NewClient(baseURL string, session Session, opts ...Option) *Client {
	c := &Client{
		baseURL:    baseURL,
		session:    session,
		httpClient: &http.Client{},
		log:        slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Call runs the full request pipeline for one endpoint. Idempotent
// endpoints are retried on transient transport errors and 5xx with
// capped exponential backoff; everything else runs exactly once.
func (c *Client) Call(ctx context.Context, ep Endpoint, body, result any) error {
	if !ep.Idempotent {
		return c.callOnce(ctx, ep, body, result)
	}

	backoff := retry.WithMaxRetries(maxAttempts-1, retry.NewExponential(retryBase))
	return retry.Do(ctx, backoff, func(ctx context.Context) error {
		err := c.callOnce(ctx, ep, body, result)
		if retryable(err) {
			return retry.RetryableError(err)
		}
		return err
	})
}

// retryable reports whether the failure is transient: transport-level
// errors and 5xx. Cancellation, offline, and every 4xx are final.
func retryable(err error) bool {
	var nerr *NetworkError
	if !errors.As(err, &nerr) {
		return false
	}
	switch nerr.Kind {
	case KindTransport:
		return true
	case KindServer:
		return nerr.StatusCode >= 500
	default:
		return false
	}
}

func (c *Client) callOnce(ctx context.Context, ep Endpoint, body, result any) error {
	var bodyReader io.Reader
	if body != nil {
		jsonData, err := json.Marshal(body)
		if err != nil {
			return &NetworkError{Kind: KindEncodingFailed, Err: fmt.Errorf("failed to encode request body: %w", err)}
		}
		bodyReader = bytes.NewReader(jsonData)
	}

	// Fail fast: an auth-requiring call without a token never reaches
	// the network. The pair is read once so the bearer and the refresh
	// header always come from the same snapshot.
	var tokens models.AuthTokens
	var haveTokens bool
	if ep.RequiresAuth || ep.SendsRefresh {
		tokens, haveTokens = c.session.Tokens()
	}
	if ep.RequiresAuth && !haveTokens {
		return &NetworkError{Kind: KindUnauthorized, Err: ErrNoAccessToken}
	}

	reqCtx, cancel := context.WithTimeout(ctx, ep.Timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(reqCtx, http.MethodPost, c.baseURL+ep.Path, bodyReader)
	if err != nil {
		return &NetworkError{Kind: KindInvalidURL, Err: err}
	}

	req.Header.Set("Content-Type", "application/json")
	if c.installID != "" {
		req.Header.Set(pkgapi.HeaderInstallID, c.installID)
	}
	if ep.RequiresAuth {
		req.Header.Set("Authorization", "Bearer "+tokens.AccessToken)
	}
	if ep.SendsRefresh && haveTokens {
		req.Header.Set(pkgapi.HeaderRefreshToken, tokens.RefreshToken)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return c.mapTransportError(ctx, ep, err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return &NetworkError{Kind: KindTransport, Err: fmt.Errorf("failed to read response body: %w", err)}
	}

	// Adopt rotated tokens before any status handling: the backend may
	// rotate on error responses too.
	c.adoptRotation(ctx, resp)

	return c.mapResponse(ctx, ep, resp, respBody, result)
}

// adoptRotation applies the rotated pair when both headers are present
// and non-empty. One header alone is ignored; a mixed pair must never
// be adopted.
func (c *Client) adoptRotation(ctx context.Context, resp *http.Response) {
	access := resp.Header.Get(pkgapi.HeaderNewAccessToken)
	refresh := resp.Header.Get(pkgapi.HeaderNewRefreshToken)
	if access == "" || refresh == "" {
		return
	}
	c.session.AdoptRotated(ctx, models.AuthTokens{AccessToken: access, RefreshToken: refresh})
}

func (c *Client) mapResponse(ctx context.Context, ep Endpoint, resp *http.Response, respBody []byte, result any) error {
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		if result == nil {
			return nil
		}
		if err := json.Unmarshal(respBody, result); err != nil {
			// Contract violation: log the path, never the payload.
			c.log.Error("unexpected response payload", "path", ep.Path, "status", resp.StatusCode)
			return &NetworkError{
				Kind:       KindServer,
				StatusCode: resp.StatusCode,
				Err:        fmt.Errorf("failed to decode response: %w", err),
			}
		}
		return nil
	}

	var errResp pkgapi.ErrorResponse
	_ = json.Unmarshal(respBody, &errResp)

	nerr := &NetworkError{
		StatusCode: resp.StatusCode,
		Code:       errResp.Error,
		Message:    errResp.Message,
	}

	switch {
	case resp.StatusCode == http.StatusUnauthorized:
		nerr.Kind = KindUnauthorized
		// Unconditional, exactly once per offending response. Callers
		// must not repeat this themselves.
		c.session.Logout(ctx)
	case resp.StatusCode == http.StatusForbidden:
		nerr.Kind = KindForbidden
	case resp.StatusCode == http.StatusNotFound:
		nerr.Kind = KindNotFound
	case resp.StatusCode == http.StatusTooManyRequests:
		nerr.Kind = KindRateLimited
		nerr.RetryAfter = parseRetryAfter(resp.Header.Get("Retry-After"))
	default:
		nerr.Kind = KindServer
	}

	return nerr
}

// mapTransportError distinguishes cancellation, missing connectivity
// and everything else at the transport level. The per-endpoint timeout
// surfaces as a transport failure, not a cancellation.
func (c *Client) mapTransportError(ctx context.Context, ep Endpoint, err error) error {
	if ctx.Err() == context.Canceled {
		return &NetworkError{Kind: KindCancelled, Err: ctx.Err()}
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return &NetworkError{Kind: KindTransport, Err: fmt.Errorf("request to %s timed out after %s: %w", ep.Path, ep.Timeout, err)}
	}
	if isOffline(err) {
		return &NetworkError{Kind: KindOffline, Err: err}
	}
	return &NetworkError{Kind: KindTransport, Err: err}
}

// isOffline is a heuristic: DNS resolution failures and unreachable or
// refusing hosts read as "no connectivity" rather than a server fault.
func isOffline(err error) bool {
	var dnsErr *net.DNSError
	if errors.As(err, &dnsErr) {
		return true
	}
	return errors.Is(err, syscall.ECONNREFUSED) ||
		errors.Is(err, syscall.ENETUNREACH) ||
		errors.Is(err, syscall.EHOSTUNREACH)
}

// parseRetryAfter handles both Retry-After forms: delta-seconds and an
// HTTP-date, which is converted to seconds from now. Anything
// unparseable or in the past reads as 0.
func parseRetryAfter(value string) int {
	if value == "" {
		return 0
	}
	if seconds, err := strconv.Atoi(value); err == nil {
		if seconds < 0 {
			return 0
		}
		return seconds
	}
	if at, err := http.ParseTime(value); err == nil {
		if delta := time.Until(at); delta > 0 {
			return int(delta.Round(time.Second) / time.Second)
		}
	}
	return 0
}
