// Package session owns the only app-wide mutable shared state: the
// current token pair and the session state. All mutations go through a
// single write lock; readers never observe a half-applied transition.
package session

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"github.com/chatterbox-app/chatterbox/internal/client/storage"
	"github.com/chatterbox-app/chatterbox/internal/models"
)

// State is the session lifecycle state.
type State int

const (
	// SignedOut is the initial state: no tokens held, store cleared.
	SignedOut State = iota
	// Authenticated implies a non-empty token pair is held.
	Authenticated
)

func (s State) String() string {
	switch s {
	case SignedOut:
		return "signed_out"
	case Authenticated:
		return "authenticated"
	default:
		return "unknown"
	}
}

// Controller serializes all session mutations and broadcasts state
// transitions to subscribers.
//
// Token store failures are logged and swallowed: the session proceeds
// in memory and the next process start simply falls back to SignedOut
// if persistence was lost. This is a documented, accepted risk.
type Controller struct {
	log   *slog.Logger
	store storage.TokenStorage

	mu     sync.RWMutex
	state  State
	tokens *models.AuthTokens
	subs   map[int]chan State
	nextID int
}

// NewController bootstraps the session from the token store. A stored
// pair yields Authenticated optimistically, with no server round-trip;
// the first 401 corrects a stale session.
func NewController(ctx context.Context, store storage.TokenStorage, log *slog.Logger) *Controller {
	c := &Controller{
		log:   log,
		store: store,
		state: SignedOut,
		subs:  make(map[int]chan State),
	}

	tokens, err := store.LoadTokens(ctx)
	switch {
	case err == nil && tokens.Valid():
		c.tokens = tokens
		c.state = Authenticated
	case err != nil && !errors.Is(err, storage.ErrTokensNotFound):
		log.Warn("failed to load stored tokens, starting signed out", "error", err)
	}

	return c
}

// Current returns the session state as of the most recently completed
// transition.
func (c *Controller) Current() State {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.state
}

// Tokens returns the current pair as one snapshot. Callers that need
// both tokens for a single request must use this instead of pairing
// AccessToken with RefreshToken: two separate reads can straddle a
// rotation and observe a mixed pair.
func (c *Controller) Tokens() (models.AuthTokens, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.tokens == nil {
		return models.AuthTokens{}, false
	}
	return *c.tokens, true
}

// AccessToken returns the current access token, if one is held.
func (c *Controller) AccessToken() (string, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.tokens == nil {
		return "", false
	}
	return c.tokens.AccessToken, true
}

// RefreshToken returns the current refresh token, if one is held.
func (c *Controller) RefreshToken() (string, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.tokens == nil {
		return "", false
	}
	return c.tokens.RefreshToken, true
}

// LoginSucceeded adopts a freshly issued token pair and transitions to
// Authenticated.
func (c *Controller) LoginSucceeded(ctx context.Context, tokens models.AuthTokens) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.store.SaveTokens(ctx, &tokens); err != nil {
		c.log.Warn("failed to persist tokens, session continues in memory", "error", err)
	}

	c.tokens = &tokens
	c.state = Authenticated
	c.publishLocked()
}

// AdoptRotated replaces the token pair after the backend rotated it.
// The state stays Authenticated but the transition is still published
// so observers with freshness-based policies can react. A rotation
// arriving after logout is ignored: adopting it would resurrect a
// session the user ended.
func (c *Controller) AdoptRotated(ctx context.Context, tokens models.AuthTokens) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state != Authenticated {
		c.log.Debug("ignoring token rotation while signed out")
		return
	}

	if err := c.store.SaveTokens(ctx, &tokens); err != nil {
		c.log.Warn("failed to persist rotated tokens", "error", err)
	}

	c.tokens = &tokens
	c.publishLocked()
}

// Logout drops the in-memory tokens and clears the store. Calling it
// on a signed-out session is a no-op.
func (c *Controller) Logout(ctx context.Context) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.store.ClearTokens(ctx); err != nil {
		c.log.Warn("failed to clear token store", "error", err)
	}

	if c.state == SignedOut && c.tokens == nil {
		return
	}

	c.tokens = nil
	c.state = SignedOut
	c.publishLocked()
}

// Subscribe returns a channel observing state transitions and a cancel
// func. The current state is delivered immediately, so late subscribers
// need no replay. Slow subscribers are coalesced to the latest value
// rather than blocking the controller.
func (c *Controller) Subscribe() (<-chan State, func()) {
	ch := make(chan State, 1)

	c.mu.Lock()
	id := c.nextID
	c.nextID++
	c.subs[id] = ch
	ch <- c.state
	c.mu.Unlock()

	cancel := func() {
		c.mu.Lock()
		defer c.mu.Unlock()
		if sub, ok := c.subs[id]; ok {
			delete(c.subs, id)
			close(sub)
		}
	}

	return ch, cancel
}

// publishLocked fans the current state out to subscribers. Caller holds
// the write lock, which also guarantees no send races a close from
// Subscribe's cancel.
func (c *Controller) publishLocked() {
	for _, ch := range c.subs {
		select {
		case ch <- c.state:
		default:
			// Buffer full: drop the stale value, keep the latest.
			select {
			case <-ch:
			default:
			}
			select {
			case ch <- c.state:
			default:
			}
		}
	}
}
