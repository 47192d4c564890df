package usecase

import (
	"context"
	"log/slog"
)

// Analytics records product events emitted by the use cases. The
// events carry no identifiers beyond what the caller passes in.
type Analytics interface {
	Track(ctx context.Context, event string, attrs ...slog.Attr)
}

// Event names emitted by this package.
const (
	EventMagicLinkRequested = "magic_link_requested"
	EventLoginSucceeded     = "login_succeeded"
	EventLoginFailed        = "login_failed"
	EventLogout             = "logout"
)

// SlogAnalytics writes analytics events to the structured log. It is
// the only sink the client ships with; a remote collector would
// implement Analytics the same way.
type SlogAnalytics struct {
	log *slog.Logger
}

// NewSlogAnalytics creates an analytics sink backed by the logger.
func NewSlogAnalytics(log *slog.Logger) *SlogAnalytics {
	return &SlogAnalytics{log: log}
}

// Track logs the event at info level.
func (a *SlogAnalytics) Track(ctx context.Context, event string, attrs ...slog.Attr) {
	a.log.LogAttrs(ctx, slog.LevelInfo, "analytics event",
		append([]slog.Attr{slog.String("event", event)}, attrs...)...)
}
