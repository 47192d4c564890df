package usecase

import "context"

// Logout signs the user out locally. There is no backend logout RPC;
// the refresh token simply stops being presented and expires on its
// own. The session controller clears the token store and broadcasts
// the transition; repeating a logout is harmless.
type Logout struct {
	session   SessionWriter
	analytics Analytics
}

// NewLogout creates the logout use case.
func NewLogout(session SessionWriter, analytics Analytics) *Logout {
	return &Logout{session: session, analytics: analytics}
}

// Execute clears the session.
func (u *Logout) Execute(ctx context.Context) {
	u.session.Logout(ctx)
	u.analytics.Track(ctx, EventLogout)
}
