package sessions

import (
	"context"
	"errors"
	"time"
)

// ErrNoSession is returned when a token does not resolve to a live session.
var ErrNoSession = errors.New("no session")

// Session maps a bearer token to a user with an expiry. Sessions are issued
// by the sign-in flow and consumed read-only everywhere else.
type Session struct {
	ID        string
	UserID    string
	Token     string
	ExpiresAt time.Time
	IPAddress string
	UserAgent string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Identity is the resolved caller of an authenticated request.
type Identity struct {
	UserID  string
	Email   string
	Name    string
	Picture string
}

// Guard resolves an inbound bearer token to an identity. Every
// state-accessing handler goes through a Guard before touching storage
// or the AI capability.
type Guard interface {
	Resolve(ctx context.Context, token string) (Identity, error)
}

// Store issues session rows. Only the sign-in flow writes sessions.
type Store interface {
	Create(ctx context.Context, session Session) error
}
