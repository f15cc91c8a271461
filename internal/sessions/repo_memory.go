package sessions

import (
	"context"
	"sync"
	"time"
)

// MemoryRepo is an in-memory Guard and Store for dev and tests.
type MemoryRepo struct {
	mu       sync.RWMutex
	byToken  map[string]Session
	identity map[string]Identity // userId -> identity
}

// NewMemoryRepo constructs a MemoryRepo.
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{
		byToken:  make(map[string]Session),
		identity: make(map[string]Identity),
	}
}

// Seed registers an identity and returns nothing; sessions referencing the
// user resolve to it.
func (r *MemoryRepo) Seed(ident Identity) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.identity[ident.UserID] = ident
}

// Create stores a session keyed by token.
func (r *MemoryRepo) Create(ctx context.Context, session Session) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.byToken[session.Token] = session
	return nil
}

// Resolve returns the identity for a live session token.
func (r *MemoryRepo) Resolve(ctx context.Context, token string) (Identity, error) {
	if err := ctx.Err(); err != nil {
		return Identity{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	session, ok := r.byToken[token]
	if !ok || time.Now().After(session.ExpiresAt) {
		return Identity{}, ErrNoSession
	}
	if ident, ok := r.identity[session.UserID]; ok {
		return ident, nil
	}
	return Identity{UserID: session.UserID}, nil
}

var (
	_ Guard = (*MemoryRepo)(nil)
	_ Store = (*MemoryRepo)(nil)
)
