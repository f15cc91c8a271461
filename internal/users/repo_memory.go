package users

import (
	"context"
	"sync"
)

// MemoryRepo is an in-memory Repo for local development and tests.
type MemoryRepo struct {
	mu      sync.RWMutex
	byID    map[string]User
	byEmail map[string]string
}

// NewMemoryRepo constructs an empty MemoryRepo.
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{
		byID:    make(map[string]User),
		byEmail: make(map[string]string),
	}
}

func (r *MemoryRepo) Upsert(_ context.Context, user User) (User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if existingID, ok := r.byEmail[user.Email]; ok {
		existing := r.byID[existingID]
		existing.Name = user.Name
		existing.EmailVerified = user.EmailVerified
		existing.Image = user.Image
		existing.UpdatedAt = user.UpdatedAt
		r.byID[existingID] = existing
		return existing, nil
	}
	r.byID[user.ID] = user
	r.byEmail[user.Email] = user.ID
	return user, nil
}

func (r *MemoryRepo) GetByID(_ context.Context, id string) (User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	user, ok := r.byID[id]
	if !ok {
		return User{}, ErrNotFound
	}
	return user, nil
}

var _ Repo = (*MemoryRepo)(nil)
