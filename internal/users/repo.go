package users

import "context"

// Repo abstracts user persistence.
type Repo interface {
	// Upsert inserts the user or, when the email already exists, refreshes
	// name, image and verification state. The stored row is returned so the
	// caller sees the canonical user ID.
	Upsert(ctx context.Context, user User) (User, error)
	GetByID(ctx context.Context, id string) (User, error)
}
