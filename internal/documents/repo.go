package documents

import "context"

// ListLimit caps history reads; older records stay in storage but are not
// returned.
const ListLimit = 100

// Repo defines persistence operations for extraction records.
type Repo interface {
	Create(ctx context.Context, doc Document) error
	// ListByUser returns the user's documents newest-first, at most
	// ListLimit entries. No documents is an empty slice, not an error.
	ListByUser(ctx context.Context, userID string) ([]Document, error)
	// GetByIDForUser filters by id and owner in the same query so an
	// unowned id behaves exactly like a missing one.
	GetByIDForUser(ctx context.Context, userID, documentID string) (Document, error)
}
