package users

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestMemoryRepoUpsertKeepsCanonicalID(t *testing.T) {
	repo := NewMemoryRepo()
	now := time.Now().UTC()

	first, err := repo.Upsert(context.Background(), User{
		ID:        "user-1",
		Name:      "Jane",
		Email:     "jane@example.com",
		CreatedAt: now,
		UpdatedAt: now,
	})
	if err != nil {
		t.Fatalf("Upsert: %v", err)
	}
	if first.ID != "user-1" {
		t.Fatalf("unexpected id: %s", first.ID)
	}

	// A second sign-in with the same email must not mint a new user.
	second, err := repo.Upsert(context.Background(), User{
		ID:        "user-2",
		Name:      "Jane Doe",
		Email:     "jane@example.com",
		Image:     "https://example.com/pic.png",
		CreatedAt: now.Add(time.Hour),
		UpdatedAt: now.Add(time.Hour),
	})
	if err != nil {
		t.Fatalf("Upsert: %v", err)
	}
	if second.ID != "user-1" {
		t.Fatalf("expected canonical id user-1, got %s", second.ID)
	}
	if second.Name != "Jane Doe" || second.Image == "" {
		t.Fatalf("expected refreshed profile fields: %+v", second)
	}

	stored, err := repo.GetByID(context.Background(), "user-1")
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if stored.Name != "Jane Doe" {
		t.Fatalf("expected stored name refreshed, got %q", stored.Name)
	}
}

func TestMemoryRepoGetByIDMissing(t *testing.T) {
	repo := NewMemoryRepo()
	_, err := repo.GetByID(context.Background(), "absent")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
