package documents

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"testing"
	"time"
)

func TestMemoryRepoListNewestFirstCapped(t *testing.T) {
	repo := NewMemoryRepo()
	base := time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC)

	for i := 0; i < ListLimit+5; i++ {
		doc := Document{
			ID:            fmt.Sprintf("doc-%d", i),
			UserID:        "user-1",
			FileName:      fmt.Sprintf("file-%d.pdf", i),
			FileSize:      int64(i),
			ExtractedData: json.RawMessage(`{}`),
			CreatedAt:     base.Add(time.Duration(i) * time.Minute),
			UpdatedAt:     base.Add(time.Duration(i) * time.Minute),
		}
		if err := repo.Create(context.Background(), doc); err != nil {
			t.Fatalf("Create: %v", err)
		}
	}

	docs, err := repo.ListByUser(context.Background(), "user-1")
	if err != nil {
		t.Fatalf("ListByUser: %v", err)
	}
	if len(docs) != ListLimit {
		t.Fatalf("expected %d documents, got %d", ListLimit, len(docs))
	}
	if docs[0].ID != fmt.Sprintf("doc-%d", ListLimit+4) {
		t.Fatalf("expected newest document first, got %s", docs[0].ID)
	}
	for i := 1; i < len(docs); i++ {
		if docs[i].CreatedAt.After(docs[i-1].CreatedAt) {
			t.Fatalf("documents out of order at index %d", i)
		}
	}
}

func TestMemoryRepoGetScopesOwner(t *testing.T) {
	repo := NewMemoryRepo()
	doc := Document{
		ID:            "doc-1",
		UserID:        "user-1",
		FileName:      "resume.pdf",
		ExtractedData: json.RawMessage(`{}`),
		CreatedAt:     time.Now().UTC(),
	}
	if err := repo.Create(context.Background(), doc); err != nil {
		t.Fatalf("Create: %v", err)
	}

	if _, err := repo.GetByIDForUser(context.Background(), "user-1", "doc-1"); err != nil {
		t.Fatalf("owner fetch failed: %v", err)
	}

	_, err := repo.GetByIDForUser(context.Background(), "user-2", "doc-1")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for another user's record, got %v", err)
	}
	_, err = repo.GetByIDForUser(context.Background(), "user-1", "missing")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for a missing record, got %v", err)
	}
}
