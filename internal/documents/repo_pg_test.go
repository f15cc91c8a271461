package documents

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestPGRepoCreate(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	repo := &PGRepo{DB: db}
	now := time.Now().UTC()
	doc := Document{
		ID:            "doc-1",
		UserID:        "user-1",
		FileName:      "resume.pdf",
		FileSize:      2048,
		ExtractedData: json.RawMessage(`{"name":"Jane"}`),
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	mock.ExpectExec("INSERT INTO documents").
		WithArgs(
			doc.ID,
			doc.UserID,
			doc.FileName,
			doc.FileSize,
			[]byte(doc.ExtractedData),
			doc.CreatedAt,
			doc.UpdatedAt,
		).
		WillReturnResult(sqlmock.NewResult(1, 1))

	if err := repo.Create(context.Background(), doc); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("ExpectationsWereMet: %v", err)
	}
}

func TestPGRepoListByUserAppliesLimitAndOrder(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	repo := &PGRepo{DB: db}
	now := time.Now().UTC()
	rows := sqlmock.NewRows([]string{"id", "user_id", "file_name", "file_size", "extracted_data", "created_at", "updated_at"}).
		AddRow("doc-2", "user-1", "b.pdf", int64(2), []byte(`{}`), now, now).
		AddRow("doc-1", "user-1", "a.pdf", int64(1), []byte(`{}`), now.Add(-time.Hour), now.Add(-time.Hour))

	mock.ExpectQuery("SELECT id, user_id, file_name, file_size, extracted_data, created_at, updated_at FROM documents WHERE user_id = (.+) ORDER BY created_at DESC LIMIT (.+)").
		WithArgs("user-1", ListLimit).
		WillReturnRows(rows)

	docs, err := repo.ListByUser(context.Background(), "user-1")
	if err != nil {
		t.Fatalf("ListByUser: %v", err)
	}
	if len(docs) != 2 {
		t.Fatalf("expected 2 documents, got %d", len(docs))
	}
	if docs[0].ID != "doc-2" || docs[1].ID != "doc-1" {
		t.Fatalf("unexpected order: %s, %s", docs[0].ID, docs[1].ID)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("ExpectationsWereMet: %v", err)
	}
}

func TestPGRepoListByUserEmptyReturnsEmptySlice(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	repo := &PGRepo{DB: db}
	mock.ExpectQuery("SELECT (.+) FROM documents").
		WithArgs("user-1", ListLimit).
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "file_name", "file_size", "extracted_data", "created_at", "updated_at"}))

	docs, err := repo.ListByUser(context.Background(), "user-1")
	if err != nil {
		t.Fatalf("ListByUser: %v", err)
	}
	if docs == nil {
		t.Fatalf("expected empty slice, got nil")
	}
	if len(docs) != 0 {
		t.Fatalf("expected no documents, got %d", len(docs))
	}
}

func TestPGRepoGetByIDForUserScopesOwner(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	repo := &PGRepo{DB: db}
	mock.ExpectQuery("SELECT (.+) FROM documents WHERE id = (.+) AND user_id = (.+)").
		WithArgs("doc-1", "other-user").
		WillReturnError(sql.ErrNoRows)

	_, err = repo.GetByIDForUser(context.Background(), "other-user", "doc-1")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for a record the caller does not own, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("ExpectationsWereMet: %v", err)
	}
}
