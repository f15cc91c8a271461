package documents

import (
	"context"
	"database/sql"
	"errors"
)

// PGRepo implements Repo using Postgres.
type PGRepo struct {
	DB *sql.DB
}

// Create inserts a new extraction record.
func (r *PGRepo) Create(ctx context.Context, doc Document) error {
	const query = `
INSERT INTO documents (id, user_id, file_name, file_size, extracted_data, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.DB.ExecContext(
		ctx,
		query,
		doc.ID,
		doc.UserID,
		doc.FileName,
		doc.FileSize,
		[]byte(doc.ExtractedData),
		doc.CreatedAt,
		doc.UpdatedAt,
	)
	return err
}

// ListByUser lists a user's documents newest-first, capped at ListLimit.
func (r *PGRepo) ListByUser(ctx context.Context, userID string) ([]Document, error) {
	const query = `
SELECT id, user_id, file_name, file_size, extracted_data, created_at, updated_at
FROM documents
WHERE user_id = $1
ORDER BY created_at DESC
LIMIT $2`

	rows, err := r.DB.QueryContext(ctx, query, userID, ListLimit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []Document{}
	for rows.Next() {
		var doc Document
		var data []byte
		if err := rows.Scan(
			&doc.ID,
			&doc.UserID,
			&doc.FileName,
			&doc.FileSize,
			&data,
			&doc.CreatedAt,
			&doc.UpdatedAt,
		); err != nil {
			return nil, err
		}
		doc.ExtractedData = data
		out = append(out, doc)
	}
	return out, rows.Err()
}

// GetByIDForUser fetches one record scoped to its owner in a single query.
func (r *PGRepo) GetByIDForUser(ctx context.Context, userID, documentID string) (Document, error) {
	const query = `
SELECT id, user_id, file_name, file_size, extracted_data, created_at, updated_at
FROM documents
WHERE id = $1 AND user_id = $2
LIMIT 1`
	var doc Document
	var data []byte
	err := r.DB.QueryRowContext(ctx, query, documentID, userID).Scan(
		&doc.ID,
		&doc.UserID,
		&doc.FileName,
		&doc.FileSize,
		&data,
		&doc.CreatedAt,
		&doc.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Document{}, ErrNotFound
		}
		return Document{}, err
	}
	doc.ExtractedData = data
	return doc, nil
}

var _ Repo = (*PGRepo)(nil)
