package users

import (
	"context"
	"database/sql"
	"errors"
)

// PGRepo stores users in Postgres.
type PGRepo struct {
	DB *sql.DB
}

func (r *PGRepo) Upsert(ctx context.Context, user User) (User, error) {
	const query = `
INSERT INTO "user" (id, name, email, email_verified, image, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7)
ON CONFLICT (email) DO UPDATE
SET name = EXCLUDED.name,
    email_verified = EXCLUDED.email_verified,
    image = EXCLUDED.image,
    updated_at = EXCLUDED.updated_at
RETURNING id, name, email, email_verified, image, created_at, updated_at`
	row := r.DB.QueryRowContext(
		ctx,
		query,
		user.ID,
		nullable(user.Name),
		user.Email,
		user.EmailVerified,
		nullable(user.Image),
		user.CreatedAt,
		user.UpdatedAt,
	)
	return scanUser(row)
}

func (r *PGRepo) GetByID(ctx context.Context, id string) (User, error) {
	const query = `
SELECT id, name, email, email_verified, image, created_at, updated_at
FROM "user"
WHERE id = $1`
	user, err := scanUser(r.DB.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return User{}, ErrNotFound
		}
		return User{}, err
	}
	return user, nil
}

func scanUser(row *sql.Row) (User, error) {
	var user User
	var name, image sql.NullString
	err := row.Scan(&user.ID, &name, &user.Email, &user.EmailVerified, &image, &user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		return User{}, err
	}
	user.Name = name.String
	user.Image = image.String
	return user, nil
}

func nullable(s string) sql.NullString {
	if s == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: s, Valid: true}
}

var _ Repo = (*PGRepo)(nil)
