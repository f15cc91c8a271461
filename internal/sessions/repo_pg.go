package sessions

import (
	"context"
	"database/sql"
	"errors"
	"strings"
)

// PGRepo resolves and issues sessions against Postgres.
type PGRepo struct {
	DB *sql.DB
}

// Resolve looks up a live session and its user in a single query. Token and
// expiry are checked together so an expired or unknown token is
// indistinguishable from a missing one.
func (r *PGRepo) Resolve(ctx context.Context, token string) (Identity, error) {
	if strings.TrimSpace(token) == "" {
		return Identity{}, ErrNoSession
	}
	const query = `
SELECT u.id, u.email, u.name, u.image
FROM session s
JOIN "user" u ON u.id = s.user_id
WHERE s.token = $1 AND s.expires_at > NOW()
LIMIT 1`
	var ident Identity
	var name sql.NullString
	var image sql.NullString
	err := r.DB.QueryRowContext(ctx, query, token).Scan(&ident.UserID, &ident.Email, &name, &image)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Identity{}, ErrNoSession
		}
		return Identity{}, err
	}
	if name.Valid {
		ident.Name = name.String
	}
	if image.Valid {
		ident.Picture = image.String
	}
	return ident, nil
}

// Create inserts a session row.
func (r *PGRepo) Create(ctx context.Context, session Session) error {
	const query = `
INSERT INTO session (id, user_id, token, expires_at, ip_address, user_agent, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	var ip, ua sql.NullString
	if session.IPAddress != "" {
		ip = sql.NullString{String: session.IPAddress, Valid: true}
	}
	if session.UserAgent != "" {
		ua = sql.NullString{String: session.UserAgent, Valid: true}
	}
	_, err := r.DB.ExecContext(
		ctx,
		query,
		session.ID,
		session.UserID,
		session.Token,
		session.ExpiresAt,
		ip,
		ua,
		session.CreatedAt,
		session.UpdatedAt,
	)
	return err
}

var (
	_ Guard = (*PGRepo)(nil)
	_ Store = (*PGRepo)(nil)
)
