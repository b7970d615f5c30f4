package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"chat-directory-service/internal/entities"

	"github.com/jackc/pgx/v5"
)

const (
	upsertUserQuery = `
INSERT INTO users(external_id, email, name, avatar_url)
VALUES ($1, $2, $3, $4)
ON CONFLICT (external_id) DO UPDATE SET name = EXCLUDED.name, avatar_url = EXCLUDED.avatar_url
RETURNING id, external_id, email, name, avatar_url
`
	selectUserByExternalIDQuery = `
SELECT id, external_id, email, name, avatar_url
FROM users
WHERE external_id = $1
`
	selectUserByEmailQuery = `
SELECT id, external_id, email, name, avatar_url
FROM users
WHERE email = $1
ORDER BY id
LIMIT 1
`
	searchUsersQuery = `
SELECT id, external_id, email, name, avatar_url
FROM users
WHERE name ILIKE '%' || $1 || '%' OR email ILIKE '%' || $1 || '%'
ORDER BY id
LIMIT $2
`
)

// UpsertUser inserts a user keyed by external id, or updates name and avatar
// in place when the id already exists. Email is kept as first seen.
func (p *Postgres) UpsertUser(ctx context.Context, user entities.User) (*entities.User, error) {
	var u entities.User
	err := p.db.QueryRow(ctx, upsertUserQuery, user.ExternalID, user.Email, user.Name, user.AvatarURL).
		Scan(&u.ID, &u.ExternalID, &u.Email, &u.Name, &u.AvatarURL)
	if err != nil {
		p.log.Errorw("failed to upsert user", "error", err, "external_id", user.ExternalID)
		return nil, fmt.Errorf("upsert user: %w", err)
	}

	p.log.Infow("user upserted", "external_id", u.ExternalID)
	return &u, nil
}

// GetUserByExternalID returns the user for the identity-provider id.
func (p *Postgres) GetUserByExternalID(ctx context.Context, externalID string) (*entities.User, error) {
	var u entities.User
	err := p.db.QueryRow(ctx, selectUserByExternalIDQuery, externalID).
		Scan(&u.ID, &u.ExternalID, &u.Email, &u.Name, &u.AvatarURL)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, entities.ErrUserNotFound
		}
		return nil, fmt.Errorf("get user by external id: %w", err)
	}
	return &u, nil
}

// GetUserByEmail returns the oldest user with the given email. Emails are not
// unique, so the first record in insertion order wins.
func (p *Postgres) GetUserByEmail(ctx context.Context, email string) (*entities.User, error) {
	var u entities.User
	err := p.db.QueryRow(ctx, selectUserByEmailQuery, email).
		Scan(&u.ID, &u.ExternalID, &u.Email, &u.Name, &u.AvatarURL)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, entities.ErrUserNotFound
		}
		return nil, fmt.Errorf("get user by email: %w", err)
	}
	return &u, nil
}

// SearchUsers returns users whose name or email contains the term, in
// insertion order, truncated to limit. Matching is case-insensitive.
func (p *Postgres) SearchUsers(ctx context.Context, term string, limit int) ([]entities.User, error) {
	rows, err := p.db.Query(ctx, searchUsersQuery, escapeLike(term), limit)
	if err != nil {
		return nil, fmt.Errorf("search users: %w", err)
	}
	defer rows.Close()

	users := make([]entities.User, 0)
	for rows.Next() {
		var u entities.User
		if err := rows.Scan(&u.ID, &u.ExternalID, &u.Email, &u.Name, &u.AvatarURL); err != nil {
			p.log.Errorw("failed to scan search result", "error", err, "term", term)
			return nil, fmt.Errorf("scan search result: %w", err)
		}
		users = append(users, u)
	}

	if err := rows.Err(); err != nil {
		p.log.Errorw("failed to iterate search results", "error", err, "term", term)
		return nil, fmt.Errorf("iterate search results: %w", err)
	}

	return users, nil
}

// escapeLike makes LIKE metacharacters in the term match literally.
func escapeLike(term string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return r.Replace(term)
}
