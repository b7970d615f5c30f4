// Package domain contains application Usecases orchestrating directory logic by search.
package domain

import (
	"context"
	"strings"

	"chat-directory-service/internal/entities"
)

// searchLimit caps search results; the chat-creation UI never pages.
const searchLimit = 20

// SearchUsers returns directory entries whose name or email contains the
// term. A blank term fails closed to an empty result, never "match all".
func (u *Usecase) SearchUsers(ctx context.Context, term string) ([]entities.User, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	normalized := strings.ToLower(strings.TrimSpace(term))
	if normalized == "" {
		return []entities.User{}, nil
	}

	return u.repo.SearchUsers(ctx, normalized, searchLimit)
}
