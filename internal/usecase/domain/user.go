// Package domain contains application Usecases orchestrating directory logic by user.
package domain

import (
	"context"
	"fmt"

	"chat-directory-service/internal/entities"
)

// GetUser returns the directory entry for an identity-provider id.
func (u *Usecase) GetUser(ctx context.Context, externalID string) (*entities.User, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if externalID == "" {
		return nil, fmt.Errorf("%w: external_id is required", entities.ErrInvalidArgument)
	}

	return u.repo.GetUserByExternalID(ctx, externalID)
}

// GetUserByEmail returns the oldest directory entry with the given email.
func (u *Usecase) GetUserByEmail(ctx context.Context, email string) (*entities.User, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if email == "" {
		return nil, fmt.Errorf("%w: email is required", entities.ErrInvalidArgument)
	}

	return u.repo.GetUserByEmail(ctx, email)
}
