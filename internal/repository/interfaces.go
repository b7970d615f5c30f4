// Package repository contains repository interfaces for persistence layers.
package repository

import (
	"context"

	"chat-directory-service/internal/entities"
)

// LifecycleInterface describes storage startup/shutdown hooks.
type LifecycleInterface interface {
	OnStart(_ context.Context) error
	OnStop(_ context.Context) error
}

// UserInterface exposes directory operations.
type UserInterface interface {
	UpsertUser(ctx context.Context, user entities.User) (*entities.User, error)
	GetUserByExternalID(ctx context.Context, externalID string) (*entities.User, error)
	GetUserByEmail(ctx context.Context, email string) (*entities.User, error)
	SearchUsers(ctx context.Context, term string, limit int) ([]entities.User, error)
}
