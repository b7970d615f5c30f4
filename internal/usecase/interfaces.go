package usecase

import (
	"context"

	"chat-directory-service/internal/entities"
)

// UserUsecaseInterface abstracts directory lookups for the delivery layer.
type UserUsecaseInterface interface {
	GetUser(ctx context.Context, externalID string) (*entities.User, error)
	GetUserByEmail(ctx context.Context, email string) (*entities.User, error)
	SearchUsers(ctx context.Context, term string) ([]entities.User, error)
}

// SyncUsecaseInterface abstracts identity synchronization and session lifecycle.
type SyncUsecaseInterface interface {
	SyncUser(ctx context.Context, identity entities.Identity) (*entities.User, error)
	Disconnect(ctx context.Context) error
	SessionState() entities.SessionState
}
