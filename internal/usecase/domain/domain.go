// Package domain contains application Usecases orchestrating directory logic.
package domain

import (
	"context"
	"sync"
	"time"

	"chat-directory-service/internal/entities"
	"chat-directory-service/internal/repository"
	"chat-directory-service/internal/stream"

	"go.uber.org/zap"
)

// Platform opens Communications Platform sessions.
type Platform interface {
	OpenSession(ctx context.Context, profile stream.Profile, tokens stream.TokenProvider) (stream.Session, error)
}

// TokenIssuer mints short-lived platform credentials for an identity.
type TokenIssuer interface {
	Issue(externalID string) (string, error)
}

// Usecase struct implements all usecase interfaces.
type Usecase struct {
	ctx      context.Context
	log      *zap.SugaredLogger
	repo     repository.Repository
	platform Platform
	tokens   TokenIssuer
	timeout  time.Duration

	// session handle for the active identity; gen tags in-flight syncs so a
	// stale completion can never install a session for a replaced identity
	mu       sync.Mutex
	gen      uint64
	activeID string
	session  stream.Session
	state    entities.SessionState
}

// New constructs a new usecase layer with its dependencies.
func New(
	log *zap.SugaredLogger,
	ctx context.Context,
	repo repository.Repository,
	platform Platform,
	tokens TokenIssuer,
	timeout time.Duration,
) *Usecase {
	return &Usecase{
		ctx:      ctx,
		log:      log,
		repo:     repo,
		platform: platform,
		tokens:   tokens,
		timeout:  timeout,
		state:    entities.SessionAbsent,
	}
}

func withTimeout(ctx context.Context, d time.Duration) (context.Context, context.CancelFunc) {
	if d <= 0 {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, d)
}
