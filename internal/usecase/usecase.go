package usecase

import (
	"context"
	"time"

	"chat-directory-service/internal/repository"
	"chat-directory-service/internal/usecase/domain"

	"go.uber.org/zap"
)

// InterfaceUsecase aggregates all usecase interfaces.
type InterfaceUsecase interface {
	UserUsecaseInterface
	SyncUsecaseInterface
}

// New constructs a new usecase layer with its dependencies.
func New(
	log *zap.SugaredLogger,
	ctx context.Context,
	repo repository.Repository,
	platform domain.Platform,
	tokens domain.TokenIssuer,
	timeout time.Duration,
) InterfaceUsecase {
	return domain.New(log, ctx, repo, platform, tokens, timeout)
}
