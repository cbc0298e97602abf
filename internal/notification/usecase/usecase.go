package usecase

import (
	"context"

	"github.com/google/uuid"

	"github.com/salamtec/inventory-service/internal/model"
	"github.com/salamtec/inventory-service/internal/notification"
	"github.com/salamtec/inventory-service/pkg/logger"
)

type notificationUseCase struct {
	repo   notification.Repository
	logger logger.ZapLogger
}

func NewNotificationUseCase(repo notification.Repository, log logger.ZapLogger) notification.UseCase {
	return &notificationUseCase{
		repo:   repo,
		logger: log,
	}
}

func (uc *notificationUseCase) Push(ctx context.Context, message string) error {
	return uc.repo.Append(ctx, model.Notification{
		ID:        uuid.New().String(),
		Message:   message,
		Timestamp: model.Now(),
	})
}

func (uc *notificationUseCase) ListAll(ctx context.Context) ([]model.Notification, int, error) {
	stored, err := uc.repo.LoadAll(ctx)
	if err != nil {
		return nil, 0, err
	}
	// Stored order is append order; callers read newest first.
	out := make([]model.Notification, 0, len(stored))
	for i := len(stored) - 1; i >= 0; i-- {
		out = append(out, stored[i])
	}
	return out, len(out), nil
}

func (uc *notificationUseCase) ClearAll(ctx context.Context) error {
	return uc.repo.Clear(ctx)
}
