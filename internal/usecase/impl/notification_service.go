package impl

import (
	"context"
	"log/slog"

	domainerrors "figures/internal/domain/errors"
	"figures/internal/domain/service"
	"figures/internal/usecase"
)

type notificationService struct {
	notificationSvc service.NotificationService
	logger          *slog.Logger
}

// NewNotificationService creates a new notification service instance
func NewNotificationService(
	notificationSvc service.NotificationService,
	logger *slog.Logger,
) usecase.NotificationUsecase {
	return &notificationService{
		notificationSvc: notificationSvc,
		logger:          logger,
	}
}

// SendNotification dispatches once; failures are reported, never retried.
func (s *notificationService) SendNotification(ctx context.Context, input *usecase.SendNotificationInput) (string, error) {
	if input == nil || input.Token == "" || input.Title == "" || input.Body == "" {
		return "", domainerrors.ErrValidationFailed.WithDetails("title, body and token are required")
	}

	messageID, err := s.notificationSvc.Send(ctx, input.Token, input.Title, input.Body)
	if err != nil {
		s.logger.Warn("Push dispatch failed", slog.String("error", err.Error()))

		return "", domainerrors.NewDispatchError(err)
	}

	s.logger.Info("Push dispatched", slog.String("message_id", messageID))

	return messageID, nil
}
