package usecase

import (
	"context"
)

// SendNotificationInput is a single push message addressed to one device token.
type SendNotificationInput struct {
	Title string `json:"title" validate:"required"`
	Body  string `json:"body" validate:"required"`
	Token string `json:"token" validate:"required"`
}

// NotificationUsecase defines the interface for push notification use cases
type NotificationUsecase interface {
	// SendNotification forwards the message to the push service and returns its message ID.
	SendNotification(ctx context.Context, input *SendNotificationInput) (string, error)
}
