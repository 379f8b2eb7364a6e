package service

import (
	"context"
)

// NotificationService defines the interface for push notification services
type NotificationService interface {
	// Send delivers one notification to a device token and returns the provider's message ID.
	// It does not retry.
	Send(ctx context.Context, token, title, body string) (messageID string, err error)
}
