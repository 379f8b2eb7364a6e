package notification

import (
	"context"
	"log/slog"

	"figures/internal/domain/service"
	"figures/internal/errors"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
)

// messageSender is the subset of *messaging.Client used for dispatch.
type messageSender interface {
	Send(ctx context.Context, message *messaging.Message) (string, error)
}

type firebaseService struct {
	client messageSender
	logger *slog.Logger
}

// NewFirebaseService creates the FCM-backed notification service from the shared app
func NewFirebaseService(ctx context.Context, app *firebase.App, logger *slog.Logger) (service.NotificationService, error) {
	client, err := app.Messaging(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get messaging client")
	}

	return &firebaseService{
		client: client,
		logger: logger,
	}, nil
}

// Send pushes a single notification. The call is synchronous and never retried.
func (s *firebaseService) Send(ctx context.Context, token, title, body string) (string, error) {
	message := &messaging.Message{
		Token: token,
		Notification: &messaging.Notification{
			Title: title,
			Body:  body,
		},
	}

	messageID, err := s.client.Send(ctx, message)
	if err != nil {
		s.logger.WarnContext(ctx, "FCM send failed",
			slog.Any("error", err),
			slog.Bool("unregistered", messaging.IsUnregistered(err)),
		)

		return "", errors.Wrap(err, "failed to send notification")
	}

	s.logger.DebugContext(ctx, "FCM message sent", slog.String("message_id", messageID))

	return messageID, nil
}
