package handler

import (
	"log/slog"

	"figures/internal/delivery/api/middleware"
	"figures/internal/delivery/api/response"
	deliverycontext "figures/internal/delivery/context"
	domainerrors "figures/internal/domain/errors"
	"figures/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// NotificationHandlerParams holds dependencies for NotificationHandler, injected by Fx.
type NotificationHandlerParams struct {
	fx.In

	NotificationUC usecase.NotificationUsecase
	Logger         *slog.Logger
}

// NotificationHandler forwards push messages for authenticated callers.
type NotificationHandler struct {
	notificationUC usecase.NotificationUsecase
	logger         *slog.Logger
}

// NewNotificationHandler is the constructor for NotificationHandler
func NewNotificationHandler(params NotificationHandlerParams) *NotificationHandler {
	return &NotificationHandler{
		notificationUC: params.NotificationUC,
		logger:         params.Logger,
	}
}

// SendNotificationResponse acknowledges a dispatched message.
type SendNotificationResponse struct {
	Message   string `json:"message"`
	MessageID string `json:"messageId"`
}

// SendNotification handles POST /notifications/send.
func (h *NotificationHandler) SendNotification(c echo.Context) error {
	identity, ok := middleware.GetIdentity(c)
	if !ok {
		return domainerrors.ErrUnauthenticated
	}

	var req usecase.SendNotificationInput
	if err := c.Bind(&req); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails("malformed JSON body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	messageID, err := h.notificationUC.SendNotification(c.Request().Context(), &req)
	if err != nil {
		return err
	}

	deliverycontext.GetLoggerOrDefault(c.Request().Context(), h.logger).Info("Notification sent",
		slog.String("subject_id", identity.SubjectID),
		slog.String("message_id", messageID),
	)

	return response.OK(c, SendNotificationResponse{
		Message:   "Notification sent",
		MessageID: messageID,
	})
}
