package middleware

import (
	"log/slog"

	deliverycontext "figures/internal/delivery/context"

	"github.com/labstack/echo/v4"
)

// RequestIDMiddleware tags every catalog, favorites and notification request with an ID
// and derives the logger the use cases pick up from the request context.
type RequestIDMiddleware struct {
	logger *slog.Logger
}

// NewRequestIDMiddleware creates a new Request ID middleware
func NewRequestIDMiddleware(logger *slog.Logger) *RequestIDMiddleware {
	return &RequestIDMiddleware{
		logger: logger,
	}
}

// Process echoes a safe client X-Request-ID or mints a UUID, then scopes the logger to it.
func (m *RequestIDMiddleware) Process(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		req := c.Request()
		requestID := deliverycontext.SanitizeRequestID(req.Header.Get(deliverycontext.HeaderXRequestID))

		deliverycontext.SetRequestID(c, requestID)
		c.Response().Header().Set(deliverycontext.HeaderXRequestID, requestID)

		scoped := m.logger.With(
			slog.String("request_id", requestID),
			slog.String("method", req.Method),
		)

		ctx := deliverycontext.WithLogger(deliverycontext.WithRequestID(req.Context(), requestID), scoped)
		c.SetRequest(req.WithContext(ctx))

		return next(c)
	}
}
