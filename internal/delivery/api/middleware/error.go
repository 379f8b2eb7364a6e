package middleware

import (
	"log/slog"
	"net/http"

	"figures/internal/delivery/api/response"
	deliverycontext "figures/internal/delivery/context"
	domainerrors "figures/internal/domain/errors"
	"figures/internal/errors"

	"github.com/labstack/echo/v4"
)

// ErrorMiddleware handles errors in the HTTP pipeline
type ErrorMiddleware struct {
	logger *slog.Logger
}

// NewErrorMiddleware creates a new error handling middleware
func NewErrorMiddleware(logger *slog.Logger) *ErrorMiddleware {
	return &ErrorMiddleware{
		logger: logger,
	}
}

// HandleHTTPError handles errors as Echo's HTTPErrorHandler.
// Errors that are not AppErrors render as ErrInternalError carrying the root cause message.
func (m *ErrorMiddleware) HandleHTTPError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	logger := deliverycontext.GetLoggerOrDefault(c.Request().Context(), m.logger)

	var (
		appErr  domainerrors.AppError
		httpErr *echo.HTTPError
	)
	switch {
	case errors.As(err, &appErr):
	case errors.As(err, &httpErr):
		message := http.StatusText(httpErr.Code)
		if msg, ok := httpErr.Message.(string); ok && msg != "" {
			message = msg
		}

		_ = response.Error(c, httpErr.Code, message)

		return
	default:
		appErr = domainerrors.ErrInternalError.WithMessage(errors.Cause(err).Error())
	}

	code := appErr.HTTPCode()
	message := appErr.Message()
	if code < http.StatusInternalServerError && appErr.Details() != "" {
		message += ": " + appErr.Details()
	}
	if code >= http.StatusInternalServerError {
		m.logUnhandled(logger, c, err)
	}

	_ = response.Error(c, code, message)
}

func (m *ErrorMiddleware) logUnhandled(logger *slog.Logger, c echo.Context, err error) {
	logger.Error("Unhandled error",
		slog.Any("error", err),
		slog.String("path", c.Request().URL.Path),
		slog.String("method", c.Request().Method),
	)
}
