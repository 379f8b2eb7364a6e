package errors

import (
	"net/http"
	"testing"

	"figures/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBaseError_CopiesStillMatchPreset(t *testing.T) {
	err := ErrUnauthenticated.WithMessage("No token provided")

	assert.True(t, errors.Is(err, ErrUnauthenticated))
	assert.False(t, errors.Is(err, ErrUserNotFound))
	assert.Equal(t, "No token provided", err.Message())
	assert.Equal(t, http.StatusUnauthorized, err.HTTPCode())
}

func TestBaseError_ErrorIncludesDetails(t *testing.T) {
	err := ErrValidationFailed.WithDetails("title is required")

	assert.Equal(t, "Invalid request: title is required", err.Error())
	assert.Equal(t, "Invalid request", err.Message())
}

func TestDatabaseExecuteError_SurfacesRawMessage(t *testing.T) {
	cause := errors.New("connection refused")
	err := NewDatabaseExecuteError(cause, "find profiles")

	var appErr AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, http.StatusInternalServerError, appErr.HTTPCode())
	assert.Equal(t, "connection refused", appErr.Message())
	assert.True(t, errors.Is(err, cause))
}

func TestDispatchError_CarriesUpstream(t *testing.T) {
	cause := errors.New("registration-token-not-registered")
	err := NewDispatchError(errors.Wrap(cause, "send"))

	assert.Equal(t, "DISPATCH_FAILED", err.ErrorCode())
	assert.Contains(t, err.Message(), "registration-token-not-registered")
	assert.True(t, errors.Is(err, cause))
}

func TestErrInternalError_WithMessageKeepsStatus(t *testing.T) {
	err := ErrInternalError.WithMessage("connection reset by peer")

	assert.True(t, errors.Is(err, ErrInternalError))
	assert.Equal(t, http.StatusInternalServerError, err.HTTPCode())
	assert.Equal(t, "INTERNAL_ERROR", err.ErrorCode())
	assert.Equal(t, "connection reset by peer", err.Error())
}
