package validator

import (
	"testing"

	domainerrors "figures/internal/domain/errors"
	"figures/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	Title string `json:"title" validate:"required"`
	Token string `json:"token,omitempty" validate:"required"`
}

func TestValidator_Validate(t *testing.T) {
	v := New()

	require.NoError(t, v.Validate(&sample{Title: "t", Token: "x"}))

	err := v.Validate(&sample{})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))

	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "title is required, token is required", appErr.Details())
}
