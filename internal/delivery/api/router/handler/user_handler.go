package handler

import (
	"log/slog"

	"figures/internal/delivery/api/middleware"
	"figures/internal/delivery/api/response"
	domainerrors "figures/internal/domain/errors"
	"figures/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// UserHandlerParams holds dependencies for UserHandler, injected by Fx.
type UserHandlerParams struct {
	fx.In

	UserUC usecase.UserUsecase
	Logger *slog.Logger
}

// UserHandler serves the caller's account and favorites. The subject always
// comes from the verified identity, never from the request.
type UserHandler struct {
	userUC usecase.UserUsecase
	logger *slog.Logger
}

// NewUserHandler is the constructor for UserHandler
func NewUserHandler(params UserHandlerParams) *UserHandler {
	return &UserHandler{
		userUC: params.UserUC,
		logger: params.Logger,
	}
}

// FindOrCreateUser handles POST /users.
func (h *UserHandler) FindOrCreateUser(c echo.Context) error {
	identity, ok := middleware.GetIdentity(c)
	if !ok {
		return domainerrors.ErrUnauthenticated
	}

	user, err := h.userUC.FindOrCreateUser(c.Request().Context(), identity)
	if err != nil {
		return err
	}

	return response.OK(c, user)
}

// AddFavorite handles POST /users/favorites/:profileId.
func (h *UserHandler) AddFavorite(c echo.Context) error {
	identity, ok := middleware.GetIdentity(c)
	if !ok {
		return domainerrors.ErrUnauthenticated
	}

	if err := h.userUC.AddFavorite(c.Request().Context(), identity, c.Param("profileId")); err != nil {
		return err
	}

	return response.Message(c, "Added to favorites")
}

// RemoveFavorite handles DELETE /users/favorites/:profileId.
func (h *UserHandler) RemoveFavorite(c echo.Context) error {
	identity, ok := middleware.GetIdentity(c)
	if !ok {
		return domainerrors.ErrUnauthenticated
	}

	if err := h.userUC.RemoveFavorite(c.Request().Context(), identity, c.Param("profileId")); err != nil {
		return err
	}

	return response.Message(c, "Removed from favorites")
}

// ListFavorites handles GET /users/favorites.
func (h *UserHandler) ListFavorites(c echo.Context) error {
	identity, ok := middleware.GetIdentity(c)
	if !ok {
		return domainerrors.ErrUnauthenticated
	}

	profiles, err := h.userUC.ListFavorites(c.Request().Context(), identity)
	if err != nil {
		return err
	}

	return response.OK(c, profiles)
}
