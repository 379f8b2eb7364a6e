package handler

import (
	"log/slog"

	"figures/internal/delivery/api/response"
	"figures/internal/domain/entity"
	"figures/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// ProfileHandlerParams holds dependencies for ProfileHandler, injected by Fx.
type ProfileHandlerParams struct {
	fx.In

	ProfileUC usecase.ProfileUsecase
	Logger    *slog.Logger
}

// ProfileHandler serves the public catalog.
type ProfileHandler struct {
	profileUC usecase.ProfileUsecase
	logger    *slog.Logger
}

// NewProfileHandler is the constructor for ProfileHandler
func NewProfileHandler(params ProfileHandlerParams) *ProfileHandler {
	return &ProfileHandler{
		profileUC: params.ProfileUC,
		logger:    params.Logger,
	}
}

// ListProfilesQuery is the optional filter of GET /profiles.
type ListProfilesQuery struct {
	Category  string `query:"category"`
	FameLevel string `query:"fameLevel"`
}

// ListProfiles handles GET /profiles.
func (h *ProfileHandler) ListProfiles(c echo.Context) error {
	var q ListProfilesQuery
	if err := c.Bind(&q); err != nil {
		return err
	}

	profiles, err := h.profileUC.ListProfiles(c.Request().Context(), entity.ProfileFilter{
		Category:  q.Category,
		FameLevel: entity.FameLevel(q.FameLevel),
	})
	if err != nil {
		return err
	}

	return response.OK(c, profiles)
}

// GetProfile handles GET /profiles/:id.
func (h *ProfileHandler) GetProfile(c echo.Context) error {
	profile, err := h.profileUC.GetProfile(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}

	return response.OK(c, profile)
}
