// Package middleware holds the echo middleware specific to the API server.
package middleware

import (
	"log/slog"
	"strings"

	"figures/internal/delivery/api/response"
	deliverycontext "figures/internal/delivery/context"
	"figures/internal/domain/entity"
	"figures/internal/domain/service"

	"github.com/labstack/echo/v4"
)

const bearerPrefix = "Bearer "

// AuthMiddleware verifies the bearer ID token on protected routes.
type AuthMiddleware struct {
	verifier service.IdentityVerifier
	logger   *slog.Logger
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(verifier service.IdentityVerifier, logger *slog.Logger) *AuthMiddleware {
	return &AuthMiddleware{verifier: verifier, logger: logger}
}

// Authenticate rejects the request with 401 unless the Authorization header
// carries a token the identity provider accepts. Nothing downstream runs on failure.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
		if authHeader == "" {
			return response.Unauthorized(c, "No token provided")
		}

		if len(authHeader) <= len(bearerPrefix) || !strings.EqualFold(authHeader[:len(bearerPrefix)], bearerPrefix) {
			return response.Unauthorized(c, "Invalid token format")
		}

		token := strings.TrimSpace(authHeader[len(bearerPrefix):])
		if token == "" {
			return response.Unauthorized(c, "Invalid token format")
		}

		ctx := c.Request().Context()
		identity, err := m.verifier.VerifyToken(ctx, token)
		if err != nil {
			deliverycontext.GetLoggerOrDefault(ctx, m.logger).Debug("Token rejected", slog.Any("error", err))

			return response.Unauthorized(c, "Invalid token")
		}

		deliverycontext.SetIdentity(c, identity)

		return next(c)
	}
}

// GetIdentity returns the caller verified by Authenticate.
func GetIdentity(c echo.Context) (*entity.Identity, bool) {
	return deliverycontext.GetIdentity(c)
}
