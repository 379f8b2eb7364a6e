package handler

import (
	"net/http"

	"figures/internal/delivery/api/response"

	"github.com/labstack/echo/v4"
)

// Root answers the liveness probe on "/".
func Root(c echo.Context) error {
	return response.Message(c, "Figures API is running")
}

// HealthCheck reports that the process is serving requests.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"})
}
