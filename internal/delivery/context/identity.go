package context

import (
	"figures/internal/domain/entity"

	"github.com/labstack/echo/v4"
)

// KeyIdentity is the echo.Context key holding the verified caller.
const KeyIdentity ContextKey = "identity"

// SetIdentity stores the verified caller for downstream handlers.
func SetIdentity(c echo.Context, identity *entity.Identity) {
	c.Set(string(KeyIdentity), identity)
}

// GetIdentity returns the verified caller, if the auth middleware ran.
func GetIdentity(c echo.Context) (*entity.Identity, bool) {
	identity, ok := c.Get(string(KeyIdentity)).(*entity.Identity)
	if !ok || identity == nil || identity.SubjectID == "" {
		return nil, false
	}

	return identity, true
}
