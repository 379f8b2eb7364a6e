package service

import (
	"context"

	"figures/internal/domain/entity"
	"figures/internal/errors"
)

// ErrInvalidToken is returned for any token the identity provider does not vouch for.
var ErrInvalidToken = errors.New("invalid identity token")

// IdentityVerifier validates bearer tokens issued by the external identity provider.
// Implementations must not cache results: every call re-verifies.
type IdentityVerifier interface {
	// VerifyToken returns the verified subject, or an error wrapping ErrInvalidToken.
	VerifyToken(ctx context.Context, token string) (*entity.Identity, error)
}
