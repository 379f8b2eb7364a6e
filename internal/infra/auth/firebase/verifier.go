// Package firebase verifies Firebase Authentication ID tokens.
package firebase

import (
	"context"
	"log/slog"
	"strings"

	"figures/config"
	"figures/internal/domain/entity"
	"figures/internal/domain/service"
	"figures/internal/errors"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/auth"
)

// tokenVerifier is the subset of *auth.Client the verifier depends on.
type tokenVerifier interface {
	VerifyIDToken(ctx context.Context, idToken string) (*auth.Token, error)
	VerifyIDTokenAndCheckRevoked(ctx context.Context, idToken string) (*auth.Token, error)
}

// Verifier implements service.IdentityVerifier against Firebase Authentication.
type Verifier struct {
	client       tokenVerifier
	checkRevoked bool
	logger       *slog.Logger
}

// NewVerifier builds the verifier from the shared Firebase app.
func NewVerifier(ctx context.Context, app *firebase.App, cfg *config.Config, logger *slog.Logger) (service.IdentityVerifier, error) {
	client, err := app.Auth(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get auth client")
	}

	checkRevoked := cfg.Firebase != nil && cfg.Firebase.CheckRevoked

	return newVerifier(client, checkRevoked, logger), nil
}

func newVerifier(client tokenVerifier, checkRevoked bool, logger *slog.Logger) *Verifier {
	return &Verifier{
		client:       client,
		checkRevoked: checkRevoked,
		logger:       logger,
	}
}

// VerifyToken checks the token with Firebase on every call; nothing is cached.
func (v *Verifier) VerifyToken(ctx context.Context, idToken string) (*entity.Identity, error) {
	idToken = strings.TrimSpace(idToken)
	if idToken == "" {
		return nil, errors.Wrap(service.ErrInvalidToken, "empty token")
	}

	var (
		token *auth.Token
		err   error
	)
	if v.checkRevoked {
		token, err = v.client.VerifyIDTokenAndCheckRevoked(ctx, idToken)
	} else {
		token, err = v.client.VerifyIDToken(ctx, idToken)
	}
	if err != nil {
		v.logger.DebugContext(ctx, "Firebase rejected ID token", slog.Any("error", err))

		return nil, errors.Wrap(service.ErrInvalidToken, err.Error())
	}

	if token.UID == "" {
		return nil, errors.Wrap(service.ErrInvalidToken, "token has no subject")
	}

	return &entity.Identity{
		SubjectID:   token.UID,
		Email:       stringClaim(token.Claims, "email"),
		DisplayName: stringClaim(token.Claims, "name"),
	}, nil
}

func stringClaim(claims map[string]any, key string) string {
	if v, ok := claims[key].(string); ok {
		return v
	}

	return ""
}
