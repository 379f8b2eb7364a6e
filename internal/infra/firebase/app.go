// Package firebase owns the single Firebase app shared by the identity
// verifier, the push dispatcher and the optional Firestore store.
package firebase

import (
	"context"
	"log/slog"

	"figures/config"
	"figures/internal/errors"

	firebase "firebase.google.com/go/v4"
	"go.uber.org/fx"
	"google.golang.org/api/option"
)

// Params holds dependencies for the Firebase app, injected by Fx
type Params struct {
	fx.In

	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewApp initializes the Firebase app once at startup.
// Without a credentials path it falls back to Application Default Credentials.
func NewApp(params Params) (*firebase.App, error) {
	var (
		appConfig *firebase.Config
		opts      []option.ClientOption
	)

	if cfg := params.Config.Firebase; cfg != nil {
		if cfg.ProjectID != "" {
			appConfig = &firebase.Config{ProjectID: cfg.ProjectID}
		}
		if cfg.CredentialsPath != "" {
			opts = append(opts, option.WithCredentialsFile(cfg.CredentialsPath))
		}
	}

	app, err := firebase.NewApp(params.Ctx, appConfig, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to initialize Firebase app")
	}

	params.Logger.Info("Firebase app initialized",
		slog.Bool("explicit_credentials", len(opts) > 0),
	)

	return app, nil
}
