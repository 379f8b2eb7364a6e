package main

import (
	"context"
	"flag"
	"log/slog"
	"os"

	"figures/config"
	"figures/internal/domain/entity"
	"figures/internal/domain/repository"
	"figures/internal/infra/firebase"
	logs "figures/internal/infra/log"
	"figures/internal/infra/persistence"

	"go.uber.org/fx"
)

type seedParams struct {
	fx.In
	fx.Lifecycle
	fx.Shutdowner

	Ctx      context.Context
	Profiles repository.ProfileRepository
	Logger   *slog.Logger
}

func main() {
	path := flag.String("file", "config/profiles.yaml", "YAML file with a top-level profiles list")
	flag.Parse()

	catalog, err := loadCatalog(*path)
	if err != nil {
		slog.Error("Failed to load seed file", slog.Any("error", err))
		os.Exit(1)
	}

	exitCode := 0
	app := fx.New(
		fx.NopLogger,
		fx.Provide(
			config.New,
			logs.New,
			context.Background,
			firebase.NewApp,
		),
		persistence.Module,
		fx.Invoke(requireDurableStore),
		fx.Invoke(func(params seedParams) {
			registerSeed(params, catalog, &exitCode)
		}),
	)
	if err := app.Err(); err != nil {
		slog.Error("Failed to start seeder", slog.Any("error", err))
		os.Exit(1)
	}
	app.Run()

	os.Exit(exitCode)
}

func registerSeed(params seedParams, catalog []*entity.Profile, exitCode *int) {
	params.Append(fx.Hook{
		OnStart: func(context.Context) error {
			go func() {
				created, err := seedCatalog(params.Ctx, params.Profiles, catalog, params.Logger)
				if err != nil {
					params.Logger.Error("Seeding failed", slog.Any("error", err), slog.Int("created", created))
					*exitCode = 1
				} else {
					params.Logger.Info("Seeding finished",
						slog.Int("created", created),
						slog.Int("skipped", len(catalog)-created),
					)
				}

				if shutdownErr := params.Shutdown(); shutdownErr != nil {
					params.Logger.Error("Failed to shutdown", slog.Any("error", shutdownErr))
				}
			}()

			return nil
		},
	})
}
