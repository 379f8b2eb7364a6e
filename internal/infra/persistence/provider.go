// Package persistence selects the Record Store backend at startup.
package persistence

import (
	"context"
	"log/slog"

	"figures/config"
	"figures/internal/domain/repository"
	"figures/internal/errors"
	"figures/internal/infra/persistence/firestoredb"
	"figures/internal/infra/persistence/memory"
	"figures/internal/infra/persistence/mongodb"

	firebase "firebase.google.com/go/v4"
	"go.uber.org/fx"
)

// Params holds dependencies for the repositories, injected by Fx
type Params struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
	App    *firebase.App
}

// Repositories bundles the two collections of one backend.
type Repositories struct {
	fx.Out

	Profiles repository.ProfileRepository
	Users    repository.UserRepository
}

// NewRepositories opens only the backend named by store.driver.
func NewRepositories(params Params) (Repositories, error) {
	driver := params.Config.Store.Driver
	logger := params.Logger.With(slog.String("store_driver", driver))

	switch driver {
	case config.StoreDriverMongo:
		db, err := mongodb.New(mongodb.Params{
			Lifecycle: params.Lc,
			Config:    params.Config,
			Logger:    logger,
		})
		if err != nil {
			return Repositories{}, err
		}
		logger.Info("Using MongoDB record store")

		return Repositories{
			Profiles: mongodb.NewProfileRepository(db),
			Users:    mongodb.NewUserRepository(db),
		}, nil

	case config.StoreDriverFirestore:
		client, err := firestoredb.New(firestoredb.Params{
			Lifecycle: params.Lc,
			Ctx:       params.Ctx,
			App:       params.App,
			Logger:    logger,
		})
		if err != nil {
			return Repositories{}, err
		}
		logger.Info("Using Firestore record store")

		return Repositories{
			Profiles: firestoredb.NewProfileRepository(client),
			Users:    firestoredb.NewUserRepository(client),
		}, nil

	case config.StoreDriverMemory:
		logger.Warn("Using in-memory record store, data is lost on restart")
		store := memory.NewStore()

		return Repositories{
			Profiles: store.ProfileRepository(),
			Users:    store.UserRepository(),
		}, nil

	default:
		return Repositories{}, errors.Errorf("unknown store driver: %s", driver)
	}
}

// Module provides the persistence FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewRepositories),
)
