// Package mongodb implements the Record Store on MongoDB.
package mongodb

import (
	"context"
	"log/slog"

	"figures/config"
	"figures/internal/domain/lifecycle"
	"figures/internal/errors"
	"figures/internal/infra/persistence/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.uber.org/fx"
)

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// New connects the MongoDB client and returns the configured database handle.
// The connection is verified and indexes are ensured on fx start; the client is closed on stop.
func New(params Params) (*mongo.Database, error) {
	cfg := params.Config.Mongo
	if cfg == nil || cfg.URI == "" {
		return nil, errors.New("mongo.uri is not configured")
	}

	clientOpts := options.Client().
		ApplyURI(cfg.URI).
		SetConnectTimeout(cfg.ConnectTimeout).
		SetServerSelectionTimeout(cfg.ConnectTimeout)
	if params.Config.Env.ServiceName != "" {
		clientOpts.SetAppName(params.Config.Env.ServiceName)
	}

	client, err := mongo.Connect(context.Background(), clientOpts)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create MongoDB client")
	}

	db := client.Database(cfg.Database)

	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := client.Ping(ctx, readpref.Primary()); err != nil {
				return errors.Wrap(err, "failed to ping MongoDB")
			}

			if err := EnsureIndexes(ctx, db); err != nil {
				return err
			}

			params.Logger.Info("MongoDB connected", slog.String("database", cfg.Database))

			return nil
		},
		OnStop: func(stopCtx context.Context) error {
			ctx, cancel := context.WithTimeout(stopCtx, lifecycle.DefaultTimeout)
			defer cancel()

			return errors.Wrap(client.Disconnect(ctx), "failed to disconnect MongoDB")
		},
	})

	return db, nil
}

// EnsureIndexes creates the indexes the repositories rely on. It is idempotent.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	_, err := db.Collection(model.UsersCollection).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: model.FieldExternalSubjectID, Value: 1}},
		Options: options.Index().SetUnique(true).SetName("uniq_external_subject_id"),
	})
	if err != nil {
		return errors.Wrap(err, "failed to create users index")
	}

	_, err = db.Collection(model.ProfilesCollection).Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: model.FieldCreatedAt, Value: -1}},
			Options: options.Index().SetName("created_at_desc"),
		},
		{
			Keys: bson.D{
				{Key: model.FieldCategory, Value: 1},
				{Key: model.FieldFameLevel, Value: 1},
				{Key: model.FieldCreatedAt, Value: -1},
			},
			Options: options.Index().SetName("category_fame_created_at"),
		},
	})
	if err != nil {
		return errors.Wrap(err, "failed to create profiles indexes")
	}

	return nil
}
