// Package firestoredb implements the Record Store on Cloud Firestore.
package firestoredb

import (
	"context"
	"log/slog"
	"strings"

	"figures/internal/errors"

	"cloud.google.com/go/firestore"
	firebase "firebase.google.com/go/v4"
	"go.uber.org/fx"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Ctx    context.Context
	App    *firebase.App
	Logger *slog.Logger
}

// New opens the Firestore client from the shared Firebase app and closes it on fx stop.
func New(params Params) (*firestore.Client, error) {
	client, err := params.App.Firestore(params.Ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create Firestore client")
	}

	params.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			params.Logger.Info("Closing Firestore client")

			return errors.Wrap(client.Close(), "failed to close Firestore client")
		},
	})

	return client, nil
}

func isNotFound(err error) bool {
	return status.Code(err) == codes.NotFound
}

// validDocID rejects IDs Firestore would interpret as a path rather than a key.
func validDocID(id string) bool {
	return id != "" && !strings.Contains(id, "/") && id != "." && id != ".."
}
