// Package persistence selects the configured document store backend.
package persistence

import (
	"context"
	"log/slog"

	"txtchange/config"
	"txtchange/internal/domain/constants"
	"txtchange/internal/errors"
	"txtchange/internal/infra/persistence/document"
	"txtchange/internal/infra/persistence/firestore"
	"txtchange/internal/infra/persistence/memory"
	"txtchange/internal/infra/persistence/postgres"

	fb "firebase.google.com/go/v4"
	"go.uber.org/fx"
)

// StoreParams holds the dependencies of the store provider.
type StoreParams struct {
	fx.In
	fx.Lifecycle

	Config      *config.Config
	Logger      *slog.Logger
	FirebaseApp *fb.App `optional:"true"`
}

// NewStore opens the document store named by store.provider.
func NewStore(params StoreParams) (document.Store, error) {
	var (
		store document.Store
		err   error
	)

	switch params.Config.Store.Provider {
	case constants.StoreProviderFirestore:
		store, err = newFirestore(params)
	case constants.StoreProviderPostgres:
		store, err = newPostgres(params)
	case constants.StoreProviderMemory, "":
		store = memory.NewStore()
	default:
		return nil, errors.Errorf("unknown store provider %q", params.Config.Store.Provider)
	}
	if err != nil {
		return nil, err
	}

	params.Logger.Info("Document store ready",
		slog.String("provider", params.Config.Store.Provider),
		slog.String("consistency", params.Config.Store.Consistency),
	)
	params.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return store.Close()
		},
	})

	return store, nil
}

func newFirestore(params StoreParams) (document.Store, error) {
	if params.FirebaseApp == nil {
		return nil, errors.New("firestore store requires firebase.projectId")
	}

	client, err := params.FirebaseApp.Firestore(context.Background())
	if err != nil {
		return nil, errors.Wrap(err, "failed to create Firestore client")
	}

	return firestore.NewStore(client), nil
}

func newPostgres(params StoreParams) (document.Store, error) {
	if params.Config.Postgres == nil {
		return nil, errors.New("postgres store requires the postgres section")
	}

	db, err := postgres.New(postgres.Params{
		Lifecycle: params.Lifecycle,
		Config:    params.Config,
		Logger:    params.Logger,
	})
	if err != nil {
		return nil, err
	}

	return postgres.NewStore(db), nil
}
