// Package persistence selects the user store implementation from configuration.
package persistence

import (
	"log/slog"

	"userauth/config"
	"userauth/internal/domain/repository"
	"userauth/internal/infra/persistence/memory"
	mongostore "userauth/internal/infra/persistence/mongo"
	"userauth/internal/infra/persistence/postgres"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// Params holds dependencies for the user store, injected by Fx
type Params struct {
	fx.In

	Lc     fx.Lifecycle
	Config *config.Config
	Logger *slog.Logger
}

// NewUserRepository opens the backend named by storage.driver and returns its user store.
// The connection is registered on the fx lifecycle, so an unreachable database fails startup.
func NewUserRepository(params Params) (repository.UserRepository, error) {
	cfg := params.Config
	logger := params.Logger

	switch cfg.Storage.Driver {
	case config.StorageDriverMongo:
		collection, err := mongostore.New(params.Lc, cfg.Mongo, logger)
		if err != nil {
			return nil, errors.Wrap(err, "failed to create mongo user store")
		}
		logger.Info("Using MongoDB user store",
			slog.String("database", cfg.Mongo.Database),
			slog.String("collection", cfg.Mongo.Collection),
		)

		return mongostore.NewUserRepository(collection, cfg.Mongo.OperationTimeout), nil

	case config.StorageDriverPostgres:
		db, err := postgres.New(params.Lc, cfg, logger)
		if err != nil {
			return nil, errors.Wrap(err, "failed to create postgres user store")
		}
		logger.Info("Using PostgreSQL user store")

		return postgres.NewUserRepository(db), nil

	case config.StorageDriverMemory:
		logger.Warn("Using in-memory user store, data is lost on restart")

		return memory.NewUserRepository(), nil

	default:
		return nil, errors.Errorf("unsupported storage driver: %q", cfg.Storage.Driver)
	}
}
