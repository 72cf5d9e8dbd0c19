// Package mongo contains the MongoDB implementation of the user store.
package mongo

import (
	"context"
	"log/slog"

	"userauth/config"
	"userauth/internal/domain/lifecycle"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.uber.org/fx"
)

const emailIndexName = "uniq_email"

// New connects a client for cfg and returns the users collection.
// The connection is verified and the unique email index ensured when fx starts,
// and the client is disconnected when fx stops.
func New(lc fx.Lifecycle, cfg *config.MongoConfig, logger *slog.Logger) (*mongo.Collection, error) {
	if cfg == nil || cfg.URI == "" {
		return nil, errors.New("mongo uri is required")
	}

	opts := options.Client().
		ApplyURI(cfg.URI).
		SetConnectTimeout(cfg.ConnectTimeout).
		SetServerSelectionTimeout(cfg.ConnectTimeout)

	client, err := mongo.Connect(context.Background(), opts)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create MongoDB client")
	}

	collection := client.Database(cfg.Database).Collection(cfg.Collection)

	lc.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := client.Ping(ctx, readpref.Primary()); err != nil {
				return errors.Wrap(err, "failed to ping MongoDB")
			}

			if err := EnsureIndexes(ctx, collection); err != nil {
				return err
			}

			logger.Info("Connected to MongoDB",
				slog.String("database", cfg.Database),
				slog.String("collection", cfg.Collection),
			)

			return nil
		},
		OnStop: func(stopCtx context.Context) error {
			ctx, cancel := context.WithTimeout(stopCtx, lifecycle.DefaultTimeout)
			defer cancel()

			logger.Info("Disconnecting from MongoDB")

			return errors.WithStack(client.Disconnect(ctx))
		},
	})

	return collection, nil
}

// EnsureIndexes creates the unique index that backs the one-account-per-email rule.
func EnsureIndexes(ctx context.Context, collection *mongo.Collection) error {
	_, err := collection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true).SetName(emailIndexName),
	})
	if err != nil {
		return errors.Wrap(err, "failed to create unique email index")
	}

	return nil
}
