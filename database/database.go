package database

import (
	"context"
	"fmt"
	"time"

	"github.com/geekofia/quizdesk/config"
	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.uber.org/fx"
)

// NewDatabase connects to MongoDB and provides the namespace database handle.
// The client is constructed once at startup and disconnected on shutdown via
// the fx lifecycle, so no package-level collection handles exist anywhere.
func NewDatabase(lc fx.Lifecycle, cfg *config.Config) (*mongo.Database, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.Database.URI))
	if err != nil {
		return nil, fmt.Errorf("connecting to mongodb: %w", err)
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		return nil, fmt.Errorf("pinging mongodb: %w", err)
	}

	log.Info().Str("namespace", cfg.Database.Namespace).Msg("Connected to MongoDB")

	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			log.Info().Msg("Disconnecting from MongoDB...")
			return client.Disconnect(ctx)
		},
	})

	return client.Database(cfg.Database.Namespace), nil
}
