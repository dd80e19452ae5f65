// Package store opens the persistence backend selected by STORE_DRIVER.
package store

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/unilink/campus-api/internal/core/ports"
	"github.com/unilink/campus-api/internal/infrastructure/db/memory"
	mongostore "github.com/unilink/campus-api/internal/infrastructure/db/mongo"
	"github.com/unilink/campus-api/internal/infrastructure/db/postgres"
	"github.com/unilink/campus-api/internal/pkg/config"
)

// Stores bundles the repositories of one backend.
type Stores struct {
	Users   ports.UserRepository
	Content ports.ContentRepository

	// Ping checks backend connectivity. It is nil for the memory driver.
	Ping func(ctx context.Context) error

	close func(ctx context.Context)
}

// Close releases the backend connection.
func (s *Stores) Close(ctx context.Context) {
	if s.close != nil {
		s.close(ctx)
	}
}

// Open connects to the configured driver and prepares its schema or indexes.
func Open(ctx context.Context, cfg *config.Config, log zerolog.Logger) (*Stores, error) {
	switch cfg.Store.Driver {
	case config.DriverPostgres:
		pool, err := postgres.Connect(ctx, postgres.Config{URL: cfg.Postgres.URL, MaxConns: cfg.Postgres.MaxConns})
		if err != nil {
			return nil, err
		}
		if err := postgres.EnsureSchema(ctx, pool); err != nil {
			pool.Close()
			return nil, err
		}
		log.Info().Msg("postgres store ready")
		return &Stores{
			Users:   postgres.NewUserRepository(pool),
			Content: postgres.NewContentRepository(pool),
			Ping:    pool.Ping,
			close:   func(context.Context) { pool.Close() },
		}, nil

	case config.DriverMongo:
		client, db, err := mongostore.Connect(ctx, mongostore.Config{URI: cfg.Mongo.URI, Database: cfg.Mongo.Database})
		if err != nil {
			return nil, err
		}
		users := mongostore.NewUserRepository(db)
		content := mongostore.NewContentRepository(db)
		if err := mongostore.EnsureIndexes(ctx, users, content); err != nil {
			_ = client.Disconnect(ctx)
			return nil, err
		}
		log.Info().Str("database", cfg.Mongo.Database).Msg("mongo store ready")
		return &Stores{
			Users:   users,
			Content: content,
			Ping:    func(ctx context.Context) error { return client.Ping(ctx, nil) },
			close: func(ctx context.Context) {
				if err := client.Disconnect(ctx); err != nil {
					log.Warn().Err(err).Msg("mongo disconnect")
				}
			},
		}, nil

	case config.DriverMemory:
		log.Warn().Msg("using the in-memory store; data is lost on restart")
		return &Stores{
			Users:   memory.NewUserRepository(),
			Content: memory.NewContentRepository(),
		}, nil
	}
	return nil, fmt.Errorf("unknown store driver %q", cfg.Store.Driver)
}
