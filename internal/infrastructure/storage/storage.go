// Package storage opens the record store selected by configuration.
package storage

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/iho/pocketledger/internal/adapter/repository/memory"
	postgresRepo "github.com/iho/pocketledger/internal/adapter/repository/postgres"
	redisRepo "github.com/iho/pocketledger/internal/adapter/repository/redis"
	"github.com/iho/pocketledger/internal/adapter/repository/sqlite"
	"github.com/iho/pocketledger/internal/infrastructure/config"
	"github.com/iho/pocketledger/internal/infrastructure/postgres"
	"github.com/iho/pocketledger/internal/infrastructure/redis"
	"github.com/iho/pocketledger/internal/usecase"
)

// Pinger is implemented by backends that can report their health.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Store is an opened record store.
type Store struct {
	usecase.RecordStore

	Driver string
	pinger Pinger
	close  func() error
}

// Ping checks the backend. Backends without a connection always succeed.
func (s *Store) Ping(ctx context.Context) error {
	if s.pinger == nil {
		return nil
	}
	return s.pinger.Ping(ctx)
}

// Close releases the backend.
func (s *Store) Close() error {
	if s.close == nil {
		return nil
	}
	return s.close()
}

type pingFunc func(ctx context.Context) error

func (f pingFunc) Ping(ctx context.Context) error { return f(ctx) }

// Open connects to the store named by cfg.StoreDriver.
func Open(ctx context.Context, cfg *config.Config, logger zerolog.Logger) (*Store, error) {
	switch cfg.StoreDriver {
	case config.DriverMemory:
		logger.Warn().Msg("using in-memory store, records are lost on exit")
		return &Store{RecordStore: memory.NewRecordStore(), Driver: cfg.StoreDriver}, nil

	case config.DriverSQLite:
		store, err := sqlite.NewRecordStore(cfg.SQLitePath)
		if err != nil {
			return nil, err
		}
		logger.Debug().Str("path", cfg.SQLitePath).Msg("opened sqlite store")
		return &Store{RecordStore: store, Driver: cfg.StoreDriver, close: store.Close}, nil

	case config.DriverRedis:
		client, err := redis.NewClient(ctx, cfg.RedisURL, cfg.DatabaseTimeout)
		if err != nil {
			return nil, err
		}
		logger.Debug().Msg("connected to redis")
		return &Store{
			RecordStore: redisRepo.NewRecordStore(client, cfg.RedisKeyPrefix),
			Driver:      cfg.StoreDriver,
			pinger:      pingFunc(func(ctx context.Context) error { return client.Ping(ctx).Err() }),
			close:       client.Close,
		}, nil

	case config.DriverPostgres:
		if err := postgres.RunMigrations(cfg.DatabaseURL, cfg.MigrationsPath, logger); err != nil {
			return nil, err
		}
		pool, err := postgres.NewPoolWithConfig(ctx, postgres.PoolConfig{
			DatabaseURL:    cfg.DatabaseURL,
			MaxConns:       cfg.DatabaseMaxConns,
			MinConns:       cfg.DatabaseMinConns,
			ConnectTimeout: cfg.DatabaseTimeout,
		})
		if err != nil {
			return nil, err
		}
		logger.Debug().Msg("connected to postgres")
		return &Store{
			RecordStore: postgresRepo.NewRecordRepository(pool),
			Driver:      cfg.StoreDriver,
			pinger:      pool,
			close: func() error {
				pool.Close()
				return nil
			},
		}, nil

	default:
		return nil, fmt.Errorf("unknown store driver %q", cfg.StoreDriver)
	}
}
