package pg

import (
	"context"

	"github.com/avast/retry-go/v4"
	"github.com/code19m/errx"
	"github.com/jackc/pgx/v5/pgxpool"
)

const pingAttempts = 3

// NewPool creates a new PostgreSQL connection pool with the provided configuration.
// The initial ping is retried a few times to tolerate a database that is still
// starting up alongside the service.
func NewPool(cfg Config) (*pgxpool.Pool, error) {
	poolConfig, err := pgxpool.ParseConfig(cfg.dsn())
	if err != nil {
		return nil, errx.Wrap(err)
	}

	poolConfig.MaxConns = cfg.PoolMaxConns
	poolConfig.MinConns = cfg.PoolMinConns
	poolConfig.MaxConnIdleTime = cfg.PoolMaxConnIdleTime
	poolConfig.MaxConnLifetime = cfg.PoolMaxConnLifetime

	pgPool, err := pgxpool.NewWithConfig(context.Background(), poolConfig)
	if err != nil {
		return nil, errx.Wrap(err)
	}

	err = retry.Do(
		func() error {
			ctx, cancel := context.WithTimeout(context.Background(), cfg.ConnectTimeout)
			defer cancel()
			return pgPool.Ping(ctx)
		},
		retry.Attempts(pingAttempts),
	)
	if err != nil {
		pgPool.Close()
		return nil, errx.Wrap(err)
	}

	return pgPool, nil
}
