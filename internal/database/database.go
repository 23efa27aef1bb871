package database

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Pool tuning that is not worth exposing as configuration; only the size
// bounds come from the environment.
const (
	connMaxLifetime  = 30 * time.Minute
	connMaxIdleTime  = 5 * time.Minute
	healthCheckEvery = 30 * time.Second
)

// DB owns the pgx connection pool for the service. Repositories receive the
// pool, not the DB, so they stay mockable.
type DB struct {
	Pool *pgxpool.Pool
}

// New parses the connection URL, builds the pool and verifies connectivity
// with an initial ping before returning.
func New(ctx context.Context, databaseURL string, maxConns int32, minConns int32) (*DB, error) {
	cfg, err := pgxpool.ParseConfig(databaseURL)
	if err != nil {
		return nil, fmt.Errorf("parse database URL: %w", err)
	}

	cfg.MaxConns = maxConns
	cfg.MinConns = minConns
	cfg.MaxConnLifetime = connMaxLifetime
	cfg.MaxConnIdleTime = connMaxIdleTime
	cfg.HealthCheckPeriod = healthCheckEvery

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("create connection pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	slog.Info("connection pool ready", "max_conns", maxConns, "min_conns", minConns)
	return &DB{Pool: pool}, nil
}

func (db *DB) Close() {
	if db.Pool != nil {
		db.Pool.Close()
	}
}

// Health pings the pool; the /health endpoint reports the result.
func (db *DB) Health(ctx context.Context) error {
	return db.Pool.Ping(ctx)
}
