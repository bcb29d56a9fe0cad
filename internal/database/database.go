package database

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Pool is the part of a connection pool the readiness probe needs
type Pool interface {
	Ping(ctx context.Context) error
	Close()
}

// NewPool connects to PostgreSQL and pings it once. maxConns is clamped to
// [DefaultMinConnections, MaxInt32].
func NewPool(ctx context.Context, connString string, maxConns int, maxIdle, maxLife time.Duration) (*pgxpool.Pool, error) {
	cfg, err := pgxpool.ParseConfig(connString)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToParseConnString, err)
	}

	cfg.MaxConns = int32(min(max(maxConns, DefaultMinConnections), math.MaxInt32))
	cfg.MinConns = DefaultMinConnections
	cfg.MaxConnIdleTime = maxIdle
	cfg.MaxConnLifetime = maxLife
	if _, set := cfg.ConnConfig.RuntimeParams[runtimeParamAppName]; !set {
		cfg.ConnConfig.RuntimeParams[runtimeParamAppName] = ApplicationName
	}

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToCreatePool, err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToPingDatabase, err)
	}

	slog.Default().Info(LogMsgSuccessfullyConnectedToDatabase,
		"host", cfg.ConnConfig.Host,
		"database", cfg.ConnConfig.Database,
		"max_conns", cfg.MaxConns)
	return pool, nil
}
