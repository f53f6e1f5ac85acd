package database

import (
	"context"
	"errors"

	"fc-admin/internal/config"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ErrNoDSN means DB_DSN is unset; the data routes stay disabled.
var ErrNoDSN = errors.New("database: DB_DSN not configured")

func Open(ctx context.Context, cfg config.Config) (*pgxpool.Pool, error) {
	if cfg.DBURL == "" {
		return nil, ErrNoDSN
	}
	pcfg, err := pgxpool.ParseConfig(cfg.DBURL)
	if err != nil {
		return nil, err
	}
	pool, err := pgxpool.NewWithConfig(ctx, pcfg)
	if err != nil {
		return nil, err
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, err
	}
	return pool, nil
}
