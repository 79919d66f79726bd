package db

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"rent-elegance/internal/pkg/config"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite" // SQLite driver
)

func Connect(ctx context.Context, cfg config.DBConfig) (*pgxpool.Pool, func(), error) {
	poolCfg, err := pgxpool.ParseConfig(cfg.BuildDSN())
	if err != nil {
		return nil, nil, fmt.Errorf("failed to parse database config: %w", err)
	}

	poolCfg.MaxConns = 20
	poolCfg.MinConns = 2
	poolCfg.MaxConnLifetime = time.Hour

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Test the connection
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, nil, fmt.Errorf("failed to ping database: %w", err)
	}

	cleanup := func() {
		pool.Close()
	}

	return pool, cleanup, nil
}

func OpenSQLite(path string) (*sqlx.DB, func(), error) {
	db, err := sqlx.Open("sqlite", path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open sqlite database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, nil, fmt.Errorf("failed to ping sqlite database: %w", err)
	}

	// modernc sqlite does not allow concurrent writers on one file
	db.SetMaxOpenConns(1)

	cleanup := func() {
		if err := db.Close(); err != nil {
			slog.Error("failed to close sqlite database", "error", err)
		}
	}

	return db, cleanup, nil
}
