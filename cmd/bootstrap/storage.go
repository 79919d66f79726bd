package bootstrap

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"rent-elegance/internal/infra/db"
	"rent-elegance/internal/infra/storage"
	"rent-elegance/internal/pkg/config"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

const connectTimeout = 10 * time.Second

var StorageModule = fx.Module("storage",
	fx.Provide(
		NewKeyValue,
	),
)

type StorageParams struct {
	fx.In

	Lifecycle fx.Lifecycle
	Config    config.Config
	Logger    *slog.Logger
	// Supplied by tests that manage their own database.
	Pool *pgxpool.Pool `optional:"true"`
}

// NewKeyValue opens the device storage selected by STORAGE_DRIVER.
func NewKeyValue(p StorageParams) (storage.KeyValue, error) {
	var (
		kv      storage.KeyValue
		cleanup func()
	)

	switch p.Config.Storage.Driver {
	case config.StorageDriverMemory:
		kv = storage.NewMemory()
	case config.StorageDriverSQLite:
		sqlDB, closeDB, err := db.OpenSQLite(p.Config.Storage.SQLitePath)
		if err != nil {
			return nil, err
		}
		sqliteKV, err := storage.NewSQLite(sqlDB)
		if err != nil {
			closeDB()
			return nil, err
		}
		kv, cleanup = sqliteKV, closeDB
	case config.StorageDriverPostgres:
		pool := p.Pool
		if pool == nil {
			ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
			defer cancel()
			connected, closePool, err := db.Connect(ctx, p.Config.DB)
			if err != nil {
				return nil, err
			}
			pool, cleanup = connected, closePool
		}
		kv = storage.NewPostgres(pool)
	default:
		return nil, fmt.Errorf("unsupported storage driver %q", p.Config.Storage.Driver)
	}

	p.Logger.Info("デバイスストレージを初期化しました", "driver", p.Config.Storage.Driver)

	p.Lifecycle.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			err := kv.Close()
			if cleanup != nil {
				cleanup()
			}
			return err
		},
	})

	return kv, nil
}
