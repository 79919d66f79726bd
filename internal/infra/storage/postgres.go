package storage

import (
	"context"
	"errors"

	"rent-elegance/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Postgres struct {
	pool *pgxpool.Pool
}

func NewPostgres(pool *pgxpool.Pool) *Postgres {
	return &Postgres{pool: pool}
}

func (p *Postgres) Get(ctx context.Context, deviceID uuid.UUID, key string) ([]byte, bool, error) {
	var value []byte
	err := p.pool.QueryRow(ctx,
		`SELECT value FROM device_storage WHERE device_id = $1 AND key = $2`,
		deviceID, key).Scan(&value)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return value, true, nil
}

func (p *Postgres) SetAll(ctx context.Context, deviceID uuid.UUID, values map[string][]byte) error {
	return shared.RunInTxWithRetry(ctx, p.pool, shared.DefaultRetry, func(tx pgx.Tx) error {
		batch := &pgx.Batch{}
		for k, v := range values {
			batch.Queue(`
				INSERT INTO device_storage (device_id, key, value, updated_at)
				VALUES ($1, $2, $3, now())
				ON CONFLICT (device_id, key) DO UPDATE
				SET value = EXCLUDED.value, updated_at = EXCLUDED.updated_at`,
				deviceID, k, v)
		}
		return tx.SendBatch(ctx, batch).Close()
	})
}

// Close is a no-op; the pool is closed by whoever opened it.
func (p *Postgres) Close() error {
	return nil
}
