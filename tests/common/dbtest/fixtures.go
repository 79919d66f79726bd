//go:build unit || e2e

package dbtest

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

// writes a raw storage payload, bypassing the snapshot encoder
func PutRawValue(t *testing.T, db DBLike, deviceID uuid.UUID, key string, value []byte) {
	t.Helper()

	_, err := db.Exec(context.Background(), `
		INSERT INTO device_storage (device_id, key, value, updated_at)
		VALUES ($1, $2, $3, now())
		ON CONFLICT (device_id, key) DO UPDATE SET value = EXCLUDED.value, updated_at = EXCLUDED.updated_at`,
		deviceID, key, value)
	require.NoError(t, err)
}

func GetRawValue(t *testing.T, db DBLike, deviceID uuid.UUID, key string) []byte {
	t.Helper()

	var value []byte
	err := db.QueryRow(context.Background(),
		"SELECT value FROM device_storage WHERE device_id = $1 AND key = $2", deviceID, key).Scan(&value)
	require.NoError(t, err)
	return value
}

func CountDeviceKeys(t *testing.T, db DBLike, deviceID uuid.UUID) int {
	t.Helper()

	var n int
	err := db.QueryRow(context.Background(),
		"SELECT count(*) FROM device_storage WHERE device_id = $1", deviceID).Scan(&n)
	require.NoError(t, err)
	return n
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates all tables
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'
		    AND tablename NOT IN ('schema_migrations')`)
		if err != nil {
			truncateSQL.Store("")
			return
		}
		defer rows.Close()
		var tables []string
		for rows.Next() {
			var t string
			if err := rows.Scan(&t); err != nil {
				truncateSQL.Store("")
				return
			}
			tables = append(tables, t)
		}
		if rows.Err() != nil {
			truncateSQL.Store("")
			return
		}
		if len(tables) == 0 {
			truncateSQL.Store("SELECT 1")
			return
		}
		truncateSQL.Store("TRUNCATE " + strings.Join(tables, ", ") + " RESTART IDENTITY CASCADE;")
	})
	sqlAny := truncateSQL.Load()
	if sqlAny == nil || sqlAny.(string) == "" {
		return fmt.Errorf("failed to build TRUNCATE SQL")
	}
	_, err := pool.Exec(ctx, sqlAny.(string))
	return err
}
