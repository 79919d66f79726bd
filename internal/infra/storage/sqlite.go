package storage

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

const sqliteSchema = `
CREATE TABLE IF NOT EXISTS device_storage(
  device_id TEXT NOT NULL,
  key TEXT NOT NULL,
  value BLOB NOT NULL,
  updated_at TEXT DEFAULT CURRENT_TIMESTAMP,
  PRIMARY KEY(device_id, key)
);
`

type SQLite struct {
	db *sqlx.DB
}

// NewSQLite ensures the schema exists on the given database.
func NewSQLite(db *sqlx.DB) (*SQLite, error) {
	if _, err := db.Exec(sqliteSchema); err != nil {
		return nil, err
	}
	return &SQLite{db: db}, nil
}

func (s *SQLite) Get(ctx context.Context, deviceID uuid.UUID, key string) ([]byte, bool, error) {
	var value []byte
	err := s.db.GetContext(ctx, &value,
		`SELECT value FROM device_storage WHERE device_id=? AND key=?`,
		deviceID.String(), key)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return value, true, nil
}

func (s *SQLite) SetAll(ctx context.Context, deviceID uuid.UUID, values map[string][]byte) error {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback() //nolint:errcheck

	for k, v := range values {
		if _, err := tx.ExecContext(ctx, `
		  INSERT INTO device_storage(device_id, key, value, updated_at)
		  VALUES(?, ?, ?, CURRENT_TIMESTAMP)
		  ON CONFLICT(device_id, key) DO UPDATE SET value=excluded.value, updated_at=excluded.updated_at
		`, deviceID.String(), k, v); err != nil {
			return err
		}
	}
	return tx.Commit()
}

func (s *SQLite) Close() error {
	return nil
}
