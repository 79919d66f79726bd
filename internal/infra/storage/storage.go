package storage

//go:generate mockgen -source=$GOFILE -destination=../../../tests/mock/storage/storage_mock.go -package=storagemock

import (
	"context"

	"github.com/google/uuid"
)

// KeyValue is the per-device storage that replaces browser local storage.
// Values are opaque bytes.
type KeyValue interface {
	// Get reports false when the key has never been written for the device.
	Get(ctx context.Context, deviceID uuid.UUID, key string) ([]byte, bool, error)
	// SetAll writes every value for the device atomically.
	SetAll(ctx context.Context, deviceID uuid.UUID, values map[string][]byte) error
	Close() error
}
