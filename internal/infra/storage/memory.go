package storage

import (
	"context"
	"slices"
	"sync"

	"github.com/google/uuid"
)

type Memory struct {
	mu      sync.RWMutex
	devices map[uuid.UUID]map[string][]byte
}

func NewMemory() *Memory {
	return &Memory{devices: make(map[uuid.UUID]map[string][]byte)}
}

func (m *Memory) Get(_ context.Context, deviceID uuid.UUID, key string) ([]byte, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	v, ok := m.devices[deviceID][key]
	if !ok {
		return nil, false, nil
	}
	return slices.Clone(v), true, nil
}

func (m *Memory) SetAll(_ context.Context, deviceID uuid.UUID, values map[string][]byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	kv, ok := m.devices[deviceID]
	if !ok {
		kv = make(map[string][]byte, len(values))
		m.devices[deviceID] = kv
	}
	for k, v := range values {
		kv[k] = slices.Clone(v)
	}
	return nil
}

func (m *Memory) Close() error {
	return nil
}
