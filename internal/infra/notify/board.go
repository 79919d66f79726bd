package notify

import (
	"log/slog"
	"sync"

	"rent-elegance/internal/domain/notification"

	"github.com/google/uuid"
)

// Board keeps the latest notification per device. A newer notification
// replaces the previous one.
type Board struct {
	mu      sync.RWMutex
	current map[uuid.UUID]notification.Notification
	logger  *slog.Logger
}

func NewBoard(logger *slog.Logger) *Board {
	return &Board{
		current: make(map[uuid.UUID]notification.Notification),
		logger:  logger,
	}
}

func (b *Board) Notify(deviceID uuid.UUID, n notification.Notification) {
	b.mu.Lock()
	b.current[deviceID] = n
	b.mu.Unlock()

	b.logger.Debug("notification",
		"device_id", deviceID,
		"message", n.Message,
		"severity", n.Severity,
		"origin", n.Origin)
}

// Current reports false when nothing was ever shown to the device.
func (b *Board) Current(deviceID uuid.UUID) (notification.Notification, bool) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	n, ok := b.current[deviceID]
	return n, ok
}

func (b *Board) Dismiss(deviceID uuid.UUID) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if n, ok := b.current[deviceID]; ok {
		b.current[deviceID] = n.Dismissed()
	}
}

// Forget drops all state kept for the device.
func (b *Board) Forget(deviceID uuid.UUID) {
	b.mu.Lock()
	defer b.mu.Unlock()
	delete(b.current, deviceID)
}
