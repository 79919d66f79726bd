package store

import (
	"context"
	"log/slog"
	"slices"
	"sync"
	"time"

	"rent-elegance/internal/domain/rental"
	"rent-elegance/internal/pkg/clock"
	"rent-elegance/internal/usecase/shared"

	"github.com/google/uuid"
)

// Provider resolves the store of a device. Get registers the store so later
// mutations are served from memory; View only reads and leaves unknown devices
// unregistered.
type Provider interface {
	Get(ctx context.Context, deviceID uuid.UUID) *Store
	View(ctx context.Context, deviceID uuid.UUID) *Store
}

// forgetter is implemented by sinks that keep per-device state.
type forgetter interface {
	Forget(deviceID uuid.UUID)
}

type Option func(*Registry)

// WithIdleTTL evicts stores not requested for ttl. Zero keeps them until Close.
func WithIdleTTL(ttl time.Duration) Option {
	return func(r *Registry) { r.idleTTL = ttl }
}

// WithMaxStores evicts the least recently used store once n are live. Zero means unbounded.
func WithMaxStores(n int) Option {
	return func(r *Registry) { r.maxStores = n }
}

func WithClock(clk clock.Clock) Option {
	return func(r *Registry) { r.clock = clk }
}

func WithLogger(logger *slog.Logger) Option {
	return func(r *Registry) { r.logger = logger }
}

type registered struct {
	store    *Store
	lastUsed time.Time
}

// Registry hands out one Store per device and disposes them on eviction or Close.
type Registry struct {
	mu     sync.Mutex
	stores map[uuid.UUID]*registered
	repo   shared.SnapshotRepository
	sink   shared.NotificationSink
	calc   rental.DurationCalculator

	idleTTL   time.Duration
	maxStores int
	clock     clock.Clock
	logger    *slog.Logger
}

func NewRegistry(repo shared.SnapshotRepository, sink shared.NotificationSink, calc rental.DurationCalculator, opts ...Option) *Registry {
	r := &Registry{
		stores: make(map[uuid.UUID]*registered),
		repo:   repo,
		sink:   sink,
		calc:   calc,
		clock:  clock.NewRealClock(),
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Get returns the initialized store for the device, creating it on first use.
func (r *Registry) Get(ctx context.Context, deviceID uuid.UUID) *Store {
	var victims []*Store

	r.mu.Lock()
	now := r.clock.Now()
	reg, ok := r.stores[deviceID]
	if !ok {
		if r.maxStores > 0 && len(r.stores) >= r.maxStores {
			victims = r.removeOldestLocked(len(r.stores) - r.maxStores + 1)
		}
		reg = &registered{store: New(deviceID, r.repo, r.sink, r.calc, r.logger)}
		r.stores[deviceID] = reg
	}
	reg.lastUsed = now
	r.mu.Unlock()

	r.dispose(ctx, victims, "capacity")
	reg.store.Init(ctx)
	return reg.store
}

// View returns the live store when there is one. Otherwise it loads a
// throwaway store that is not registered, so reads never grow the registry.
func (r *Registry) View(ctx context.Context, deviceID uuid.UUID) *Store {
	r.mu.Lock()
	reg, ok := r.stores[deviceID]
	if ok {
		reg.lastUsed = r.clock.Now()
	}
	r.mu.Unlock()

	if ok {
		reg.store.Init(ctx)
		return reg.store
	}
	st := New(deviceID, r.repo, nil, r.calc, r.logger)
	st.Init(ctx)
	return st
}

func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.stores)
}

// EvictIdle disposes stores idle for at least the configured TTL and returns how many.
func (r *Registry) EvictIdle(ctx context.Context) int {
	if r.idleTTL <= 0 {
		return 0
	}

	r.mu.Lock()
	cutoff := r.clock.Now().Add(-r.idleTTL)
	var victims []*Store
	for id, reg := range r.stores {
		if !reg.lastUsed.After(cutoff) {
			victims = append(victims, reg.store)
			delete(r.stores, id)
		}
	}
	r.mu.Unlock()

	r.dispose(ctx, victims, "idle")
	return len(victims)
}

// Run evicts idle stores every interval until ctx is done.
func (r *Registry) Run(ctx context.Context, interval time.Duration) {
	if interval <= 0 || r.idleTTL <= 0 {
		return
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			r.EvictIdle(context.WithoutCancel(ctx))
		}
	}
}

// Close disposes every store. Stores requested afterwards start from storage again.
func (r *Registry) Close(ctx context.Context) error {
	r.mu.Lock()
	victims := make([]*Store, 0, len(r.stores))
	for _, reg := range r.stores {
		victims = append(victims, reg.store)
	}
	r.stores = make(map[uuid.UUID]*registered)
	r.mu.Unlock()

	for _, st := range victims {
		st.Dispose(ctx)
	}
	r.logger.Info("device stores disposed", "count", len(victims))
	return nil
}

// removeOldestLocked must be called with mu held.
func (r *Registry) removeOldestLocked(n int) []*Store {
	ids := make([]uuid.UUID, 0, len(r.stores))
	for id := range r.stores {
		ids = append(ids, id)
	}
	slices.SortFunc(ids, func(a, b uuid.UUID) int {
		return r.stores[a].lastUsed.Compare(r.stores[b].lastUsed)
	})

	victims := make([]*Store, 0, n)
	for _, id := range ids[:min(n, len(ids))] {
		victims = append(victims, r.stores[id].store)
		delete(r.stores, id)
	}
	return victims
}

// dispose flushes evicted stores outside the registry lock and drops their notifications.
func (r *Registry) dispose(ctx context.Context, victims []*Store, reason string) {
	if len(victims) == 0 {
		return
	}
	f, _ := r.sink.(forgetter)
	for _, st := range victims {
		st.Dispose(ctx)
		if f != nil {
			f.Forget(st.DeviceID())
		}
	}
	r.logger.Debug("device stores evicted", "count", len(victims), "reason", reason)
}
