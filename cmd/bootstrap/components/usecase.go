package components

import (
	"context"
	"log/slog"

	"rent-elegance/internal/domain/rental"
	"rent-elegance/internal/pkg/clock"
	"rent-elegance/internal/pkg/config"
	"rent-elegance/internal/usecase"
	"rent-elegance/internal/usecase/commands"
	"rent-elegance/internal/usecase/queries"
	"rent-elegance/internal/usecase/shared"
	"rent-elegance/internal/usecase/store"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseStoreModule,
	usecaseQueriesModule,
	usecaseValidatorsModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	fx.Annotate(
		rental.NewDefaultDurationCalculator,
		fx.As(new(rental.DurationCalculator)),
	),
)

var usecaseStoreModule = fx.Module("usecase/store",
	fx.Provide(
		NewStoreRegistry,
	),
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewCartCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewCatalogQueries,
		queries.NewCartQueries,
		queries.NewRentalQueries,
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewDeviceTokens,
	),
)

type StoreRegistryParams struct {
	fx.In

	Lifecycle fx.Lifecycle
	Config    config.Config
	Logger    *slog.Logger
	Clock     clock.Clock
	Repo      shared.SnapshotRepository
	Sink      shared.NotificationSink
	Calc      rental.DurationCalculator
}

// NewStoreRegistry sweeps idle stores while running and flushes every live
// store before storage is closed.
func NewStoreRegistry(p StoreRegistryParams) store.Provider {
	cfg := p.Config.Store
	registry := store.NewRegistry(p.Repo, p.Sink, p.Calc,
		store.WithLogger(p.Logger),
		store.WithClock(p.Clock),
		store.WithIdleTTL(cfg.IdleTTL),
		store.WithMaxStores(cfg.MaxDevices),
	)

	sweepCtx, stopSweep := context.WithCancel(context.Background())
	done := make(chan struct{})
	p.Lifecycle.Append(fx.Hook{
		OnStart: func(context.Context) error {
			go func() {
				defer close(done)
				registry.Run(sweepCtx, cfg.SweepInterval)
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			stopSweep()
			<-done
			return registry.Close(ctx)
		},
	})
	return registry
}
