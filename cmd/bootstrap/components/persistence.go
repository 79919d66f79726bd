package components

import (
	"log/slog"

	"rent-elegance/internal/infra/catalog"
	"rent-elegance/internal/infra/notify"
	"rent-elegance/internal/infra/repository"
	"rent-elegance/internal/pkg/config"
	"rent-elegance/internal/usecase/shared"

	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	catalogModule,
	repositoryModule,
)

var catalogModule = fx.Module("persistence/catalog",
	fx.Provide(
		fx.Annotate(
			NewCatalog,
			fx.As(new(shared.CatalogReader)),
		),
	),
)

var repositoryModule = fx.Module("persistence/repository",
	fx.Provide(
		// Snapshot
		fx.Annotate(
			repository.NewSnapshotRepository,
			fx.As(new(shared.SnapshotRepository)),
		),
		// Notification
		fx.Annotate(
			notify.NewBoard,
			fx.As(new(shared.NotificationBoard)),
			fx.As(new(shared.NotificationSink)),
		),
	),
)

func NewCatalog(cfg config.Config, logger *slog.Logger) (*catalog.Catalog, error) {
	return catalog.Load(cfg.Catalog, logger)
}
