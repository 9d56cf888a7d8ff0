package components

import (
	"castle-rentals/internal/infra/readstore"
	repo_impl "castle-rentals/internal/infra/repository"
	"castle-rentals/internal/usecase/commands"
	"castle-rentals/internal/usecase/queries"

	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		fx.Annotate(
			repo_impl.NewCatalogRepository,
			fx.As(new(commands.CatalogRepository)),
		),
		fx.Annotate(
			repo_impl.NewPhotoRepository,
			fx.As(new(commands.PhotoRepository)),
		),
		fx.Annotate(
			repo_impl.NewNotificationRelay,
			fx.As(new(commands.NotificationRelay)),
		),
		// Read-side store for catalog queries
		fx.Annotate(
			readstore.NewCatalogReadStore,
			fx.As(new(queries.CatalogReadStore)),
		),
	),
)
