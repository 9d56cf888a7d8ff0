package components

import (
	"castle-rentals/internal/domain/pricing"
	"castle-rentals/internal/pkg/clock"
	"castle-rentals/internal/usecase/commands"
	"castle-rentals/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseCommandsModule,
	usecaseQueriesModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	fx.Annotate(
		pricing.NewDegressivePolicy,
		fx.As(new(pricing.Policy)),
	),
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewSelectionCommands,
		commands.NewQuoteCommands,
		commands.NewReorderCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewCatalogQueries,
	),
)
