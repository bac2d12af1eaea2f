package components

import (
	"repair-storefront/internal/domain/modal"
	"repair-storefront/internal/usecase/commands"
	"repair-storefront/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseCommandsModule,
	usecaseQueriesModule,
)

var usecaseBaseOption = fx.Provide(
	modal.NewRegistry,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewQuoteCommands,
		commands.NewModalCommands,
		commands.NewBookingCommands,
		commands.NewAuthCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewCatalogQueries,
		queries.NewQuoteQueries,
		queries.NewModalQueries,
	),
)
