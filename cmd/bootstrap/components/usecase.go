package components

import (
	"log/slog"

	"fairway/internal/domain/course"
	"fairway/internal/infra/provider"
	"fairway/internal/pkg/clock"
	"fairway/internal/pkg/config"
	"fairway/internal/usecase/commands"
	"fairway/internal/usecase/queries"
	"fairway/internal/usecase/shared"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseCommandsModule,
	usecaseQueriesModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewReconcileUseCase,
		commands.NewBookkeepingUseCase,
		NewSweepCommands,
		NewScrapeCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		NewAvailabilityQueries,
		queries.NewBookkeepingQueries,
	),
)

func NewSweepCommands(uowSvc shared.UnitOfWork, slots shared.SlotRepository, clk clock.Clock, cfg config.Config, logger *slog.Logger) (commands.SweepCommands, error) {
	return commands.NewSweepUseCase(uowSvc, slots, clk, cfg.Query.TimeZone, logger)
}

func NewScrapeCommands(adapters []provider.Adapter, catalog course.Catalog, reconcile commands.ReconcileCommands, clk clock.Clock, cfg config.Config, logger *slog.Logger) commands.ScrapeCommands {
	return commands.NewScrapeUseCase(adapters, catalog, reconcile, clk, logger, cfg.Scrape.DaysAhead, cfg.Scrape.MaxInFlight)
}

func NewAvailabilityQueries(store queries.SlotReadStore, clk clock.Clock, cfg config.Config) (queries.AvailabilityQueries, error) {
	return queries.NewAvailabilityQueries(store, clk, cfg.Query.TimeZone)
}
