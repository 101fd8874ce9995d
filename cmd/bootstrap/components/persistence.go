package components

import (
	"fairway/internal/infra/db"
	"fairway/internal/infra/readstore"
	"fairway/internal/infra/repository"
	"fairway/internal/infra/uow"
	"fairway/internal/usecase/queries"
	"fairway/internal/usecase/shared"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	fx.Provide(
		NewDBTX,
		uow.NewPostgresUoW,
		fx.Annotate(
			repository.NewSlotRepository,
			fx.As(new(shared.SlotRepository)),
		),
		fx.Annotate(
			repository.NewRequestLogRepository,
			fx.As(new(shared.RequestLogRepository)),
		),
		fx.Annotate(
			repository.NewBookkeepingRepository,
			fx.As(new(shared.BookkeepingRepository)),
		),
		fx.Annotate(
			readstore.NewAvailabilityReadStore,
			fx.As(new(queries.SlotReadStore)),
		),
		fx.Annotate(
			readstore.NewBookkeepingReadStore,
			fx.As(new(queries.CourseRequestReadStore)),
		),
	),
)

func NewDBTX(pool *pgxpool.Pool) db.DBTX {
	return pool
}
