package components

import (
	"tour-booking-api/internal/infra/db"
	"tour-booking-api/internal/infra/readstore"
	"tour-booking-api/internal/infra/uow"
	"tour-booking-api/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	fx.Provide(
		NewDBTX,
		// UnitOfWork builds its own write repositories per transaction
		uow.NewPostgresUoW,
		fx.Annotate(
			readstore.NewRateConfigReadStore,
			fx.As(new(queries.RateConfigReadStore)),
		),
		fx.Annotate(
			readstore.NewRateAdminReadStore,
			fx.As(new(queries.RateAdminReadStore)),
		),
		fx.Annotate(
			readstore.NewTourReadStore,
			fx.As(new(queries.TourReadStore)),
		),
		fx.Annotate(
			readstore.NewBookingReadStore,
			fx.As(new(queries.BookingReadStore)),
		),
		fx.Annotate(
			readstore.NewUserReadStore,
			fx.As(new(queries.UserReadStore)),
		),
	),
)

func NewDBTX(pool *pgxpool.Pool) db.DBTX {
	return pool
}
