package components

import (
	"stayops/internal/infra/db"
	"stayops/internal/infra/images"
	"stayops/internal/infra/readstore"
	"stayops/internal/infra/uow"
	"stayops/internal/usecase/queries"
	"stayops/internal/usecase/shared"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	fx.Provide(
		NewDBTX,
		// UnitOfWork
		uow.NewPostgresUoW,
		// Read stores
		fx.Annotate(
			readstore.NewSettingsReadStore,
			fx.As(new(shared.SettingsReader)),
		),
		fx.Annotate(
			readstore.NewAvailabilityReadStore,
			fx.As(new(queries.AvailabilityReads)),
		),
		fx.Annotate(
			readstore.NewReservationReadStore,
			fx.As(new(queries.ReservationViewRepo)),
		),
		fx.Annotate(
			readstore.NewFacilityReadStore,
			fx.As(new(queries.FacilityViewRepo)),
		),
		fx.Annotate(
			readstore.NewRoomBoardReadStore,
			fx.As(new(queries.RoomBoardRepo)),
		),
		// Image storage
		fx.Annotate(
			images.NewFilesystemStore,
			fx.As(new(shared.ImageStore)),
		),
	),
)

func NewDBTX(pool *pgxpool.Pool) db.DBTX {
	return pool
}
