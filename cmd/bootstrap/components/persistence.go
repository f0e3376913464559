package components

import (
	"rifas-api/internal/infra/db"
	"rifas-api/internal/infra/readstore"
	"rifas-api/internal/infra/uow"
	"rifas-api/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	fx.Provide(
		NewDBTX,
		// Write side goes through the unit of work; repositories are
		// constructed per transaction inside it.
		uow.NewPostgresUoW,
		// Read side queries the pool directly.
		fx.Annotate(
			readstore.NewPoolReadStore,
			fx.As(new(queries.PoolReadStore)),
		),
		fx.Annotate(
			readstore.NewReservationReadStore,
			fx.As(new(queries.ReservationReadStore)),
		),
		fx.Annotate(
			readstore.NewInviteReadStore,
			fx.As(new(queries.InviteReadStore)),
		),
		fx.Annotate(
			readstore.NewGuestReadStore,
			fx.As(new(queries.GuestReadStore)),
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
