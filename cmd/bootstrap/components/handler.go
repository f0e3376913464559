package components

import (
	"rifas-api/internal/handler"
	"rifas-api/internal/handler/api"
	"rifas-api/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewPoolHandler,
		api.NewReservationHandler,
		api.NewInviteHandler,
		api.NewGuestHandler,
		api.NewCheckinHandler,
		middleware.NewAuthMiddleware,
		NewHandlers,
	),
	fx.Invoke(handler.NewRouter),
)

func NewHandlers(
	auth *api.AuthHandler,
	pool *api.PoolHandler,
	reservation *api.ReservationHandler,
	invite *api.InviteHandler,
	guest *api.GuestHandler,
	checkin *api.CheckinHandler,
) handler.Handlers {
	return handler.Handlers{
		Auth:        auth,
		Pool:        pool,
		Reservation: reservation,
		Invite:      invite,
		Guest:       guest,
		Checkin:     checkin,
	}
}
