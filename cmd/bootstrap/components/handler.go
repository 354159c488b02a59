package components

import (
	"stayops/internal/handler"
	"stayops/internal/handler/api"
	"stayops/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAvailabilityHandler,
		api.NewBookingHandler,
		api.NewStayHandler,
		api.NewReservationHandler,
		api.NewFrontDeskHandler,
		middleware.NewAuthMiddleware,
		newHandlers,
	),
	fx.Invoke(handler.NewRouter),
)

func newHandlers(
	availability *api.AvailabilityHandler,
	booking *api.BookingHandler,
	stay *api.StayHandler,
	reservation *api.ReservationHandler,
	frontDesk *api.FrontDeskHandler,
) handler.Handlers {
	return handler.Handlers{
		Availability: availability,
		Booking:      booking,
		Stay:         stay,
		Reservation:  reservation,
		FrontDesk:    frontDesk,
	}
}
