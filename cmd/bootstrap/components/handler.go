package components

import (
	"tour-booking-api/internal/handler"
	"tour-booking-api/internal/handler/api"
	"tour-booking-api/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewPricingHandler,
		api.NewTourHandler,
		api.NewBookingHandler,
		api.NewRateAdminHandler,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)
