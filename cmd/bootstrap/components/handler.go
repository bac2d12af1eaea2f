package components

import (
	"repair-storefront/internal/handler"
	"repair-storefront/internal/handler/api"
	"repair-storefront/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewCatalogHandler,
		api.NewQuoteHandler,
		api.NewModalHandler,
		api.NewBookingHandler,
		api.NewAuthHandler,
		middleware.NewSessionMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)
