package components

import (
	"castle-rentals/internal/handler"
	"castle-rentals/internal/handler/api"
	"castle-rentals/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewCatalogHandler,
		api.NewCartHandler,
		api.NewQuoteHandler,
		api.NewAdminHandler,
		middleware.NewAuthMiddleware,
		middleware.NewSessionMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)
