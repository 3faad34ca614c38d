package router

import (
	"go.uber.org/fx"

	"github.com/mkazlauskas/shoplt/internal/app"
	"github.com/mkazlauskas/shoplt/internal/server/http/handlers"
)

// Module registers HTTP router construction for fx runtime.
var Module = fx.Options(
	fx.Provide(func(facade *app.StoreFacade) handlers.StoreFacade { return facade }),
	fx.Provide(Setup),
)
