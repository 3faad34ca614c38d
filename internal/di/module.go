package di

import (
	"github.com/mkazlauskas/shoplt/internal/adapter/payment"
	"github.com/mkazlauskas/shoplt/internal/app"
	"github.com/mkazlauskas/shoplt/internal/config"
	"github.com/mkazlauskas/shoplt/internal/logger"
	"github.com/mkazlauskas/shoplt/internal/pkg/auth"
	"github.com/mkazlauskas/shoplt/internal/server/http/router"
	"github.com/mkazlauskas/shoplt/internal/storage/postgres"
	"github.com/mkazlauskas/shoplt/internal/usecase"
	"go.uber.org/fx"
)

func Module(opts ...fx.Option) fx.Option {
	modules := []fx.Option{
		config.Module,
		logger.Module,
		auth.Module,
		postgres.Module,
		payment.Module,
		usecase.Module,
		fx.Provide(func(client payment.Client) app.PaymentProvider { return client }),
		router.Module,
		app.Module,
	}
	modules = append(modules, opts...)
	return fx.Options(modules...)
}
