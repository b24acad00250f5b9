package components

import (
	"storefront-backend/internal/domain/order"
	"storefront-backend/internal/pkg/config"
	"storefront-backend/internal/usecase"
	"storefront-backend/internal/usecase/commands"
	"storefront-backend/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseValidatorsModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	fx.Annotate(
		order.NewNumberGenerator,
		fx.As(new(order.NumberGenerator)),
	),
	func(cfg config.Config) config.CartConfig { return cfg.Cart },
	func(cfg config.Config) config.AdminConfig { return cfg.Admin },
	func(cfg config.Config) config.PaymentConfig { return cfg.Payment },
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewProductCommands,
		commands.NewCouponCommands,
		commands.NewOrderCommands,
		commands.NewCartCommands,
		commands.NewSettingsCommands,
		commands.NewUserCommands,
		commands.NewAdminCommands,
		commands.NewFeedbackCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewProductQueries,
		queries.NewCouponQueries,
		queries.NewOrderQueries,
		queries.NewCartQueries,
		queries.NewSettingsQueries,
		queries.NewPaymentQueries,
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewTokenValidator,
	),
)
