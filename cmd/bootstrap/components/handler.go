package components

import (
	"storefront-backend/internal/handler"
	"storefront-backend/internal/handler/api"
	"storefront-backend/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewProductHandler,
		api.NewCouponHandler,
		api.NewOrderHandler,
		api.NewCartHandler,
		api.NewSettingsHandler,
		api.NewUserHandler,
		api.NewAdminHandler,
		api.NewFeedbackHandler,
		api.NewPaymentHandler,
		newHandlers,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)

type handlerParams struct {
	fx.In

	Product  *api.ProductHandler
	Coupon   *api.CouponHandler
	Order    *api.OrderHandler
	Cart     *api.CartHandler
	Settings *api.SettingsHandler
	User     *api.UserHandler
	Admin    *api.AdminHandler
	Feedback *api.FeedbackHandler
	Payment  *api.PaymentHandler
}

func newHandlers(p handlerParams) handler.Handlers {
	return handler.Handlers{
		Product:  p.Product,
		Coupon:   p.Coupon,
		Order:    p.Order,
		Cart:     p.Cart,
		Settings: p.Settings,
		User:     p.User,
		Admin:    p.Admin,
		Feedback: p.Feedback,
		Payment:  p.Payment,
	}
}
