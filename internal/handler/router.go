package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"storefront-backend/internal/handler/api"
	"storefront-backend/internal/handler/middleware"
	"storefront-backend/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

// Handlers groups every API handler for route registration.
type Handlers struct {
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

func NewRouter(engine *gin.Engine, cfg config.Config, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, h, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(nil, cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	admin := authMiddleware.RequireAdmin()

	apiGroup := engine.Group("/api")
	{
		addRoutes(apiGroup.Group("/products"), []route{
			{Method: http.MethodGet, Path: "", Handler: h.Product.List},
			{Method: http.MethodGet, Path: "/:id", Handler: h.Product.Get},
			{Method: http.MethodPost, Path: "", Handler: h.Product.Create, Mw: []gin.HandlerFunc{admin}},
			{Method: http.MethodPut, Path: "/:id", Handler: h.Product.Update, Mw: []gin.HandlerFunc{admin}},
			{Method: http.MethodDelete, Path: "/:id", Handler: h.Product.Delete, Mw: []gin.HandlerFunc{admin}},
		})

		addRoutes(apiGroup.Group("/coupons"), []route{
			{Method: http.MethodPost, Path: "/validate", Handler: h.Coupon.Validate},
		})

		addRoutes(apiGroup.Group("/orders"), []route{
			{Method: http.MethodPost, Path: "", Handler: h.Order.Create},
			{Method: http.MethodGet, Path: "/track/:orderNumber", Handler: h.Order.Track},
			{Method: http.MethodGet, Path: "/user/:email", Handler: h.Order.ListForCustomer},
			{Method: http.MethodGet, Path: "", Handler: h.Order.List, Mw: []gin.HandlerFunc{admin}},
			{Method: http.MethodPost, Path: "/reset", Handler: h.Order.Reset, Mw: []gin.HandlerFunc{admin}},
			{Method: http.MethodPut, Path: "/:orderNumber/status", Handler: h.Order.UpdateStatus, Mw: []gin.HandlerFunc{admin}},
			{Method: http.MethodDelete, Path: "/:orderNumber", Handler: h.Order.Delete, Mw: []gin.HandlerFunc{admin}},
		})

		addRoutes(apiGroup.Group("/cart"), []route{
			{Method: http.MethodPost, Path: "/save", Handler: h.Cart.Save},
			{Method: http.MethodGet, Path: "/load", Handler: h.Cart.Load},
		})

		addRoutes(apiGroup.Group("/settings"), []route{
			{Method: http.MethodGet, Path: "/shipping", Handler: h.Settings.GetShipping},
			{Method: http.MethodPost, Path: "/shipping", Handler: h.Settings.SetShipping, Mw: []gin.HandlerFunc{admin}},
		})

		addRoutes(apiGroup.Group("/users"), []route{
			{Method: http.MethodPost, Path: "/register", Handler: h.User.Register},
			{Method: http.MethodPost, Path: "/login", Handler: h.User.Login},
			{Method: http.MethodPost, Path: "/google-login", Handler: h.User.SyncIdentity},
		})

		adminGroup := apiGroup.Group("/admin")
		{
			addRoutes(adminGroup, []route{
				{Method: http.MethodPost, Path: "/login", Handler: h.Admin.Login},
				{Method: http.MethodPost, Path: "/logout", Handler: h.Admin.Logout},
			})

			coupons := adminGroup.Group("/coupons")
			coupons.Use(admin)
			addRoutes(coupons, []route{
				{Method: http.MethodGet, Path: "", Handler: h.Coupon.List},
				{Method: http.MethodPost, Path: "", Handler: h.Coupon.Create},
				{Method: http.MethodPut, Path: "/:id", Handler: h.Coupon.Update},
				{Method: http.MethodDelete, Path: "/:id", Handler: h.Coupon.Delete},
			})
		}

		addRoutes(apiGroup, []route{
			{Method: http.MethodPost, Path: "/feedback", Handler: h.Feedback.Submit},
			{Method: http.MethodGet, Path: "/payment/qrcode", Handler: h.Payment.QRCode},
		})
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
