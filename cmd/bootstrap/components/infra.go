package components

import (
	"storefront-backend/internal/infra/cache"
	"storefront-backend/internal/infra/notifier"
	"storefront-backend/internal/infra/qrcode"
	"storefront-backend/internal/pkg/clock"
	"storefront-backend/internal/pkg/config"
	"storefront-backend/internal/usecase/queries"
	"storefront-backend/internal/usecase/shared"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

var InfraModule = fx.Module("infra",
	fx.Provide(
		NewCartMirror,
		NewClock,
		notifier.New,
		fx.Annotate(
			qrcode.NewEncoder,
			fx.As(new(queries.QREncoder)),
		),
	),
)

func NewCartMirror(client *redis.Client, cfg config.Config) shared.CartMirror {
	if client == nil {
		return cache.NopCartMirror{}
	}
	return cache.NewRedisCartMirror(client, cfg.Cart)
}

// NewClock reads time in the store time zone so coupon expiry compares
// calendar dates the way the storefront sees them.
func NewClock(cfg config.Config) clock.Clock {
	return clock.NewRealClockIn(cfg.Store.Location())
}
