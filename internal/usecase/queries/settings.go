package queries

import (
	"context"
	"log/slog"

	"storefront-backend/internal/infra"
	"storefront-backend/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

const ShippingRateKey = "shipping_rate_per_km"

var DefaultShippingRate = decimal.NewFromFloat(5.0)

type SettingsReadStore interface {
	Get(ctx context.Context, key string) (string, error)
}

type SettingsQueries interface {
	// ShippingRate falls back to DefaultShippingRate when the setting is
	// absent or unparsable.
	ShippingRate(ctx context.Context) (decimal.Decimal, error)
}

type settingsQueriesImpl struct {
	readStore SettingsReadStore
}

func NewSettingsQueries(readStore SettingsReadStore) SettingsQueries {
	return &settingsQueriesImpl{readStore: readStore}
}

func (q *settingsQueriesImpl) ShippingRate(ctx context.Context) (decimal.Decimal, error) {
	raw, err := q.readStore.Get(ctx, ShippingRateKey)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return DefaultShippingRate, nil
		}
		return decimal.Zero, errs.Wrap(err, "failed to read shipping rate")
	}
	rate, err := decimal.NewFromString(raw)
	if err != nil {
		slog.WarnContext(ctx, "Unparsable shipping rate, using default",
			slog.String("value", raw))
		return DefaultShippingRate, nil
	}
	return rate, nil
}
