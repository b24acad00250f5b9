package commands

import (
	"context"

	"storefront-backend/internal/pkg/errs"
	"storefront-backend/internal/usecase/queries"
	"storefront-backend/internal/usecase/shared"

	"github.com/shopspring/decimal"
)

var (
	ErrRateRequired = errs.Sentinel("Rate is required", errs.ErrValidation)
	ErrNegativeRate = errs.Sentinel("Rate cannot be negative", errs.ErrValidation)
)

type SettingsCommands interface {
	SetShippingRate(ctx context.Context, rate decimal.Decimal) (decimal.Decimal, error)
}

type settingsCommandsImpl struct {
	uow shared.UnitOfWork
}

func NewSettingsCommands(uow shared.UnitOfWork) SettingsCommands {
	return &settingsCommandsImpl{uow: uow}
}

func (uc *settingsCommandsImpl) SetShippingRate(ctx context.Context, rate decimal.Decimal) (decimal.Decimal, error) {
	if rate.IsNegative() {
		return decimal.Zero, ErrNegativeRate
	}
	if err := uc.uow.NonTx().Settings().Put(ctx, queries.ShippingRateKey, rate.String()); err != nil {
		return decimal.Zero, errs.Wrap(err, "failed to save shipping rate")
	}
	return rate, nil
}
