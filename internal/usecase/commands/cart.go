package commands

import (
	"context"
	"log/slog"

	"storefront-backend/internal/domain/cart"
	"storefront-backend/internal/infra"
	"storefront-backend/internal/pkg/clock"
	"storefront-backend/internal/pkg/config"
	"storefront-backend/internal/pkg/errs"
	"storefront-backend/internal/pkg/timebox"
	"storefront-backend/internal/usecase/shared"
)

var (
	ErrCartUserNotFound  = errs.Sentinel("User not found", errs.ErrNotFound)
	ErrCartOwnerRequired = errs.WithClass(cart.ErrOwnerRequired, errs.ErrValidation)
)

type CartCommands interface {
	// Save writes the durable cart, then mirrors it to the cache within the
	// configured budget. Only the durable write decides success.
	Save(ctx context.Context, email string, items cart.Items) error
}

type cartCommandsImpl struct {
	uow    shared.UnitOfWork
	mirror shared.CartMirror
	clock  clock.Clock
	cfg    config.CartConfig
}

func NewCartCommands(uow shared.UnitOfWork, mirror shared.CartMirror, clk clock.Clock, cfg config.CartConfig) CartCommands {
	return &cartCommandsImpl{
		uow:    uow,
		mirror: mirror,
		clock:  clk,
		cfg:    cfg,
	}
}

func (uc *cartCommandsImpl) Save(ctx context.Context, email string, items cart.Items) error {
	owner, err := cart.NewOwner(email)
	if err != nil {
		return ErrCartOwnerRequired
	}
	if items == nil {
		items = cart.Empty()
	}
	savedAt := uc.clock.Now()

	if err := uc.uow.NonTx().Users().SaveCart(ctx, owner, items, savedAt); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrCartUserNotFound
		}
		return errs.Wrap(err, "failed to save cart")
	}

	err = timebox.Do(ctx, uc.cfg.MirrorTimeout, func(ctx context.Context) error {
		return uc.mirror.Put(ctx, owner, items, savedAt)
	})
	if err != nil {
		slog.WarnContext(ctx, "Cart mirror write failed",
			slog.String("owner", owner.String()),
			slog.String("error_kind", errs.Class(err).Error()),
			slog.String("error", err.Error()))
	}
	return nil
}
