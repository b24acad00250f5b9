package queries

import (
	"context"
	"log/slog"

	"storefront-backend/internal/domain/cart"
	"storefront-backend/internal/infra"
	"storefront-backend/internal/pkg/config"
	"storefront-backend/internal/pkg/errs"
	"storefront-backend/internal/pkg/timebox"
	"storefront-backend/internal/usecase/shared"
)

var ErrCartOwnerRequired = errs.WithClass(cart.ErrOwnerRequired, errs.ErrValidation)

type CartReadStore interface {
	// FindByOwner returns the raw stored cart column.
	FindByOwner(ctx context.Context, owner cart.Owner) (string, error)
}

type CartQueries interface {
	// Load prefers the replicated cache and falls back to the durable store
	// when the cache misses, fails or runs past its budget.
	Load(ctx context.Context, email string) (cart.Items, error)
}

type cartQueriesImpl struct {
	readStore CartReadStore
	mirror    shared.CartMirror
	cfg       config.CartConfig
}

func NewCartQueries(readStore CartReadStore, mirror shared.CartMirror, cfg config.CartConfig) CartQueries {
	return &cartQueriesImpl{
		readStore: readStore,
		mirror:    mirror,
		cfg:       cfg,
	}
}

type mirrorHit struct {
	items cart.Items
	found bool
}

func (q *cartQueriesImpl) Load(ctx context.Context, email string) (cart.Items, error) {
	owner, err := cart.NewOwner(email)
	if err != nil {
		return nil, ErrCartOwnerRequired
	}

	hit, err := timebox.Run(ctx, q.cfg.MirrorTimeout, func(ctx context.Context) (mirrorHit, error) {
		items, found, err := q.mirror.Get(ctx, owner)
		return mirrorHit{items: items, found: found}, err
	})
	switch {
	case err != nil:
		slog.WarnContext(ctx, "Cart mirror read failed, using durable store",
			slog.String("owner", owner.String()),
			slog.String("error", err.Error()))
	case hit.found:
		if hit.items == nil {
			return cart.Empty(), nil
		}
		return hit.items, nil
	}

	raw, err := q.readStore.FindByOwner(ctx, owner)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return cart.Empty(), nil
		}
		return nil, errs.Wrap(err, "failed to load cart")
	}

	items, ok := cart.DecodeOrEmpty(raw)
	if !ok {
		slog.WarnContext(ctx, "Stored cart is malformed, returning empty cart",
			slog.String("owner", owner.String()))
	}
	return items, nil
}
