package readstore

import (
	"context"

	"storefront-backend/internal/domain/cart"
	"storefront-backend/internal/infra"
	sqlc "storefront-backend/internal/infra/sqlc/generated"
	"storefront-backend/internal/pkg/pgconv"
)

type CartViewQueries interface {
	GetUserCartByEmail(ctx context.Context, db sqlc.DBTX, email string) (sqlc.GetUserCartByEmailRow, error)
}

type CartReadStore struct {
	queries CartViewQueries
	db      sqlc.DBTX
}

func NewCartReadStore(queries CartViewQueries, db sqlc.DBTX) *CartReadStore {
	return &CartReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *CartReadStore) FindByOwner(ctx context.Context, owner cart.Owner) (string, error) {
	row, err := r.queries.GetUserCartByEmail(ctx, r.db, owner.String())
	if err != nil {
		if pgconv.IsNoRows(err) {
			return "", infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return "", infra.WrapRepoErr("failed to get cart", err)
	}
	return row.Cart, nil
}
