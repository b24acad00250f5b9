package queries

import (
	"context"

	"storefront-backend/internal/infra"
	"storefront-backend/internal/pkg/errs"
)

var ErrProductNotFound = errs.Sentinel("product not found", errs.ErrNotFound)

type ProductReadStore interface {
	List(ctx context.Context) ([]*ProductView, error)
	FindByID(ctx context.Context, id int64) (*ProductView, error)
}

type ProductQueries interface {
	List(ctx context.Context) ([]*ProductView, error)
	Get(ctx context.Context, id int64) (*ProductView, error)
}

type productQueriesImpl struct {
	readStore ProductReadStore
}

func NewProductQueries(readStore ProductReadStore) ProductQueries {
	return &productQueriesImpl{readStore: readStore}
}

func (q *productQueriesImpl) List(ctx context.Context) ([]*ProductView, error) {
	products, err := q.readStore.List(ctx)
	if err != nil {
		return nil, errs.Wrap(err, "failed to list products")
	}
	return products, nil
}

func (q *productQueriesImpl) Get(ctx context.Context, id int64) (*ProductView, error) {
	p, err := q.readStore.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, errs.Wrap(err, "failed to get product")
	}
	return p, nil
}
