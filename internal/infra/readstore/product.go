package readstore

import (
	"context"

	"storefront-backend/internal/domain/product"
	"storefront-backend/internal/infra"
	"storefront-backend/internal/infra/converter"
	sqlc "storefront-backend/internal/infra/sqlc/generated"
	"storefront-backend/internal/pkg/pgconv"
	"storefront-backend/internal/usecase/queries"
)

type ProductViewQueries interface {
	ListProducts(ctx context.Context, db sqlc.DBTX) ([]sqlc.Products, error)
	GetProductByID(ctx context.Context, db sqlc.DBTX, id int64) (sqlc.Products, error)
}

type ProductReadStore struct {
	queries ProductViewQueries
	db      sqlc.DBTX
}

func NewProductReadStore(queries ProductViewQueries, db sqlc.DBTX) *ProductReadStore {
	return &ProductReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *ProductReadStore) List(ctx context.Context) ([]*queries.ProductView, error) {
	rows, err := r.queries.ListProducts(ctx, r.db)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list products", err)
	}
	views := make([]*queries.ProductView, 0, len(rows))
	for _, row := range rows {
		v, err := toProductView(row)
		if err != nil {
			return nil, err
		}
		views = append(views, v)
	}
	return views, nil
}

func (r *ProductReadStore) FindByID(ctx context.Context, id int64) (*queries.ProductView, error) {
	row, err := r.queries.GetProductByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("product not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get product view by id", err)
	}
	return toProductView(row)
}

func toProductView(row sqlc.Products) (*queries.ProductView, error) {
	price, err := pgconv.DecimalFromNumeric(row.Price)
	if err != nil {
		return nil, infra.WrapRepoErr("corrupt product price", err)
	}
	return &queries.ProductView{
		ID:          row.ID,
		Name:        row.Name,
		Description: row.Description,
		Price:       price,
		Category:    row.Category,
		Stock:       row.Stock,
		Rating:      row.Rating,
		Reviews:     row.Reviews,
		Images:      product.JoinImages(row.Image, converter.DecodeGallery(row.ExtraImages)),
		IsAvailable: row.IsAvailable,
		CreatedAt:   pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt:   pgconv.TimeFromPgtype(row.UpdatedAt),
	}, nil
}
