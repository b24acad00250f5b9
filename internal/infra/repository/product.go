package repository

import (
	"context"

	"storefront-backend/internal/domain/product"
	"storefront-backend/internal/infra"
	"storefront-backend/internal/infra/converter"
	sqlc "storefront-backend/internal/infra/sqlc/generated"
	"storefront-backend/internal/pkg/pgconv"
)

type ProductWriteQueries interface {
	GetProductByID(ctx context.Context, db sqlc.DBTX, id int64) (sqlc.Products, error)
	CreateProduct(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateProductParams) (sqlc.Products, error)
	UpdateProduct(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateProductParams) (sqlc.Products, error)
	DeleteProduct(ctx context.Context, db sqlc.DBTX, id int64) (int64, error)
}

type ProductRepository struct {
	queries ProductWriteQueries
	db      sqlc.DBTX
}

func NewProductRepository(queries ProductWriteQueries, db sqlc.DBTX) *ProductRepository {
	return &ProductRepository{
		queries: queries,
		db:      db,
	}
}

func (r *ProductRepository) FindByID(ctx context.Context, id int64) (*product.Product, error) {
	row, err := r.queries.GetProductByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("product not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get product", err)
	}
	return toProduct(row)
}

func (r *ProductRepository) Create(ctx context.Context, p *product.Product) (*product.Product, error) {
	params, err := converter.ProductToCreateParams(p)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to encode product images", err)
	}
	row, err := r.queries.CreateProduct(ctx, r.db, params)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to create product", err)
	}
	return toProduct(row)
}

func (r *ProductRepository) Update(ctx context.Context, p *product.Product) (*product.Product, error) {
	params, err := converter.ProductToUpdateParams(p)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to encode product images", err)
	}
	row, err := r.queries.UpdateProduct(ctx, r.db, params)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("product not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to update product", err)
	}
	return toProduct(row)
}

func (r *ProductRepository) Delete(ctx context.Context, id int64) error {
	n, err := r.queries.DeleteProduct(ctx, r.db, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete product", err)
	}
	if n == 0 {
		return infra.WrapRepoErr("product not found", nil, infra.KindNotFound)
	}
	return nil
}

func toProduct(row sqlc.Products) (*product.Product, error) {
	p, err := converter.ProductFromRow(row)
	if err != nil {
		return nil, infra.WrapRepoErr("corrupt product row", err)
	}
	return p, nil
}
