package commands

import (
	"context"

	"storefront-backend/internal/domain/product"
	"storefront-backend/internal/infra"
	"storefront-backend/internal/pkg/errs"
	"storefront-backend/internal/pkg/patch"
	"storefront-backend/internal/usecase/shared"

	"github.com/shopspring/decimal"
)

// Defaults applied to new products that omit these fields.
const (
	DefaultProductStock  int32   = 100
	DefaultProductRating float64 = 4.5
)

var (
	ErrProductNotFound      = errs.Sentinel("product not found", errs.ErrNotFound)
	ErrProductFieldRequired = errs.Sentinel("name and price are required", errs.ErrValidation)
)

// ProductInput carries a create or a partial update. Images, when present,
// replaces Image and ExtraImages.
type ProductInput struct {
	Name        *string
	Description *string
	Price       *decimal.Decimal
	Category    *string
	Stock       *int32
	Rating      *float64
	Reviews     *int32
	Images      *[]string
	Image       *string
	ExtraImages *[]string
	IsAvailable *bool
}

func (in ProductInput) empty() bool {
	return in.Name == nil && in.Description == nil && in.Price == nil && in.Category == nil &&
		in.Stock == nil && in.Rating == nil && in.Reviews == nil && in.Images == nil &&
		in.Image == nil && in.ExtraImages == nil && in.IsAvailable == nil
}

func (in ProductInput) touchesImages() bool {
	return in.Images != nil || in.Image != nil || in.ExtraImages != nil
}

func (in ProductInput) apply(p product.Params) product.Params {
	p.Name = patch.Coalesce(in.Name, p.Name)
	p.Description = patch.Coalesce(in.Description, p.Description)
	p.Price = patch.Coalesce(in.Price, p.Price)
	p.Category = patch.Coalesce(in.Category, p.Category)
	p.Stock = patch.Coalesce(in.Stock, p.Stock)
	p.Rating = patch.Coalesce(in.Rating, p.Rating)
	p.Reviews = patch.Coalesce(in.Reviews, p.Reviews)
	p.Available = patch.Coalesce(in.IsAvailable, p.Available)
	if in.touchesImages() {
		var images []string
		if in.Images != nil {
			images = *in.Images
			if images == nil {
				images = []string{}
			}
		}
		p.Images = product.ComposeImages(images, in.Image, patch.Coalesce(in.ExtraImages, nil))
	}
	return p
}

type ProductCommands interface {
	Create(ctx context.Context, in ProductInput) (*product.Product, error)
	Update(ctx context.Context, id int64, in ProductInput) (*product.Product, error)
	Delete(ctx context.Context, id int64) error
}

type productCommandsImpl struct {
	uow shared.UnitOfWork
}

func NewProductCommands(uow shared.UnitOfWork) ProductCommands {
	return &productCommandsImpl{uow: uow}
}

func (uc *productCommandsImpl) Create(ctx context.Context, in ProductInput) (*product.Product, error) {
	if in.Name == nil || in.Price == nil {
		return nil, ErrProductFieldRequired
	}
	p, err := product.NewProduct(in.apply(product.Params{
		Stock:     DefaultProductStock,
		Rating:    DefaultProductRating,
		Available: true,
	}))
	if err != nil {
		return nil, errs.Validation(err)
	}

	created, err := uc.uow.NonTx().Products().Create(ctx, p)
	if err != nil {
		return nil, errs.Wrap(err, "failed to create product")
	}
	return created, nil
}

func (uc *productCommandsImpl) Update(ctx context.Context, id int64, in ProductInput) (*product.Product, error) {
	if in.empty() {
		return nil, ErrNoFieldsToUpdate
	}

	var updated *product.Product
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		current, err := tx.Products().FindByID(ctx, id)
		if err != nil {
			return mapProductErr(err, "failed to load product")
		}
		next, err := current.Revise(in.apply(current.Params()))
		if err != nil {
			return errs.Validation(err)
		}
		updated, err = tx.Products().Update(ctx, next)
		if err != nil {
			return mapProductErr(err, "failed to update product")
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func (uc *productCommandsImpl) Delete(ctx context.Context, id int64) error {
	if err := uc.uow.NonTx().Products().Delete(ctx, id); err != nil {
		return mapProductErr(err, "failed to delete product")
	}
	return nil
}

func mapProductErr(err error, msg string) error {
	if infra.IsKind(err, infra.KindNotFound) {
		return ErrProductNotFound
	}
	return errs.Wrap(err, msg)
}
