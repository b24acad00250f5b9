//go:build unit || e2e

package builder

import (
	"time"

	"storefront-backend/internal/domain/product"

	"github.com/shopspring/decimal"
)

type ProductBuilder struct {
	ID          int64
	Name        string
	Description string
	Price       decimal.Decimal
	Category    string
	Stock       int32
	Rating      float64
	Reviews     int32
	Images      []string
	Available   bool
	CreatedAt   time.Time
}

func NewProductBuilder() *ProductBuilder {
	return &ProductBuilder{
		ID:          1,
		Name:        "Ceramic Mug",
		Description: "Hand glazed, 350ml",
		Price:       decimal.RequireFromString("249.00"),
		Category:    "Kitchen",
		Stock:       12,
		Rating:      4.5,
		Reviews:     18,
		Images:      []string{"mug-front.jpg", "mug-side.jpg"},
		Available:   true,
		CreatedAt:   time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}

func (p *ProductBuilder) With(mutate func(*ProductBuilder)) *ProductBuilder {
	mutate(p)
	return p
}

func (p *ProductBuilder) BuildParams() product.Params {
	return product.Params{
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price,
		Category:    p.Category,
		Stock:       p.Stock,
		Rating:      p.Rating,
		Reviews:     p.Reviews,
		Images:      p.Images,
		Available:   p.Available,
	}
}

func (p *ProductBuilder) BuildDomain() *product.Product {
	cover, gallery := product.SplitImages(p.Images)
	return product.ReconstructProduct(
		p.ID, p.Name, p.Description, p.Price, p.Category,
		p.Stock, p.Rating, p.Reviews, cover, gallery, p.Available,
		p.CreatedAt, p.CreatedAt,
	)
}
