//go:build unit

package product_test

import (
	"testing"

	"storefront-backend/internal/domain/product"
	"storefront-backend/tests/common/builder"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewProduct(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		p, err := product.NewProduct(product.Params{Name: " Mug ", Price: decimal.RequireFromString("9.50")})
		require.NoError(t, err)
		assert.Equal(t, "Mug", p.Name())
		assert.Equal(t, product.DefaultCategory, p.Category())
		assert.Empty(t, p.Images())
	})

	t.Run("validation", func(t *testing.T) {
		tests := []struct {
			name   string
			mutate func(*builder.ProductBuilder)
			errIs  error
		}{
			{name: "blank name", mutate: func(b *builder.ProductBuilder) { b.Name = "" }, errIs: product.ErrNameRequired},
			{name: "negative price", mutate: func(b *builder.ProductBuilder) { b.Price = decimal.NewFromInt(-1) }, errIs: product.ErrNegativePrice},
			{name: "negative stock", mutate: func(b *builder.ProductBuilder) { b.Stock = -1 }, errIs: product.ErrNegativeStock},
			{name: "rating above five", mutate: func(b *builder.ProductBuilder) { b.Rating = 5.1 }, errIs: product.ErrRatingOutRange},
			{name: "negative reviews", mutate: func(b *builder.ProductBuilder) { b.Reviews = -3 }, errIs: product.ErrNegativeCount},
			{name: "free product is fine", mutate: func(b *builder.ProductBuilder) { b.Price = decimal.Zero }},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				p, err := product.NewProduct(builder.NewProductBuilder().With(tt.mutate).BuildParams())
				if tt.errIs != nil {
					assert.ErrorIs(t, err, tt.errIs)
					assert.Nil(t, p)
					return
				}
				require.NoError(t, err)
			})
		}
	})
}

func TestImages(t *testing.T) {
	t.Run("first non-blank entry becomes the cover", func(t *testing.T) {
		cover, gallery := product.SplitImages([]string{"  ", " a.jpg ", "", "b.jpg", "c.jpg"})
		assert.Equal(t, "a.jpg", cover)
		assert.Equal(t, []string{"b.jpg", "c.jpg"}, gallery)
	})

	t.Run("round trip keeps order", func(t *testing.T) {
		in := []string{"a.jpg", "b.jpg", "c.jpg"}
		p, err := product.NewProduct(product.Params{Name: "Lamp", Images: in})
		require.NoError(t, err)
		assert.Equal(t, in, p.Images())
		assert.Equal(t, "a.jpg", p.Cover())
		assert.Equal(t, []string{"b.jpg", "c.jpg"}, p.Gallery())
	})

	t.Run("explicit list wins over legacy fields", func(t *testing.T) {
		cover := "legacy.jpg"
		got := product.ComposeImages([]string{"new.jpg"}, &cover, []string{"old.jpg"})
		assert.Equal(t, []string{"new.jpg"}, got)
	})

	t.Run("legacy fields are joined", func(t *testing.T) {
		cover := " legacy.jpg "
		got := product.ComposeImages(nil, &cover, []string{"g1.jpg", "g2.jpg"})
		assert.Equal(t, []string{"legacy.jpg", "g1.jpg", "g2.jpg"}, got)
	})
}

func TestRevise(t *testing.T) {
	orig := builder.NewProductBuilder().With(func(b *builder.ProductBuilder) { b.ID = 9 }).BuildDomain()
	p := orig.Params()
	p.Stock = 3

	next, err := orig.Revise(p)
	require.NoError(t, err)
	assert.Equal(t, int64(9), next.ID())
	assert.Equal(t, int32(3), next.Stock())
	assert.Equal(t, orig.Images(), next.Images())
}
