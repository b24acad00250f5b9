//go:build unit

package order_test

import (
	"testing"

	"storefront-backend/internal/domain/coupon"
	"storefront-backend/internal/domain/order"
	"storefront-backend/tests/common/builder"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testCase struct {
	name   string
	mutate func(*builder.OrderBuilder)
	errIs  error
}

func TestNewOrder(t *testing.T) {
	t.Run("no coupon keeps the total", func(t *testing.T) {
		o, err := builder.NewOrderBuilder().With(func(b *builder.OrderBuilder) {
			b.Total = decimal.NewFromInt(100)
		}).BuildDomain()
		require.NoError(t, err)

		assert.True(t, o.Final().Equal(decimal.NewFromInt(100)))
		assert.True(t, o.Discount().IsZero())
		assert.Nil(t, o.CouponCode())
		assert.Equal(t, order.StatusPending, o.Status())
	})

	t.Run("final is total minus discount", func(t *testing.T) {
		code := coupon.Code("SAVE10")
		o, err := builder.NewOrderBuilder().With(func(b *builder.OrderBuilder) {
			b.Total = decimal.NewFromInt(300)
			b.CouponCode = &code
			b.Discount = decimal.NewFromInt(20)
		}).BuildDomain()
		require.NoError(t, err)

		assert.True(t, o.Final().Equal(decimal.NewFromInt(280)))
		assert.Equal(t, code, *o.CouponCode())
	})

	t.Run("full discount yields zero", func(t *testing.T) {
		code := coupon.Code("FREE")
		o, err := builder.NewOrderBuilder().With(func(b *builder.OrderBuilder) {
			b.Total = decimal.NewFromInt(50)
			b.CouponCode = &code
			b.Discount = decimal.NewFromInt(50)
		}).BuildDomain()
		require.NoError(t, err)
		assert.True(t, o.Final().IsZero())
	})

	t.Run("validation", func(t *testing.T) {
		code := coupon.Code("SAVE10")
		runCases(t, []testCase{
			{name: "blank name", mutate: func(b *builder.OrderBuilder) { b.CustomerName = " " }, errIs: order.ErrCustomerNameRequired},
			{name: "missing city", mutate: func(b *builder.OrderBuilder) { b.City = "" }, errIs: order.ErrShippingFieldRequired},
			{name: "missing zip", mutate: func(b *builder.OrderBuilder) { b.ZipCode = "" }, errIs: order.ErrShippingFieldRequired},
			{name: "no items", mutate: func(b *builder.OrderBuilder) { b.Items = nil }, errIs: order.ErrNoItems},
			{
				name: "zero quantity",
				mutate: func(b *builder.OrderBuilder) {
					b.Items = []order.Item{{Name: "Mug", Quantity: 0, Price: decimal.NewFromInt(5)}}
				},
				errIs: order.ErrInvalidItem,
			},
			{
				name: "negative price",
				mutate: func(b *builder.OrderBuilder) {
					b.Items = []order.Item{{Name: "Mug", Quantity: 1, Price: decimal.NewFromInt(-5)}}
				},
				errIs: order.ErrInvalidItem,
			},
			{name: "negative total", mutate: func(b *builder.OrderBuilder) { b.Total = decimal.NewFromInt(-1) }, errIs: order.ErrNegativeAmount},
			{
				name: "discount above total",
				mutate: func(b *builder.OrderBuilder) {
					b.Total = decimal.NewFromInt(10)
					b.CouponCode = &code
					b.Discount = decimal.NewFromInt(11)
				},
				errIs: order.ErrDiscountExceedsTotal,
			},
			{
				name:   "discount without coupon",
				mutate: func(b *builder.OrderBuilder) { b.Discount = decimal.NewFromInt(1) },
				errIs:  order.ErrDiscountWithoutCoupon,
			},
			{name: "malformed number", mutate: func(b *builder.OrderBuilder) { b.Number = "ORD-1" }, errIs: order.ErrMalformedNumber},
		})
	})
}

func runCases(t *testing.T, cases []testCase) {
	t.Helper()
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			actual, err := builder.NewOrderBuilder().With(c.mutate).BuildDomain()
			if c.errIs == nil {
				require.NoError(t, err)
				require.NotNil(t, actual)
				return
			}
			require.Nil(t, actual)
			require.ErrorIs(t, err, c.errIs)
		})
	}
}
