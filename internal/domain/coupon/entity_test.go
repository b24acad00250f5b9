//go:build unit

package coupon_test

import (
	"testing"
	"time"

	"storefront-backend/internal/domain/coupon"
	"storefront-backend/tests/common/builder"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2025, 6, 15, 18, 30, 0, 0, time.FixedZone("IST", 19800))

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func assertMoney(t *testing.T, want string, got decimal.Decimal) {
	t.Helper()
	assert.True(t, dec(want).Equal(got), "want %s got %s", want, got.String())
}

func TestEvaluate(t *testing.T) {
	t.Run("capped percentage example", func(t *testing.T) {
		c := builder.NewCouponBuilder().With(func(b *builder.CouponBuilder) {
			b.Code = "SAVE10"
			b.Kind = "percentage"
			b.Value = dec("10")
			b.MinOrderValue = dec("50")
			b.MaxDiscount = decimal.NewNullDecimal(dec("20"))
			b.UsageLimit = ptr(int32(5))
			b.UsedCount = 0
		}).BuildDomain()

		ev := c.Evaluate(dec("300"), now)

		require.True(t, ev.Valid(), ev.Message)
		assertMoney(t, "20", ev.Discount)
		assertMoney(t, "280", ev.Final)
		assert.Equal(t, int32(0), c.UsedCount(), "evaluation must not consume usage")
	})

	t.Run("checks short-circuit in order", func(t *testing.T) {
		yesterday := now.AddDate(0, 0, -1)
		tests := []struct {
			name   string
			mutate func(*builder.CouponBuilder)
			total  string
			want   coupon.Reason
		}{
			{
				name: "inactive wins over expired and exhausted",
				mutate: func(b *builder.CouponBuilder) {
					b.Active = false
					b.ExpiryDate = &yesterday
					b.UsageLimit = ptr(int32(1))
					b.UsedCount = 1
				},
				total: "10",
				want:  coupon.ReasonInactive,
			},
			{
				name: "expired wins over exhausted",
				mutate: func(b *builder.CouponBuilder) {
					b.ExpiryDate = &yesterday
					b.UsageLimit = ptr(int32(1))
					b.UsedCount = 1
				},
				total: "10",
				want:  coupon.ReasonExpired,
			},
			{
				name: "exhausted wins over minimum",
				mutate: func(b *builder.CouponBuilder) {
					b.UsageLimit = ptr(int32(3))
					b.UsedCount = 3
					b.MinOrderValue = dec("1000")
				},
				total: "10",
				want:  coupon.ReasonUsageLimitReached,
			},
			{
				name:   "below minimum",
				mutate: func(b *builder.CouponBuilder) { b.MinOrderValue = dec("50") },
				total:  "49.99",
				want:   coupon.ReasonBelowMinimum,
			},
			{
				name:   "sub-cent shortfall is still below minimum",
				mutate: func(b *builder.CouponBuilder) { b.MinOrderValue = dec("50") },
				total:  "49.995",
				want:   coupon.ReasonBelowMinimum,
			},
			{
				name:   "exactly the minimum passes",
				mutate: func(b *builder.CouponBuilder) { b.MinOrderValue = dec("50") },
				total:  "50",
				want:   coupon.ReasonNone,
			},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				c := builder.NewCouponBuilder().With(tt.mutate).BuildDomain()
				ev := c.Evaluate(dec(tt.total), now)
				assert.Equal(t, tt.want, ev.Reason)
				assert.Equal(t, tt.want == coupon.ReasonNone, ev.Valid())
			})
		}
	})

	t.Run("final is derived from the unrounded total", func(t *testing.T) {
		c := builder.NewCouponBuilder().With(func(b *builder.CouponBuilder) {
			b.Kind = "fixed"
			b.Value = dec("5")
			b.MinOrderValue = dec("50")
			b.MaxDiscount = decimal.NullDecimal{}
		}).BuildDomain()

		below := c.Evaluate(dec("49.995"), now)
		assert.Equal(t, coupon.ReasonBelowMinimum, below.Reason)

		ev := c.Evaluate(dec("100.004"), now)
		require.True(t, ev.Valid(), ev.Message)
		assertMoney(t, "5", ev.Discount)
		assertMoney(t, "95.004", ev.Final)
	})

	t.Run("minimum message names the threshold", func(t *testing.T) {
		c := builder.NewCouponBuilder().With(func(b *builder.CouponBuilder) { b.MinOrderValue = dec("50") }).BuildDomain()
		ev := c.Evaluate(dec("20"), now)
		assert.Equal(t, "Minimum order value of 50.00 required", ev.Message)
	})

	t.Run("expiry compares calendar dates only", func(t *testing.T) {
		y, m, d := now.Date()
		today := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)

		onExpiryDay := builder.NewCouponBuilder().With(func(b *builder.CouponBuilder) { b.ExpiryDate = &today }).BuildDomain()
		assert.True(t, onExpiryDay.Evaluate(dec("100"), now).Valid(), "late evening of the expiry day is still valid")

		lastMinute := time.Date(y, m, d, 23, 59, 59, 0, now.Location())
		assert.True(t, onExpiryDay.Evaluate(dec("100"), lastMinute).Valid())

		nextMorning := time.Date(y, m, d+1, 0, 0, 1, 0, now.Location())
		assert.Equal(t, coupon.ReasonExpired, onExpiryDay.Evaluate(dec("100"), nextMorning).Reason)
	})

	t.Run("used count equal to limit is always invalid", func(t *testing.T) {
		for limit := int32(0); limit < 5; limit++ {
			c := builder.NewCouponBuilder().With(func(b *builder.CouponBuilder) {
				b.UsageLimit = ptr(limit)
				b.UsedCount = limit
			}).BuildDomain()
			assert.Equal(t, coupon.ReasonUsageLimitReached, c.Evaluate(dec("1000"), now).Reason, "limit=%d", limit)
		}
	})

	t.Run("no usage limit never exhausts", func(t *testing.T) {
		c := builder.NewCouponBuilder().With(func(b *builder.CouponBuilder) {
			b.UsageLimit = nil
			b.UsedCount = 100000
		}).BuildDomain()
		assert.True(t, c.Evaluate(dec("100"), now).Valid())
	})
}

func TestDiscountProperties(t *testing.T) {
	totals := make([]decimal.Decimal, 0, 400)
	for cents := int64(0); cents < 200000; cents += 517 {
		totals = append(totals, decimal.New(cents, -2))
	}

	t.Run("uncapped percentage is the rounded product", func(t *testing.T) {
		for _, pct := range []string{"0", "5", "10", "12.5", "33.33", "100"} {
			c := builder.NewCouponBuilder().With(func(b *builder.CouponBuilder) {
				b.Kind = "percentage"
				b.Value = dec(pct)
				b.MaxDiscount = decimal.NullDecimal{}
			}).BuildDomain()
			for _, total := range totals {
				ev := c.Evaluate(total, now)
				require.True(t, ev.Valid())
				want := total.Mul(dec(pct)).Div(decimal.NewFromInt(100)).Round(2)
				require.True(t, want.Equal(ev.Discount), "pct=%s total=%s want=%s got=%s", pct, total, want, ev.Discount)
				require.True(t, ev.Final.Equal(total.Sub(ev.Discount)))
			}
		}
	})

	t.Run("capped percentage never exceeds the cap", func(t *testing.T) {
		maxDiscount := dec("20")
		c := builder.NewCouponBuilder().With(func(b *builder.CouponBuilder) {
			b.Kind = "percentage"
			b.Value = dec("15")
			b.MaxDiscount = decimal.NewNullDecimal(maxDiscount)
		}).BuildDomain()
		for _, total := range totals {
			ev := c.Evaluate(total, now)
			require.True(t, ev.Discount.LessThanOrEqual(maxDiscount), "total=%s discount=%s", total, ev.Discount)
		}
	})

	t.Run("fixed discount is min of value and total", func(t *testing.T) {
		value := dec("75.50")
		c := builder.NewCouponBuilder().With(func(b *builder.CouponBuilder) {
			b.Kind = "fixed"
			b.Value = value
		}).BuildDomain()
		for _, total := range totals {
			ev := c.Evaluate(total, now)
			require.True(t, decimal.Min(value, total).Equal(ev.Discount), "total=%s", total)
			require.False(t, ev.Final.IsNegative(), "total=%s", total)
		}
	})

	t.Run("rounds half away from zero", func(t *testing.T) {
		tests := []struct {
			pct, total, want string
		}{
			{pct: "10", total: "0.05", want: "0.01"},
			{pct: "12.5", total: "0.20", want: "0.03"},
			{pct: "12.5", total: "0.12", want: "0.02"},
			{pct: "33.33", total: "10", want: "3.33"},
		}
		for _, tt := range tests {
			c := builder.NewCouponBuilder().With(func(b *builder.CouponBuilder) {
				b.Kind = "percentage"
				b.Value = dec(tt.pct)
				b.MaxDiscount = decimal.NullDecimal{}
			}).BuildDomain()
			assertMoney(t, tt.want, c.Evaluate(dec(tt.total), now).Discount)
		}
	})
}

func TestNewCoupon(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*builder.CouponBuilder)
		errIs  error
	}{
		{name: "valid percentage", mutate: func(*builder.CouponBuilder) {}},
		{name: "code is normalized", mutate: func(b *builder.CouponBuilder) { b.Code = "  save10 " }},
		{name: "empty code", mutate: func(b *builder.CouponBuilder) { b.Code = "   " }, errIs: coupon.ErrInvalidCouponCode},
		{name: "code with spaces", mutate: func(b *builder.CouponBuilder) { b.Code = "SAVE 10" }, errIs: coupon.ErrInvalidCouponCode},
		{name: "unknown kind", mutate: func(b *builder.CouponBuilder) { b.Kind = "bogo" }, errIs: coupon.ErrInvalidKind},
		{name: "negative value", mutate: func(b *builder.CouponBuilder) { b.Value = dec("-1") }, errIs: coupon.ErrInvalidDiscountAmount},
		{name: "percentage over 100", mutate: func(b *builder.CouponBuilder) { b.Value = dec("100.01") }, errIs: coupon.ErrInvalidDiscountPercent},
		{
			name: "fixed over 100 is fine",
			mutate: func(b *builder.CouponBuilder) {
				b.Kind = "fixed"
				b.Value = dec("500")
			},
		},
		{name: "negative minimum", mutate: func(b *builder.CouponBuilder) { b.MinOrderValue = dec("-5") }, errIs: coupon.ErrInvalidMinOrderValue},
		{name: "negative cap", mutate: func(b *builder.CouponBuilder) { b.MaxDiscount = decimal.NewNullDecimal(dec("-5")) }, errIs: coupon.ErrInvalidMaxDiscount},
		{name: "negative limit", mutate: func(b *builder.CouponBuilder) { b.UsageLimit = ptr(int32(-1)) }, errIs: coupon.ErrInvalidUsageLimit},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := coupon.NewCoupon(builder.NewCouponBuilder().With(tt.mutate).BuildParams())
			if tt.errIs != nil {
				assert.ErrorIs(t, err, tt.errIs)
				assert.Nil(t, c)
				return
			}
			require.NoError(t, err)
			assert.Regexp(t, `^[A-Z0-9_-]+$`, c.Code().String())
		})
	}
}

func TestRevise(t *testing.T) {
	orig := builder.NewCouponBuilder().With(func(b *builder.CouponBuilder) {
		b.ID = 42
		b.UsedCount = 7
	}).BuildDomain()

	p := orig.Params()
	p.Value = dec("15")
	p.Active = false

	revised, err := orig.Revise(p)
	require.NoError(t, err)
	assert.Equal(t, int64(42), revised.ID())
	assert.Equal(t, int32(7), revised.UsedCount())
	assert.False(t, revised.IsActive())
	assertMoney(t, "15", revised.Value())

	p.Kind = "nope"
	_, err = orig.Revise(p)
	assert.ErrorIs(t, err, coupon.ErrInvalidKind)
}

func TestUnknownCode(t *testing.T) {
	ev := coupon.UnknownCode()
	assert.False(t, ev.Valid())
	assert.Equal(t, coupon.ReasonInvalidCode, ev.Reason)
	assert.Equal(t, "Invalid coupon code", ev.Message)
}

func ptr[T any](v T) *T { return &v }
