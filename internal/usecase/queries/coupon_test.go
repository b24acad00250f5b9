//go:build unit

package queries_test

import (
	"context"
	"testing"
	"time"

	"storefront-backend/internal/domain/coupon"
	"storefront-backend/internal/pkg/clock"
	"storefront-backend/internal/pkg/errs"
	"storefront-backend/internal/usecase/queries"
	"storefront-backend/tests/common/builder"
	"storefront-backend/tests/common/memstore"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var today = time.Date(2025, 6, 15, 18, 30, 0, 0, time.UTC)

func TestCouponQueries_Validate(t *testing.T) {
	store := memstore.New()
	store.PutCoupon(builder.NewCouponBuilder().WithCode("SAVE10").WithUsage(10, 2).With(func(b *builder.CouponBuilder) {
		b.MaxDiscount = decimal.NewNullDecimal(decimal.NewFromInt(20))
	}).BuildDomain())
	lastDay := time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)
	store.PutCoupon(builder.NewCouponBuilder().WithCode("LASTDAY").AsFixed(decimal.NewFromInt(500)).With(func(b *builder.CouponBuilder) {
		b.ID = 2
		b.ExpiryDate = &lastDay
	}).BuildDomain())
	q := queries.NewCouponQueries(store, clock.NewMockClock(today))

	tests := []struct {
		name         string
		code         string
		total        decimal.Decimal
		wantValid    bool
		wantReason   coupon.Reason
		wantDiscount string
		wantFinal    string
	}{
		{
			name:         "percentage capped by max discount",
			code:         "save10",
			total:        decimal.NewFromInt(300),
			wantValid:    true,
			wantDiscount: "20",
			wantFinal:    "280",
		},
		{
			name:         "fixed never exceeds total on its expiry day",
			code:         "LASTDAY",
			total:        decimal.RequireFromString("120.50"),
			wantValid:    true,
			wantDiscount: "120.5",
			wantFinal:    "0",
		},
		{
			name:       "unknown code",
			code:       "MISSING",
			total:      decimal.NewFromInt(100),
			wantReason: coupon.ReasonInvalidCode,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := q.Validate(context.Background(), tt.code, tt.total)

			require.NoError(t, err)
			assert.Equal(t, tt.wantValid, res.Valid)
			if !tt.wantValid {
				assert.Equal(t, tt.wantReason, res.Reason)
				assert.NotEmpty(t, res.Message)
				assert.Nil(t, res.Coupon)
				return
			}
			assert.Equal(t, tt.wantDiscount, res.Discount.String())
			assert.Equal(t, tt.wantFinal, res.Final.String())
			require.NotNil(t, res.Coupon)
		})
	}

	t.Run("preview does not consume usage", func(t *testing.T) {
		for range 3 {
			_, err := q.Validate(context.Background(), "SAVE10", decimal.NewFromInt(300))
			require.NoError(t, err)
		}
		assert.Equal(t, int32(2), store.Coupon("SAVE10").UsedCount())
	})

	t.Run("bad input", func(t *testing.T) {
		_, err := q.Validate(context.Background(), " ", decimal.NewFromInt(1))
		assert.ErrorIs(t, err, queries.ErrCouponCodeRequired)

		_, err = q.Validate(context.Background(), "SAVE10", decimal.NewFromInt(-5))
		assert.ErrorIs(t, err, errs.ErrValidation)
	})
}

func TestCouponQueries_List(t *testing.T) {
	store := memstore.New()
	store.PutCoupon(builder.NewCouponBuilder().WithUsage(5, 1).BuildDomain())
	q := queries.NewCouponQueries(store, clock.NewMockClock(today))

	views, err := q.List(context.Background())

	require.NoError(t, err)
	require.Len(t, views, 1)
	assert.Equal(t, "WELCOME10", views[0].Code)
	assert.Equal(t, "percentage", views[0].DiscountType)
	assert.Equal(t, int32(1), views[0].UsedCount)
}
