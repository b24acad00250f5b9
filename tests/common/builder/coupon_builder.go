//go:build unit || e2e

package builder

import (
	"time"

	"storefront-backend/internal/domain/coupon"

	"github.com/shopspring/decimal"
)

type CouponBuilder struct {
	ID            int64
	Code          string
	Kind          string
	Value         decimal.Decimal
	MinOrderValue decimal.Decimal
	MaxDiscount   decimal.NullDecimal
	UsageLimit    *int32
	UsedCount     int32
	ExpiryDate    *time.Time
	Active        bool
	CreatedAt     time.Time
}

func NewCouponBuilder() *CouponBuilder {
	return &CouponBuilder{
		ID:            1,
		Code:          "WELCOME10",
		Kind:          coupon.KindPercentage.String(),
		Value:         decimal.NewFromInt(10),
		MinOrderValue: decimal.Zero,
		Active:        true,
		CreatedAt:     time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}

func (c *CouponBuilder) With(mutate func(*CouponBuilder)) *CouponBuilder {
	mutate(c)
	return c
}

// BuildDomain bypasses validation so tests can construct stored states such
// as used_count beyond the limit.
func (c *CouponBuilder) BuildDomain() *coupon.Coupon {
	return coupon.ReconstructCoupon(
		c.ID,
		coupon.NormalizeCode(c.Code),
		coupon.Kind(c.Kind),
		c.Value,
		c.MinOrderValue,
		c.maxDiscount(),
		c.UsageLimit,
		c.UsedCount,
		c.ExpiryDate,
		c.Active,
		c.CreatedAt,
	)
}

func (c *CouponBuilder) BuildParams() coupon.Params {
	return coupon.Params{
		Code:          c.Code,
		Kind:          c.Kind,
		Value:         c.Value,
		MinOrderValue: c.MinOrderValue,
		MaxDiscount:   c.maxDiscount(),
		UsageLimit:    c.UsageLimit,
		ExpiryDate:    c.ExpiryDate,
		Active:        c.Active,
	}
}

func (c *CouponBuilder) maxDiscount() *decimal.Decimal {
	if !c.MaxDiscount.Valid {
		return nil
	}
	d := c.MaxDiscount.Decimal
	return &d
}

// Fluent builder methods
func (c *CouponBuilder) WithCode(code string) *CouponBuilder {
	c.Code = code
	return c
}

func (c *CouponBuilder) WithUsage(limit, used int32) *CouponBuilder {
	c.UsageLimit = &limit
	c.UsedCount = used
	return c
}

func (c *CouponBuilder) AsFixed(amount decimal.Decimal) *CouponBuilder {
	c.Kind = coupon.KindFixed.String()
	c.Value = amount
	return c
}

func (c *CouponBuilder) AsInactive() *CouponBuilder {
	c.Active = false
	return c
}
