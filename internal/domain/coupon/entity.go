package coupon

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// Money amounts are rounded half away from zero to this many places.
const MoneyPlaces = 2

var hundred = decimal.NewFromInt(100)

type Coupon struct {
	id            int64
	code          Code
	kind          Kind
	value         decimal.Decimal
	minOrderValue decimal.Decimal
	maxDiscount   *decimal.Decimal
	usageLimit    *int32
	usedCount     int32
	expiryDate    *time.Time
	active        bool
	createdAt     time.Time
}

type Params struct {
	Code          string
	Kind          string
	Value         decimal.Decimal
	MinOrderValue decimal.Decimal
	MaxDiscount   *decimal.Decimal
	UsageLimit    *int32
	ExpiryDate    *time.Time
	Active        bool
}

func NewCoupon(p Params) (*Coupon, error) {
	code, err := NewCouponCode(p.Code)
	if err != nil {
		return nil, err
	}
	kind, err := NewKind(p.Kind)
	if err != nil {
		return nil, err
	}
	if p.Value.IsNegative() {
		return nil, ErrInvalidDiscountAmount
	}
	if kind == KindPercentage && p.Value.GreaterThan(hundred) {
		return nil, ErrInvalidDiscountPercent
	}
	if p.MinOrderValue.IsNegative() {
		return nil, ErrInvalidMinOrderValue
	}
	if p.MaxDiscount != nil && p.MaxDiscount.IsNegative() {
		return nil, ErrInvalidMaxDiscount
	}
	if p.UsageLimit != nil && *p.UsageLimit < 0 {
		return nil, ErrInvalidUsageLimit
	}

	return &Coupon{
		code:          code,
		kind:          kind,
		value:         p.Value,
		minOrderValue: p.MinOrderValue,
		maxDiscount:   p.MaxDiscount,
		usageLimit:    p.UsageLimit,
		expiryDate:    dateOnly(p.ExpiryDate),
		active:        p.Active,
	}, nil
}

func ReconstructCoupon(
	id int64,
	code Code,
	kind Kind,
	value, minOrderValue decimal.Decimal,
	maxDiscount *decimal.Decimal,
	usageLimit *int32,
	usedCount int32,
	expiryDate *time.Time,
	active bool,
	createdAt time.Time,
) *Coupon {
	return &Coupon{
		id:            id,
		code:          code,
		kind:          kind,
		value:         value,
		minOrderValue: minOrderValue,
		maxDiscount:   maxDiscount,
		usageLimit:    usageLimit,
		usedCount:     usedCount,
		expiryDate:    dateOnly(expiryDate),
		active:        active,
		createdAt:     createdAt,
	}
}

// Revise validates p as a full replacement of the editable fields. Identity,
// usage count and creation time are carried over.
func (c *Coupon) Revise(p Params) (*Coupon, error) {
	next, err := NewCoupon(p)
	if err != nil {
		return nil, err
	}
	next.id = c.id
	next.usedCount = c.usedCount
	next.createdAt = c.createdAt
	return next, nil
}

// Params returns the editable fields, the starting point for a partial update.
func (c *Coupon) Params() Params {
	return Params{
		Code:          c.code.String(),
		Kind:          c.kind.String(),
		Value:         c.value,
		MinOrderValue: c.minOrderValue,
		MaxDiscount:   c.maxDiscount,
		UsageLimit:    c.usageLimit,
		ExpiryDate:    c.expiryDate,
		Active:        c.active,
	}
}

// Evaluate runs the validity checks in order and stops at the first failure.
// It never mutates the coupon, so previews do not consume usage. The cart
// total is used as given; only the discount is rounded, and Final is rounded
// when rendered.
func (c *Coupon) Evaluate(cartTotal decimal.Decimal, now time.Time) Evaluation {
	switch {
	case !c.active:
		return rejected(ReasonInactive, "This coupon is no longer active")
	case c.IsExpiredAt(now):
		return rejected(ReasonExpired, "This coupon has expired")
	case c.IsExhausted():
		return rejected(ReasonUsageLimitReached, "This coupon has reached its usage limit")
	case cartTotal.LessThan(c.minOrderValue):
		return rejected(ReasonBelowMinimum,
			fmt.Sprintf("Minimum order value of %s required", c.minOrderValue.StringFixed(MoneyPlaces)))
	}

	discount := c.DiscountFor(cartTotal)
	return Evaluation{
		Discount: discount,
		Final:    cartTotal.Sub(discount),
	}
}

// DiscountFor computes the rounded discount for total without any validity
// checks. The result never exceeds total.
func (c *Coupon) DiscountFor(total decimal.Decimal) decimal.Decimal {
	var discount decimal.Decimal
	switch c.kind {
	case KindPercentage:
		discount = total.Mul(c.value).Shift(-2)
		if c.maxDiscount != nil && discount.GreaterThan(*c.maxDiscount) {
			discount = *c.maxDiscount
		}
	case KindFixed:
		discount = decimal.Min(c.value, total)
	}
	discount = discount.Round(MoneyPlaces)
	if discount.GreaterThan(total) {
		discount = total
	}
	if discount.IsNegative() {
		discount = decimal.Zero
	}
	return discount
}

// IsExpiredAt compares calendar dates only; the expiry day itself is valid.
func (c *Coupon) IsExpiredAt(now time.Time) bool {
	if c.expiryDate == nil {
		return false
	}
	y, m, d := now.Date()
	today := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return today.After(*c.expiryDate)
}

func (c *Coupon) IsExhausted() bool {
	return c.usageLimit != nil && c.usedCount >= *c.usageLimit
}

func (c *Coupon) ID() int64                      { return c.id }
func (c *Coupon) Code() Code                     { return c.code }
func (c *Coupon) Kind() Kind                     { return c.kind }
func (c *Coupon) Value() decimal.Decimal         { return c.value }
func (c *Coupon) MinOrderValue() decimal.Decimal { return c.minOrderValue }
func (c *Coupon) MaxDiscount() *decimal.Decimal  { return c.maxDiscount }
func (c *Coupon) UsageLimit() *int32             { return c.usageLimit }
func (c *Coupon) UsedCount() int32               { return c.usedCount }
func (c *Coupon) ExpiryDate() *time.Time         { return c.expiryDate }
func (c *Coupon) IsActive() bool                 { return c.active }
func (c *Coupon) CreatedAt() time.Time           { return c.createdAt }

func dateOnly(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	y, m, d := t.Date()
	out := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return &out
}
