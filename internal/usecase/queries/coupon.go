package queries

import (
	"context"
	"strings"

	"storefront-backend/internal/domain/coupon"
	"storefront-backend/internal/infra"
	"storefront-backend/internal/pkg/clock"
	"storefront-backend/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

var (
	ErrCouponCodeRequired = errs.Sentinel("Coupon code is required", errs.ErrValidation)
	ErrNegativeCartTotal  = errs.Sentinel("cart total cannot be negative", errs.ErrValidation)
)

// CouponSummary is the part of a coupon echoed back on successful validation.
type CouponSummary struct {
	Code          string          `json:"code"`
	DiscountType  string          `json:"discount_type"`
	DiscountValue decimal.Decimal `json:"discount_value"`
}

// CouponValidation is the preview result. Discount, Final and Coupon are set
// only when Valid is true; Message is set only when it is false.
type CouponValidation struct {
	Valid    bool
	Reason   coupon.Reason
	Message  string
	Discount decimal.Decimal
	Final    decimal.Decimal
	Coupon   *CouponSummary
}

type CouponReadStore interface {
	List(ctx context.Context) ([]*CouponView, error)
	FindByCode(ctx context.Context, code coupon.Code) (*coupon.Coupon, error)
}

type CouponQueries interface {
	List(ctx context.Context) ([]*CouponView, error)
	// Validate previews a coupon against a cart total. It never consumes usage.
	Validate(ctx context.Context, code string, cartTotal decimal.Decimal) (*CouponValidation, error)
}

type couponQueriesImpl struct {
	readStore CouponReadStore
	clock     clock.Clock
}

func NewCouponQueries(readStore CouponReadStore, clk clock.Clock) CouponQueries {
	return &couponQueriesImpl{
		readStore: readStore,
		clock:     clk,
	}
}

func (q *couponQueriesImpl) List(ctx context.Context) ([]*CouponView, error) {
	coupons, err := q.readStore.List(ctx)
	if err != nil {
		return nil, errs.Wrap(err, "failed to list coupons")
	}
	return coupons, nil
}

func (q *couponQueriesImpl) Validate(ctx context.Context, code string, cartTotal decimal.Decimal) (*CouponValidation, error) {
	if strings.TrimSpace(code) == "" {
		return nil, ErrCouponCodeRequired
	}
	if cartTotal.IsNegative() {
		return nil, ErrNegativeCartTotal
	}

	c, err := q.readStore.FindByCode(ctx, coupon.NormalizeCode(code))
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return fromEvaluation(nil, coupon.UnknownCode()), nil
		}
		return nil, errs.Wrap(err, "failed to look up coupon")
	}

	return fromEvaluation(c, c.Evaluate(cartTotal, q.clock.Now())), nil
}

func fromEvaluation(c *coupon.Coupon, ev coupon.Evaluation) *CouponValidation {
	if !ev.Valid() {
		return &CouponValidation{
			Reason:  ev.Reason,
			Message: ev.Message,
		}
	}
	return &CouponValidation{
		Valid:    true,
		Discount: ev.Discount,
		Final:    ev.Final,
		Coupon: &CouponSummary{
			Code:          c.Code().String(),
			DiscountType:  c.Kind().String(),
			DiscountValue: c.Value(),
		},
	}
}
