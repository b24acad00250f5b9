package converter

import (
	"fmt"

	"storefront-backend/internal/domain/coupon"
	sqlc "storefront-backend/internal/infra/sqlc/generated"
	"storefront-backend/internal/pkg/pgconv"
)

func CouponFromRow(row sqlc.Coupons) (*coupon.Coupon, error) {
	value, err := pgconv.DecimalFromNumeric(row.DiscountValue)
	if err != nil {
		return nil, fmt.Errorf("coupon %d discount_value: %w", row.ID, err)
	}
	minOrder, err := pgconv.DecimalFromNumeric(row.MinOrderValue)
	if err != nil {
		return nil, fmt.Errorf("coupon %d min_order_value: %w", row.ID, err)
	}
	maxDiscount, err := pgconv.DecimalPtrFromNumeric(row.MaxDiscount)
	if err != nil {
		return nil, fmt.Errorf("coupon %d max_discount: %w", row.ID, err)
	}

	return coupon.ReconstructCoupon(
		row.ID,
		coupon.Code(row.Code),
		coupon.Kind(row.DiscountType),
		value,
		minOrder,
		maxDiscount,
		pgconv.Int32PtrFromPgtype(row.UsageLimit),
		row.UsedCount,
		pgconv.DatePtrFromPgtype(row.ExpiryDate),
		row.IsActive,
		pgconv.TimeFromPgtype(row.CreatedAt),
	), nil
}

func CouponToCreateParams(c *coupon.Coupon) sqlc.CreateCouponParams {
	return sqlc.CreateCouponParams{
		Code:          c.Code().String(),
		DiscountType:  c.Kind().String(),
		DiscountValue: pgconv.DecimalToNumeric(c.Value()),
		MinOrderValue: pgconv.DecimalToNumeric(c.MinOrderValue()),
		MaxDiscount:   pgconv.DecimalPtrToNumeric(c.MaxDiscount()),
		UsageLimit:    pgconv.Int32PtrToPgtype(c.UsageLimit()),
		ExpiryDate:    pgconv.DatePtrToPgtype(c.ExpiryDate()),
		IsActive:      c.IsActive(),
	}
}

func CouponToUpdateParams(c *coupon.Coupon) sqlc.UpdateCouponParams {
	p := CouponToCreateParams(c)
	return sqlc.UpdateCouponParams{
		ID:            c.ID(),
		Code:          p.Code,
		DiscountType:  p.DiscountType,
		DiscountValue: p.DiscountValue,
		MinOrderValue: p.MinOrderValue,
		MaxDiscount:   p.MaxDiscount,
		UsageLimit:    p.UsageLimit,
		ExpiryDate:    p.ExpiryDate,
		IsActive:      p.IsActive,
	}
}
