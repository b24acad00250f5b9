package response

import (
	"time"

	"storefront-backend/internal/domain/coupon"
	"storefront-backend/internal/usecase/queries"
)

type CouponResponse struct {
	ID            int64     `json:"id"`
	Code          string    `json:"code"`
	DiscountType  string    `json:"discount_type"`
	DiscountValue Money     `json:"discount_value"`
	MinOrderValue Money     `json:"min_order_value"`
	MaxDiscount   *Money    `json:"max_discount"`
	UsageLimit    *int32    `json:"usage_limit"`
	UsedCount     int32     `json:"used_count"`
	ExpiryDate    *string   `json:"expiry_date"`
	IsActive      bool      `json:"is_active"`
	CreatedAt     time.Time `json:"created_at"`
}

func FromCouponView(v *queries.CouponView) *CouponResponse {
	return &CouponResponse{
		ID:            v.ID,
		Code:          v.Code,
		DiscountType:  v.DiscountType,
		DiscountValue: Money(v.DiscountValue),
		MinOrderValue: Money(v.MinOrderValue),
		MaxDiscount:   optionalMoney(v.MaxDiscount),
		UsageLimit:    v.UsageLimit,
		UsedCount:     v.UsedCount,
		ExpiryDate:    formatDate(v.ExpiryDate),
		IsActive:      v.IsActive,
		CreatedAt:     v.CreatedAt,
	}
}

func FromCouponList(views []*queries.CouponView) []*CouponResponse {
	res := make([]*CouponResponse, len(views))
	for i, v := range views {
		res[i] = FromCouponView(v)
	}
	return res
}

func FromCoupon(c *coupon.Coupon) *CouponResponse {
	return &CouponResponse{
		ID:            c.ID(),
		Code:          c.Code().String(),
		DiscountType:  c.Kind().String(),
		DiscountValue: Money(c.Value()),
		MinOrderValue: Money(c.MinOrderValue()),
		MaxDiscount:   optionalMoney(c.MaxDiscount()),
		UsageLimit:    c.UsageLimit(),
		UsedCount:     c.UsedCount(),
		ExpiryDate:    formatDate(c.ExpiryDate()),
		IsActive:      c.IsActive(),
		CreatedAt:     c.CreatedAt(),
	}
}

func formatDate(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(time.DateOnly)
	return &s
}

type CouponListEnvelope struct {
	Success bool              `json:"success"`
	Coupons []*CouponResponse `json:"coupons"`
}

type CouponEnvelope struct {
	Success  bool            `json:"success"`
	CouponID int64           `json:"coupon_id"`
	Coupon   *CouponResponse `json:"coupon"`
	Message  string          `json:"message"`
}

type CouponSummaryResponse struct {
	Code          string `json:"code"`
	DiscountType  string `json:"discount_type"`
	DiscountValue Money  `json:"discount_value"`
}

// CouponValidationResponse keeps success=true for a rejected coupon; valid
// carries the verdict.
type CouponValidationResponse struct {
	Success        bool                   `json:"success"`
	Valid          bool                   `json:"valid"`
	Reason         string                 `json:"reason,omitempty"`
	Message        string                 `json:"message,omitempty"`
	DiscountAmount *Money                 `json:"discount_amount,omitempty"`
	FinalAmount    *Money                 `json:"final_amount,omitempty"`
	Coupon         *CouponSummaryResponse `json:"coupon,omitempty"`
}

func FromCouponValidation(v *queries.CouponValidation) *CouponValidationResponse {
	if !v.Valid {
		return &CouponValidationResponse{
			Success: true,
			Reason:  string(v.Reason),
			Message: v.Message,
		}
	}
	return &CouponValidationResponse{
		Success:        true,
		Valid:          true,
		DiscountAmount: optionalMoney(&v.Discount),
		FinalAmount:    optionalMoney(&v.Final),
		Coupon: &CouponSummaryResponse{
			Code:          v.Coupon.Code,
			DiscountType:  v.Coupon.DiscountType,
			DiscountValue: Money(v.Coupon.DiscountValue),
		},
	}
}
