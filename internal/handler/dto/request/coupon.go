package request

import (
	"time"

	"storefront-backend/internal/pkg/patch"
	"storefront-backend/internal/usecase/commands"

	"github.com/shopspring/decimal"
)

type ValidateCouponRequest struct {
	Code      string           `json:"code"`
	CartTotal *decimal.Decimal `json:"cart_total"`
}

// CouponRequest serves both create and partial update. Nullable members use
// patch.Field so an explicit null clears the column.
type CouponRequest struct {
	Code          *string                      `json:"code"`
	DiscountType  *string                      `json:"discount_type"`
	DiscountValue *decimal.Decimal             `json:"discount_value"`
	MinOrderValue *decimal.Decimal             `json:"min_order_value"`
	MaxDiscount   patch.Field[decimal.Decimal] `json:"max_discount"`
	UsageLimit    patch.Field[int32]           `json:"usage_limit"`
	ExpiryDate    patch.Field[Date]            `json:"expiry_date"`
	IsActive      *bool                        `json:"is_active"`
}

func (r *CouponRequest) ToInput() commands.CouponInput {
	expiry := patch.Field[time.Time]{Set: r.ExpiryDate.Set}
	if r.ExpiryDate.Value != nil {
		t := r.ExpiryDate.Value.Time
		expiry.Value = &t
	}
	return commands.CouponInput{
		Code:          r.Code,
		DiscountType:  r.DiscountType,
		DiscountValue: r.DiscountValue,
		MinOrderValue: r.MinOrderValue,
		MaxDiscount:   r.MaxDiscount,
		UsageLimit:    r.UsageLimit,
		ExpiryDate:    expiry,
		IsActive:      r.IsActive,
	}
}
