package request

import (
	"storefront-backend/internal/usecase/commands"

	"github.com/shopspring/decimal"
)

type OrderItemRequest struct {
	ID       *int64           `json:"id"`
	Name     string           `json:"name" binding:"required"`
	Quantity int              `json:"quantity" binding:"required,min=1"`
	Price    *decimal.Decimal `json:"price" binding:"required"`
	Image    string           `json:"image"`
}

type CreateOrderRequest struct {
	CustomerName    string             `json:"customer_name" binding:"required"`
	CustomerEmail   string             `json:"customer_email" binding:"required,email"`
	CustomerPhone   string             `json:"customer_phone"`
	ShippingAddress string             `json:"shipping_address" binding:"required"`
	City            string             `json:"city" binding:"required"`
	State           string             `json:"state" binding:"required"`
	ZipCode         string             `json:"zip_code" binding:"required"`
	TotalAmount     *decimal.Decimal   `json:"total_amount" binding:"required"`
	Items           []OrderItemRequest `json:"items" binding:"required,min=1,dive"`
	CouponCode      string             `json:"coupon_code"`
	DiscountAmount  *decimal.Decimal   `json:"discount_amount"`
	FinalAmount     *decimal.Decimal   `json:"final_amount"`
}

func (r *CreateOrderRequest) ToInput() commands.CreateOrderInput {
	items := make([]commands.OrderItemInput, len(r.Items))
	for i, it := range r.Items {
		items[i] = commands.OrderItemInput{
			ProductID: it.ID,
			Name:      it.Name,
			Quantity:  it.Quantity,
			Price:     *it.Price,
			Image:     it.Image,
		}
	}
	return commands.CreateOrderInput{
		CustomerName:    r.CustomerName,
		CustomerEmail:   r.CustomerEmail,
		CustomerPhone:   r.CustomerPhone,
		ShippingAddress: r.ShippingAddress,
		City:            r.City,
		State:           r.State,
		ZipCode:         r.ZipCode,
		Items:           items,
		TotalAmount:     *r.TotalAmount,
		CouponCode:      r.CouponCode,
		DiscountAmount:  r.DiscountAmount,
		FinalAmount:     r.FinalAmount,
	}
}

type UpdateOrderStatusRequest struct {
	Status string `json:"status" binding:"required"`
}
