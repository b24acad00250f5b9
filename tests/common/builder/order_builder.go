//go:build unit || e2e

package builder

import (
	"time"

	"storefront-backend/internal/domain/coupon"
	"storefront-backend/internal/domain/order"
	"storefront-backend/internal/domain/user"

	"github.com/shopspring/decimal"
)

type OrderBuilder struct {
	Number        order.Number
	CustomerName  string
	CustomerEmail string
	CustomerPhone string
	Address       string
	City          string
	State         string
	ZipCode       string
	Items         []order.Item
	Total         decimal.Decimal
	CouponCode    *coupon.Code
	Discount      decimal.Decimal
	Status        order.Status
	CreatedAt     time.Time
}

func NewOrderBuilder() *OrderBuilder {
	productID := int64(1)
	return &OrderBuilder{
		Number:        "ORD-1735787045006-A9ABCDEFG",
		CustomerName:  "Asha Rao",
		CustomerEmail: "asha@example.com",
		CustomerPhone: "9876543210",
		Address:       "12 MG Road",
		City:          "Bengaluru",
		State:         "Karnataka",
		ZipCode:       "560001",
		Items: []order.Item{
			{ProductID: &productID, Name: "Ceramic Mug", Quantity: 2, Price: decimal.NewFromInt(50), Image: "mug.jpg"},
		},
		Total:     decimal.NewFromInt(100),
		Discount:  decimal.Zero,
		Status:    order.StatusPending,
		CreatedAt: time.Date(2025, 1, 2, 3, 4, 5, 6_000_000, time.UTC),
	}
}

func (o *OrderBuilder) With(mutate func(*OrderBuilder)) *OrderBuilder {
	mutate(o)
	return o
}

func (o *OrderBuilder) BuildParams() (order.Params, error) {
	email, err := user.NewEmail(o.CustomerEmail)
	if err != nil {
		return order.Params{}, err
	}
	return order.Params{
		Number: o.Number,
		Customer: order.Customer{
			Name:  o.CustomerName,
			Email: email,
			Phone: o.CustomerPhone,
		},
		Shipping: order.ShippingAddress{
			Address: o.Address,
			City:    o.City,
			State:   o.State,
			ZipCode: o.ZipCode,
		},
		Items:      o.Items,
		Total:      o.Total,
		CouponCode: o.CouponCode,
		Discount:   o.Discount,
		CreatedAt:  o.CreatedAt,
	}, nil
}

func (o *OrderBuilder) BuildDomain() (*order.Order, error) {
	p, err := o.BuildParams()
	if err != nil {
		return nil, err
	}
	return order.NewOrder(p)
}

// Fluent builder methods
func (o *OrderBuilder) WithNumber(n order.Number) *OrderBuilder {
	o.Number = n
	return o
}

func (o *OrderBuilder) WithCustomerEmail(email string) *OrderBuilder {
	o.CustomerEmail = email
	return o
}

func (o *OrderBuilder) WithCoupon(code string, discount decimal.Decimal) *OrderBuilder {
	c := coupon.Code(code)
	o.CouponCode = &c
	o.Discount = discount
	return o
}
