package order

import (
	"errors"
	"strings"
	"time"

	"storefront-backend/internal/domain/coupon"
	"storefront-backend/internal/domain/user"

	"github.com/shopspring/decimal"
)

var (
	ErrCustomerNameRequired  = errors.New("customer name is required")
	ErrShippingFieldRequired = errors.New("shipping address, city, state and zip code are required")
	ErrNoItems               = errors.New("order must contain at least one item")
	ErrInvalidItem           = errors.New("each item needs a name, a positive quantity and a non-negative price")
	ErrNegativeAmount        = errors.New("amounts cannot be negative")
	ErrDiscountExceedsTotal  = errors.New("discount cannot exceed the order total")
	ErrDiscountWithoutCoupon = errors.New("a discount requires a coupon code")
	ErrMalformedNumber       = errors.New("malformed order number")
)

type Customer struct {
	Name  string
	Email user.Email
	Phone string
}

type ShippingAddress struct {
	Address string
	City    string
	State   string
	ZipCode string
}

type Item struct {
	ProductID *int64
	Name      string
	Quantity  int
	Price     decimal.Decimal
	Image     string
}

// Order is immutable after creation apart from its status, which changes via
// a direct store update.
type Order struct {
	number     Number
	customer   Customer
	shipping   ShippingAddress
	items      []Item
	total      decimal.Decimal
	couponCode *coupon.Code
	discount   decimal.Decimal
	final      decimal.Decimal
	status     Status
	createdAt  time.Time
}

type Params struct {
	Number     Number
	Customer   Customer
	Shipping   ShippingAddress
	Items      []Item
	Total      decimal.Decimal
	CouponCode *coupon.Code
	Discount   decimal.Decimal
	CreatedAt  time.Time
}

func NewOrder(p Params) (*Order, error) {
	if !p.Number.IsWellFormed() {
		return nil, ErrMalformedNumber
	}
	customer := Customer{
		Name:  strings.TrimSpace(p.Customer.Name),
		Email: p.Customer.Email,
		Phone: strings.TrimSpace(p.Customer.Phone),
	}
	if customer.Name == "" {
		return nil, ErrCustomerNameRequired
	}
	if customer.Email.Value() == "" {
		return nil, user.ErrInvalidEmail
	}
	shipping := ShippingAddress{
		Address: strings.TrimSpace(p.Shipping.Address),
		City:    strings.TrimSpace(p.Shipping.City),
		State:   strings.TrimSpace(p.Shipping.State),
		ZipCode: strings.TrimSpace(p.Shipping.ZipCode),
	}
	if shipping.Address == "" || shipping.City == "" || shipping.State == "" || shipping.ZipCode == "" {
		return nil, ErrShippingFieldRequired
	}
	if len(p.Items) == 0 {
		return nil, ErrNoItems
	}
	items := make([]Item, len(p.Items))
	for i, it := range p.Items {
		it.Name = strings.TrimSpace(it.Name)
		if it.Name == "" || it.Quantity <= 0 || it.Price.IsNegative() {
			return nil, ErrInvalidItem
		}
		items[i] = it
	}

	total := p.Total.Round(coupon.MoneyPlaces)
	discount := p.Discount.Round(coupon.MoneyPlaces)
	if total.IsNegative() || discount.IsNegative() {
		return nil, ErrNegativeAmount
	}
	if discount.GreaterThan(total) {
		return nil, ErrDiscountExceedsTotal
	}
	if p.CouponCode == nil && !discount.IsZero() {
		return nil, ErrDiscountWithoutCoupon
	}

	return &Order{
		number:     p.Number,
		customer:   customer,
		shipping:   shipping,
		items:      items,
		total:      total,
		couponCode: p.CouponCode,
		discount:   discount,
		final:      total.Sub(discount),
		status:     StatusPending,
		createdAt:  p.CreatedAt,
	}, nil
}

func (o *Order) Number() Number            { return o.number }
func (o *Order) Customer() Customer        { return o.customer }
func (o *Order) Shipping() ShippingAddress { return o.shipping }
func (o *Order) Items() []Item             { return o.items }
func (o *Order) Total() decimal.Decimal    { return o.total }
func (o *Order) CouponCode() *coupon.Code  { return o.couponCode }
func (o *Order) Discount() decimal.Decimal { return o.discount }
func (o *Order) Final() decimal.Decimal    { return o.final }
func (o *Order) Status() Status            { return o.status }
func (o *Order) CreatedAt() time.Time      { return o.createdAt }
