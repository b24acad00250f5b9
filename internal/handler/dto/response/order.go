package response

import (
	"time"

	"storefront-backend/internal/domain/order"
	"storefront-backend/internal/usecase/queries"
)

type OrderItemResponse struct {
	ProductID *int64 `json:"id,omitempty"`
	Name      string `json:"name"`
	Quantity  int    `json:"quantity"`
	Price     Money  `json:"price"`
	Image     string `json:"image,omitempty"`
}

type OrderResponse struct {
	ID              int64               `json:"id,omitempty"`
	OrderNumber     string              `json:"order_number"`
	CustomerName    string              `json:"customer_name"`
	CustomerEmail   string              `json:"customer_email"`
	CustomerPhone   string              `json:"customer_phone"`
	ShippingAddress string              `json:"shipping_address"`
	City            string              `json:"city"`
	State           string              `json:"state"`
	ZipCode         string              `json:"zip_code"`
	Items           []OrderItemResponse `json:"items"`
	TotalAmount     Money               `json:"total_amount"`
	CouponCode      *string             `json:"coupon_code,omitempty"`
	DiscountAmount  Money               `json:"discount_amount"`
	FinalAmount     Money               `json:"final_amount"`
	Status          string              `json:"status"`
	CreatedAt       time.Time           `json:"created_at"`
}

func FromOrderView(v *queries.OrderView) (*OrderResponse, error) {
	var res OrderResponse
	if err := copyView(&res, v); err != nil {
		return nil, err
	}
	if res.Items == nil {
		res.Items = []OrderItemResponse{}
	}
	return &res, nil
}

func FromOrderList(views []*queries.OrderView) ([]*OrderResponse, error) {
	res := make([]*OrderResponse, len(views))
	for i, v := range views {
		o, err := FromOrderView(v)
		if err != nil {
			return nil, err
		}
		res[i] = o
	}
	return res, nil
}

// FromOrder renders a freshly created order, before any read model exists.
func FromOrder(o *order.Order) *OrderResponse {
	items := make([]OrderItemResponse, len(o.Items()))
	for i, it := range o.Items() {
		items[i] = OrderItemResponse{
			ProductID: it.ProductID,
			Name:      it.Name,
			Quantity:  it.Quantity,
			Price:     Money(it.Price),
			Image:     it.Image,
		}
	}
	var code *string
	if c := o.CouponCode(); c != nil {
		s := c.String()
		code = &s
	}
	return &OrderResponse{
		OrderNumber:     o.Number().String(),
		CustomerName:    o.Customer().Name,
		CustomerEmail:   o.Customer().Email.String(),
		CustomerPhone:   o.Customer().Phone,
		ShippingAddress: o.Shipping().Address,
		City:            o.Shipping().City,
		State:           o.Shipping().State,
		ZipCode:         o.Shipping().ZipCode,
		Items:           items,
		TotalAmount:     Money(o.Total()),
		CouponCode:      code,
		DiscountAmount:  Money(o.Discount()),
		FinalAmount:     Money(o.Final()),
		Status:          o.Status().String(),
		CreatedAt:       o.CreatedAt(),
	}
}

type OrderEnvelope struct {
	Success bool           `json:"success"`
	Order   *OrderResponse `json:"order"`
}

type OrderListEnvelope struct {
	Success bool             `json:"success"`
	Orders  []*OrderResponse `json:"orders"`
}

type OrderStatusResponse struct {
	Success bool   `json:"success"`
	Status  string `json:"status"`
	Message string `json:"message"`
}
