package converter

import (
	"encoding/json"

	"storefront-backend/internal/domain/order"
	sqlc "storefront-backend/internal/infra/sqlc/generated"
	"storefront-backend/internal/pkg/pgconv"

	"github.com/shopspring/decimal"
)

// ItemRecord is the stored shape of one order line inside orders.items.
type ItemRecord struct {
	ProductID *int64      `json:"id,omitempty"`
	Name      string      `json:"name"`
	Quantity  int         `json:"quantity"`
	Price     json.Number `json:"price"`
	Image     string      `json:"image,omitempty"`
}

func (r ItemRecord) PriceDecimal() decimal.Decimal {
	d, err := decimal.NewFromString(r.Price.String())
	if err != nil {
		return decimal.Zero
	}
	return d
}

func EncodeItems(items []order.Item) ([]byte, error) {
	records := make([]ItemRecord, len(items))
	for i, it := range items {
		records[i] = ItemRecord{
			ProductID: it.ProductID,
			Name:      it.Name,
			Quantity:  it.Quantity,
			Price:     json.Number(it.Price.String()),
			Image:     it.Image,
		}
	}
	return json.Marshal(records)
}

func DecodeItems(raw []byte) ([]ItemRecord, error) {
	var records []ItemRecord
	if err := json.Unmarshal(raw, &records); err != nil {
		return nil, err
	}
	if records == nil {
		records = []ItemRecord{}
	}
	return records, nil
}

func OrderToCreateParams(o *order.Order) (sqlc.CreateOrderParams, error) {
	items, err := EncodeItems(o.Items())
	if err != nil {
		return sqlc.CreateOrderParams{}, err
	}

	var couponCode *string
	if c := o.CouponCode(); c != nil {
		s := c.String()
		couponCode = &s
	}

	customer := o.Customer()
	shipping := o.Shipping()
	return sqlc.CreateOrderParams{
		OrderNumber:     o.Number().String(),
		CustomerName:    customer.Name,
		CustomerEmail:   customer.Email.Value(),
		CustomerPhone:   customer.Phone,
		ShippingAddress: shipping.Address,
		City:            shipping.City,
		State:           shipping.State,
		ZipCode:         shipping.ZipCode,
		Items:           items,
		TotalAmount:     pgconv.DecimalToNumeric(o.Total()),
		CouponCode:      pgconv.StringPtrToPgtype(couponCode),
		DiscountAmount:  pgconv.DecimalToNumeric(o.Discount()),
		FinalAmount:     pgconv.DecimalToNumeric(o.Final()),
		Status:          o.Status().String(),
		CreatedAt:       pgconv.TimeToPgtype(o.CreatedAt()),
	}, nil
}
