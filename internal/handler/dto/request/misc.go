package request

import "github.com/shopspring/decimal"

type FeedbackRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
	Query string `json:"query"`
}

type ShippingRateRequest struct {
	Rate *decimal.Decimal `json:"rate"`
}
