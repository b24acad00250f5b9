package coupon

import "github.com/shopspring/decimal"

// Evaluation is the outcome of checking a coupon against a cart total.
// Discount and Final are only meaningful when Valid reports true.
type Evaluation struct {
	Reason   Reason
	Message  string
	Discount decimal.Decimal
	Final    decimal.Decimal
}

func (e Evaluation) Valid() bool {
	return e.Reason == ReasonNone
}

// UnknownCode is the evaluation for a code with no stored coupon.
func UnknownCode() Evaluation {
	return rejected(ReasonInvalidCode, "Invalid coupon code")
}

func rejected(reason Reason, msg string) Evaluation {
	return Evaluation{Reason: reason, Message: msg}
}
