package queries

import (
	"context"
	"encoding/base64"
	"net/url"
	"strings"

	"storefront-backend/internal/pkg/config"
	"storefront-backend/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

var ErrInvalidAmount = errs.Sentinel("Amount is required", errs.ErrValidation)

type QREncoder interface {
	PNG(content string, size int) ([]byte, error)
}

type PaymentQR struct {
	DataURL string
	UPIID   string
	Amount  decimal.Decimal
	UPIURL  string
}

type PaymentQueries interface {
	// QRCode builds a UPI payment link for amount and renders it as a PNG
	// data URL.
	QRCode(ctx context.Context, amount string) (*PaymentQR, error)
}

type paymentQueriesImpl struct {
	encoder QREncoder
	cfg     config.PaymentConfig
}

func NewPaymentQueries(encoder QREncoder, cfg config.PaymentConfig) PaymentQueries {
	return &paymentQueriesImpl{encoder: encoder, cfg: cfg}
}

func (q *paymentQueriesImpl) QRCode(_ context.Context, raw string) (*PaymentQR, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, ErrInvalidAmount
	}
	amount, err := decimal.NewFromString(raw)
	if err != nil || !amount.IsPositive() {
		return nil, ErrInvalidAmount
	}

	link := q.link(raw)
	png, err := q.encoder.PNG(link, q.cfg.QRSizePx)
	if err != nil {
		return nil, errs.Wrap(err, "failed to render payment qr")
	}

	return &PaymentQR{
		DataURL: "data:image/png;base64," + base64.StdEncoding.EncodeToString(png),
		UPIID:   q.cfg.UPIID,
		Amount:  amount,
		UPIURL:  link,
	}, nil
}

// link keeps the amount exactly as the caller sent it; payment apps show it
// verbatim.
func (q *paymentQueriesImpl) link(amount string) string {
	return "upi://pay?pa=" + q.cfg.UPIID +
		"&am=" + url.QueryEscape(amount) +
		"&cu=" + q.cfg.Currency +
		"&tn=" + q.cfg.Note
}
