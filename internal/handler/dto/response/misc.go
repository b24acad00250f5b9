package response

import (
	"encoding/json"

	"storefront-backend/internal/domain/user"
	"storefront-backend/internal/usecase/queries"
)

type MessageResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

func OK(msg string) MessageResponse {
	return MessageResponse{Success: true, Message: msg}
}

type CartResponse struct {
	Success bool              `json:"success"`
	Cart    []json.RawMessage `json:"cart"`
}

type ShippingRateResponse struct {
	Success bool   `json:"success"`
	Rate    Money  `json:"rate"`
	Message string `json:"message,omitempty"`
}

type UserResponse struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

type UserEnvelope struct {
	Success bool          `json:"success"`
	User    *UserResponse `json:"user"`
}

func FromUser(u *user.User) *UserEnvelope {
	return &UserEnvelope{
		Success: true,
		User: &UserResponse{
			ID:    u.ID(),
			Name:  u.Name(),
			Email: u.Email().String(),
			Phone: u.Phone(),
		},
	}
}

type AdminLoginResponse struct {
	Success   bool   `json:"success"`
	Token     string `json:"token"`
	ExpiresAt int64  `json:"expires_at"`
}

type PaymentQRResponse struct {
	QRCode string `json:"qrCode"`
	UPIID  string `json:"upiId"`
	Amount Money  `json:"amount"`
	UPIURL string `json:"upiUrl"`
}

func FromPaymentQR(p *queries.PaymentQR) *PaymentQRResponse {
	return &PaymentQRResponse{
		QRCode: p.DataURL,
		UPIID:  p.UPIID,
		Amount: Money(p.Amount),
		UPIURL: p.UPIURL,
	}
}
