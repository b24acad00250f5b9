package api

import (
	"net/http"

	resdto "storefront-backend/internal/handler/dto/response"
	"storefront-backend/internal/handler/httperr"
	"storefront-backend/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type PaymentHandler struct {
	q queries.PaymentQueries
}

func NewPaymentHandler(q queries.PaymentQueries) *PaymentHandler {
	return &PaymentHandler{q: q}
}

// @Summary Payment QR code
// @Description UPI payment link for amount, rendered as a PNG data URL
// @Tags payment
// @Produce json
// @Param amount query string true "Amount"
// @Success 200 {object} resdto.PaymentQRResponse
// @Failure 400 {object} httperr.Response
// @Failure 500 {object} httperr.Response
// @Router /api/payment/qrcode [get]
func (h *PaymentHandler) QRCode(c *gin.Context) {
	qr, err := h.q.QRCode(c.Request.Context(), c.Query("amount"))
	if err != nil {
		if httperr.StatusOf(err) == http.StatusInternalServerError {
			httperr.AbortInternal(c, err, "Failed to generate QR code")
			return
		}
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromPaymentQR(qr))
}
