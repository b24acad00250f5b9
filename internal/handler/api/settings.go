package api

import (
	"net/http"

	reqdto "storefront-backend/internal/handler/dto/request"
	resdto "storefront-backend/internal/handler/dto/response"
	"storefront-backend/internal/handler/httperr"
	"storefront-backend/internal/usecase/commands"
	"storefront-backend/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type SettingsHandler struct {
	cmds commands.SettingsCommands
	q    queries.SettingsQueries
}

func NewSettingsHandler(cmds commands.SettingsCommands, q queries.SettingsQueries) *SettingsHandler {
	return &SettingsHandler{cmds: cmds, q: q}
}

// @Summary Shipping rate
// @Tags settings
// @Produce json
// @Success 200 {object} resdto.ShippingRateResponse
// @Router /api/settings/shipping [get]
func (h *SettingsHandler) GetShipping(c *gin.Context) {
	rate, err := h.q.ShippingRate(c.Request.Context())
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.ShippingRateResponse{Success: true, Rate: resdto.NewMoney(rate)})
}

// @Summary Set shipping rate
// @Tags settings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.ShippingRateRequest true "Rate per km"
// @Success 200 {object} resdto.ShippingRateResponse
// @Failure 400 {object} httperr.Response
// @Router /api/settings/shipping [post]
func (h *SettingsHandler) SetShipping(c *gin.Context) {
	var req reqdto.ShippingRateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid rate value", nil)
		return
	}
	if req.Rate == nil {
		httperr.Abort(c, commands.ErrRateRequired)
		return
	}
	rate, err := h.cmds.SetShippingRate(c.Request.Context(), *req.Rate)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.ShippingRateResponse{
		Success: true,
		Rate:    resdto.NewMoney(rate),
		Message: "Shipping rate updated",
	})
}
