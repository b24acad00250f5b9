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

type OrderHandler struct {
	cmds commands.OrderCommands
	q    queries.OrderQueries
}

func NewOrderHandler(cmds commands.OrderCommands, q queries.OrderQueries) *OrderHandler {
	return &OrderHandler{cmds: cmds, q: q}
}

// @Summary Place order
// @Description Creates a pending order. A coupon is re-validated and redeemed in the same transaction. Emails are best effort.
// @Tags orders
// @Accept json
// @Produce json
// @Param request body reqdto.CreateOrderRequest true "Order"
// @Success 201 {object} resdto.OrderEnvelope
// @Failure 400 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 500 {object} httperr.Response
// @Router /api/orders [post]
func (h *OrderHandler) Create(c *gin.Context) {
	var req reqdto.CreateOrderRequest
	if !bindJSON(c, &req) {
		return
	}
	o, err := h.cmds.Create(c.Request.Context(), req.ToInput())
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.Header("Location", "/api/orders/track/"+o.Number().String())
	c.JSON(http.StatusCreated, resdto.OrderEnvelope{Success: true, Order: resdto.FromOrder(o)})
}

// @Summary Track order
// @Tags orders
// @Produce json
// @Param orderNumber path string true "Order number"
// @Success 200 {object} resdto.OrderResponse
// @Failure 404 {object} httperr.Response
// @Router /api/orders/track/{orderNumber} [get]
func (h *OrderHandler) Track(c *gin.Context) {
	view, err := h.q.Track(c.Request.Context(), c.Param("orderNumber"))
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	res, err := resdto.FromOrderView(view)
	if err != nil {
		httperr.AbortInternal(c, err, "Internal server error")
		return
	}
	c.JSON(http.StatusOK, res)
}

// @Summary Customer orders
// @Description Orders placed with an email address, newest first
// @Tags orders
// @Produce json
// @Param email path string true "Customer email"
// @Success 200 {object} resdto.OrderListEnvelope
// @Failure 400 {object} httperr.Response
// @Router /api/orders/user/{email} [get]
func (h *OrderHandler) ListForCustomer(c *gin.Context) {
	views, err := h.q.ListForCustomer(c.Request.Context(), c.Param("email"))
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	h.respondList(c, views)
}

// @Summary List orders
// @Tags orders
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.OrderListEnvelope
// @Failure 401 {object} httperr.Response
// @Router /api/orders [get]
func (h *OrderHandler) List(c *gin.Context) {
	views, err := h.q.List(c.Request.Context())
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	h.respondList(c, views)
}

// @Summary Update order status
// @Description Any of pending, processing, shipped, delivered, cancelled. Transitions are not restricted.
// @Tags orders
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param orderNumber path string true "Order number"
// @Param request body reqdto.UpdateOrderStatusRequest true "New status"
// @Success 200 {object} resdto.OrderStatusResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/orders/{orderNumber}/status [put]
func (h *OrderHandler) UpdateStatus(c *gin.Context) {
	var req reqdto.UpdateOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Status is required", nil)
		return
	}
	status, err := h.cmds.UpdateStatus(c.Request.Context(), c.Param("orderNumber"), req.Status)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.OrderStatusResponse{
		Success: true,
		Status:  status.String(),
		Message: "Order status updated to " + status.String(),
	})
}

// @Summary Delete order
// @Tags orders
// @Produce json
// @Security BearerAuth
// @Param orderNumber path string true "Order number"
// @Success 200 {object} resdto.MessageResponse
// @Failure 404 {object} httperr.Response
// @Router /api/orders/{orderNumber} [delete]
func (h *OrderHandler) Delete(c *gin.Context) {
	if err := h.cmds.Delete(c.Request.Context(), c.Param("orderNumber")); err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.OK("Order deleted successfully"))
}

// @Summary Reset orders
// @Description Deletes every order and restarts numbering of internal ids
// @Tags orders
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.MessageResponse
// @Router /api/orders/reset [post]
func (h *OrderHandler) Reset(c *gin.Context) {
	if err := h.cmds.Reset(c.Request.Context()); err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.OK("All orders deleted and sales reset"))
}

func (h *OrderHandler) respondList(c *gin.Context, views []*queries.OrderView) {
	res, err := resdto.FromOrderList(views)
	if err != nil {
		httperr.AbortInternal(c, err, "Internal server error")
		return
	}
	c.JSON(http.StatusOK, resdto.OrderListEnvelope{Success: true, Orders: res})
}
