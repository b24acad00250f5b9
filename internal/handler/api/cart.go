package api

import (
	"net/http"

	"storefront-backend/internal/domain/cart"
	reqdto "storefront-backend/internal/handler/dto/request"
	resdto "storefront-backend/internal/handler/dto/response"
	"storefront-backend/internal/handler/httperr"
	"storefront-backend/internal/usecase/commands"
	"storefront-backend/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type CartHandler struct {
	cmds commands.CartCommands
	q    queries.CartQueries
}

func NewCartHandler(cmds commands.CartCommands, q queries.CartQueries) *CartHandler {
	return &CartHandler{cmds: cmds, q: q}
}

// @Summary Save cart
// @Description Durable write first, then a time-boxed best-effort cache mirror
// @Tags cart
// @Accept json
// @Produce json
// @Param request body reqdto.SaveCartRequest true "Owner email and cart"
// @Success 200 {object} resdto.MessageResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/cart/save [post]
func (h *CartHandler) Save(c *gin.Context) {
	var req reqdto.SaveCartRequest
	if !bindJSON(c, &req) {
		return
	}
	if err := h.cmds.Save(c.Request.Context(), req.Email, cart.Items(req.Cart)); err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.OK("Cart saved successfully"))
}

// @Summary Load cart
// @Description Cache first within the time box, durable store otherwise. Unknown users get an empty cart.
// @Tags cart
// @Produce json
// @Param email query string true "Owner email"
// @Success 200 {object} resdto.CartResponse
// @Failure 400 {object} httperr.Response
// @Router /api/cart/load [get]
func (h *CartHandler) Load(c *gin.Context) {
	items, err := h.q.Load(c.Request.Context(), c.Query("email"))
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	if items == nil {
		items = cart.Empty()
	}
	c.JSON(http.StatusOK, resdto.CartResponse{Success: true, Cart: items})
}
