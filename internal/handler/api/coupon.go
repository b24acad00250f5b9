package api

import (
	"net/http"

	reqdto "storefront-backend/internal/handler/dto/request"
	resdto "storefront-backend/internal/handler/dto/response"
	"storefront-backend/internal/handler/httperr"
	"storefront-backend/internal/usecase/commands"
	"storefront-backend/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type CouponHandler struct {
	cmds commands.CouponCommands
	q    queries.CouponQueries
}

func NewCouponHandler(cmds commands.CouponCommands, q queries.CouponQueries) *CouponHandler {
	return &CouponHandler{cmds: cmds, q: q}
}

// @Summary Validate coupon
// @Description Preview a coupon against a cart total. Never changes usage counts.
// @Tags coupons
// @Accept json
// @Produce json
// @Param request body reqdto.ValidateCouponRequest true "Code and cart total"
// @Success 200 {object} resdto.CouponValidationResponse
// @Failure 400 {object} httperr.Response
// @Router /api/coupons/validate [post]
func (h *CouponHandler) Validate(c *gin.Context) {
	var req reqdto.ValidateCouponRequest
	if !bindJSON(c, &req) {
		return
	}
	total := decimal.Zero
	if req.CartTotal != nil {
		total = *req.CartTotal
	}
	res, err := h.q.Validate(c.Request.Context(), req.Code, total)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromCouponValidation(res))
}

// @Summary List coupons
// @Tags coupons
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.CouponListEnvelope
// @Failure 401 {object} httperr.Response
// @Router /api/admin/coupons [get]
func (h *CouponHandler) List(c *gin.Context) {
	views, err := h.q.List(c.Request.Context())
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.CouponListEnvelope{Success: true, Coupons: resdto.FromCouponList(views)})
}

// @Summary Create coupon
// @Tags coupons
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CouponRequest true "Coupon"
// @Success 201 {object} resdto.CouponEnvelope
// @Failure 400 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/admin/coupons [post]
func (h *CouponHandler) Create(c *gin.Context) {
	var req reqdto.CouponRequest
	if !bindJSON(c, &req) {
		return
	}
	created, err := h.cmds.Create(c.Request.Context(), req.ToInput())
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.CouponEnvelope{
		Success:  true,
		CouponID: created.ID(),
		Coupon:   resdto.FromCoupon(created),
		Message:  "Coupon created successfully",
	})
}

// @Summary Update coupon
// @Description Partial update. used_count cannot be changed.
// @Tags coupons
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Coupon ID"
// @Param request body reqdto.CouponRequest true "Fields to change"
// @Success 200 {object} resdto.CouponEnvelope
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/admin/coupons/{id} [put]
func (h *CouponHandler) Update(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	var req reqdto.CouponRequest
	if !bindJSON(c, &req) {
		return
	}
	updated, err := h.cmds.Update(c.Request.Context(), id, req.ToInput())
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.CouponEnvelope{
		Success:  true,
		CouponID: updated.ID(),
		Coupon:   resdto.FromCoupon(updated),
		Message:  "Coupon updated successfully",
	})
}

// @Summary Delete coupon
// @Tags coupons
// @Produce json
// @Security BearerAuth
// @Param id path int true "Coupon ID"
// @Success 200 {object} resdto.MessageResponse
// @Failure 404 {object} httperr.Response
// @Router /api/admin/coupons/{id} [delete]
func (h *CouponHandler) Delete(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	if err := h.cmds.Delete(c.Request.Context(), id); err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.OK("Coupon deleted successfully"))
}
