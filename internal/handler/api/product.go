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

type ProductHandler struct {
	cmds commands.ProductCommands
	q    queries.ProductQueries
}

func NewProductHandler(cmds commands.ProductCommands, q queries.ProductQueries) *ProductHandler {
	return &ProductHandler{cmds: cmds, q: q}
}

// @Summary List products
// @Description List the catalog ordered by id
// @Tags products
// @Produce json
// @Success 200 {array} resdto.ProductResponse
// @Failure 500 {object} httperr.Response
// @Router /api/products [get]
func (h *ProductHandler) List(c *gin.Context) {
	views, err := h.q.List(c.Request.Context())
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	res, err := resdto.FromProductList(views)
	if err != nil {
		httperr.AbortInternal(c, err, "Internal server error")
		return
	}
	c.JSON(http.StatusOK, res)
}

// @Summary Get product
// @Tags products
// @Produce json
// @Param id path int true "Product ID"
// @Success 200 {object} resdto.ProductResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/products/{id} [get]
func (h *ProductHandler) Get(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	view, err := h.q.Get(c.Request.Context(), id)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	res, err := resdto.FromProductView(view)
	if err != nil {
		httperr.AbortInternal(c, err, "Internal server error")
		return
	}
	c.JSON(http.StatusOK, res)
}

// @Summary Create product
// @Tags products
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.ProductRequest true "Product"
// @Success 201 {object} resdto.ProductEnvelope
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Router /api/products [post]
func (h *ProductHandler) Create(c *gin.Context) {
	var req reqdto.ProductRequest
	if !bindJSON(c, &req) {
		return
	}
	in, err := req.ToInput()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, invalidRequest, nil)
		return
	}
	p, err := h.cmds.Create(c.Request.Context(), in)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	h.respondProduct(c, http.StatusCreated, p.ID())
}

// @Summary Update product
// @Description Partial update; images replaces image and extra_images
// @Tags products
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Product ID"
// @Param request body reqdto.ProductRequest true "Fields to change"
// @Success 200 {object} resdto.ProductEnvelope
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/products/{id} [put]
func (h *ProductHandler) Update(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	var req reqdto.ProductRequest
	if !bindJSON(c, &req) {
		return
	}
	in, err := req.ToInput()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, invalidRequest, nil)
		return
	}
	if _, err := h.cmds.Update(c.Request.Context(), id, in); err != nil {
		httperr.Abort(c, err)
		return
	}
	h.respondProduct(c, http.StatusOK, id)
}

// @Summary Delete product
// @Tags products
// @Produce json
// @Security BearerAuth
// @Param id path int true "Product ID"
// @Success 200 {object} resdto.MessageResponse
// @Failure 404 {object} httperr.Response
// @Router /api/products/{id} [delete]
func (h *ProductHandler) Delete(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	if err := h.cmds.Delete(c.Request.Context(), id); err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.OK("Product deleted successfully"))
}

func (h *ProductHandler) respondProduct(c *gin.Context, status int, id int64) {
	view, err := h.q.Get(c.Request.Context(), id)
	if err != nil {
		httperr.AbortInternal(c, err, "Failed to load product")
		return
	}
	res, err := resdto.FromProductView(view)
	if err != nil {
		httperr.AbortInternal(c, err, "Failed to load product")
		return
	}
	c.JSON(status, resdto.ProductEnvelope{Success: true, Product: res})
}
