package api

import (
	"log/slog"
	"net/http"

	reqdto "storefront-backend/internal/handler/dto/request"
	resdto "storefront-backend/internal/handler/dto/response"
	"storefront-backend/internal/handler/httperr"
	"storefront-backend/internal/pkg/errs"
	"storefront-backend/internal/usecase/commands"
	"storefront-backend/internal/usecase/shared"

	"github.com/gin-gonic/gin"
)

type FeedbackHandler struct {
	cmds commands.FeedbackCommands
}

func NewFeedbackHandler(cmds commands.FeedbackCommands) *FeedbackHandler {
	return &FeedbackHandler{cmds: cmds}
}

// @Summary Submit feedback
// @Tags feedback
// @Accept json
// @Produce json
// @Param request body reqdto.FeedbackRequest true "Feedback"
// @Success 200 {object} resdto.MessageResponse
// @Failure 400 {object} httperr.Response
// @Failure 500 {object} httperr.Response
// @Router /api/feedback [post]
func (h *FeedbackHandler) Submit(c *gin.Context) {
	var req reqdto.FeedbackRequest
	if !bindJSON(c, &req) {
		return
	}
	err := h.cmds.Submit(c.Request.Context(), shared.Feedback{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Message: req.Query,
	})
	switch {
	case err == nil:
		c.JSON(http.StatusOK, resdto.OK("Thank you for your feedback! We have received your message and will get back to you soon."))
	case errs.Is(err, commands.ErrFeedbackNotSent):
		slog.ErrorContext(c.Request.Context(), "feedback delivery failed", "error", err)
		httperr.AbortInternal(c, err, commands.ErrFeedbackNotSent.Error())
	default:
		httperr.Abort(c, err)
	}
}
