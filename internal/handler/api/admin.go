package api

import (
	"net/http"
	"time"

	reqdto "storefront-backend/internal/handler/dto/request"
	resdto "storefront-backend/internal/handler/dto/response"
	"storefront-backend/internal/handler/httperr"
	"storefront-backend/internal/pkg/config"
	"storefront-backend/internal/pkg/cookie"
	"storefront-backend/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type AdminHandler struct {
	cmds      commands.AdminCommands
	cookieCfg config.CookieConfig
}

func NewAdminHandler(cmds commands.AdminCommands, cfg config.Config) *AdminHandler {
	return &AdminHandler{cmds: cmds, cookieCfg: cfg.Cookie}
}

// @Summary Admin login
// @Description Issues an admin token in the body and in the admin_token cookie
// @Tags admin
// @Accept json
// @Produce json
// @Param request body reqdto.AdminLoginRequest true "Credentials"
// @Success 200 {object} resdto.AdminLoginResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Router /api/admin/login [post]
func (h *AdminHandler) Login(c *gin.Context) {
	var req reqdto.AdminLoginRequest
	if !bindJSON(c, &req) {
		return
	}
	session, err := h.cmds.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	cookie.SetAdminToken(c, h.cookieCfg, session.Token, time.Until(session.ExpiresAt))
	c.JSON(http.StatusOK, resdto.AdminLoginResponse{
		Success:   true,
		Token:     session.Token,
		ExpiresAt: session.ExpiresAt.Unix(),
	})
}

// @Summary Admin logout
// @Tags admin
// @Success 204 "No Content"
// @Router /api/admin/logout [post]
func (h *AdminHandler) Logout(c *gin.Context) {
	// Tokens are stateless; clearing the cookie is all there is to do.
	cookie.ClearAdminToken(c, h.cookieCfg)
	c.Status(http.StatusNoContent)
}
