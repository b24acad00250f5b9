package api

import (
	"net/http"

	reqdto "storefront-backend/internal/handler/dto/request"
	resdto "storefront-backend/internal/handler/dto/response"
	"storefront-backend/internal/handler/httperr"
	"storefront-backend/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	cmds commands.UserCommands
}

func NewUserHandler(cmds commands.UserCommands) *UserHandler {
	return &UserHandler{cmds: cmds}
}

// @Summary Register
// @Tags users
// @Accept json
// @Produce json
// @Param request body reqdto.RegisterRequest true "New user"
// @Success 201 {object} resdto.UserEnvelope
// @Failure 400 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/users/register [post]
func (h *UserHandler) Register(c *gin.Context) {
	var req reqdto.RegisterRequest
	if !bindJSON(c, &req) {
		return
	}
	u, err := h.cmds.Register(c.Request.Context(), commands.RegisterInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Phone:    req.Phone,
	})
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromUser(u))
}

// @Summary Login
// @Tags users
// @Accept json
// @Produce json
// @Param request body reqdto.LoginRequest true "Credentials"
// @Success 200 {object} resdto.UserEnvelope
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Router /api/users/login [post]
func (h *UserHandler) Login(c *gin.Context) {
	var req reqdto.LoginRequest
	if !bindJSON(c, &req) {
		return
	}
	u, err := h.cmds.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromUser(u))
}

// @Summary Sync identity-provider login
// @Description Ensures a local user row exists for an externally authenticated user
// @Tags users
// @Accept json
// @Produce json
// @Param request body reqdto.IdentitySyncRequest true "Identity"
// @Success 200 {object} resdto.UserEnvelope
// @Failure 400 {object} httperr.Response
// @Router /api/users/google-login [post]
func (h *UserHandler) SyncIdentity(c *gin.Context) {
	var req reqdto.IdentitySyncRequest
	if !bindJSON(c, &req) {
		return
	}
	u, err := h.cmds.SyncIdentity(c.Request.Context(), commands.IdentityInput{
		ExternalID: req.UID,
		Name:       req.Name,
		Email:      req.Email,
		Phone:      req.Phone,
	})
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromUser(u))
}
