package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"storefront-backend/internal/handler/httperr"
	"storefront-backend/internal/pkg/cookie"
	"storefront-backend/internal/usecase"

	"github.com/gin-gonic/gin"
)

type AuthMiddleware struct {
	tokenValidator usecase.TokenValidator
}

const ctxAdminKey = "admin_subject"

func NewAuthMiddleware(tokenValidator usecase.TokenValidator) *AuthMiddleware {
	return &AuthMiddleware{
		tokenValidator: tokenValidator,
	}
}

// RequireAdmin accepts the admin token from the admin_token cookie or an
// Authorization: Bearer header.
func (m *AuthMiddleware) RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := cookie.GetAdminToken(c)
		if token == "" {
			token = bearerToken(c)
		}

		if token == "" {
			abortUnauthorized(c, "Access token required")
			return
		}

		subject, err := m.tokenValidator.ValidateAdminToken(token)
		if err != nil {
			slog.Warn("Token validation failed in auth middleware", "error", err.Error())
			abortUnauthorized(c, "Invalid or expired token")
			return
		}

		c.Set(ctxAdminKey, subject)
		c.Next()
	}
}

func GetAdmin(c *gin.Context) (string, bool) {
	v, exists := c.Get(ctxAdminKey)
	if !exists {
		return "", false
	}
	subject, ok := v.(string)
	return subject, ok
}

func bearerToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if authHeader != "" && strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimSpace(authHeader[len("Bearer "):])
	}
	return ""
}

func abortUnauthorized(c *gin.Context, msg string) {
	resp := httperr.Response{Status: http.StatusUnauthorized}
	resp.Error.Message = msg
	c.AbortWithStatusJSON(http.StatusUnauthorized, resp)
}
