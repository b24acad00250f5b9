//go:build unit || e2e

package authtest

import (
	"net/http"
	"testing"

	"storefront-backend/internal/handler/dto/request"
	"storefront-backend/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

const (
	AdminUsername = "admin"
	AdminPassword = "admin-pass-123"
)

// LoginAdmin returns the admin_token cookie value issued by the admin login endpoint.
func LoginAdmin(t *testing.T, router *gin.Engine) string {
	t.Helper()

	w := httptest.PerformRequest(t, router, http.MethodPost, "/api/admin/login",
		request.AdminLoginRequest{Username: AdminUsername, Password: AdminPassword}, "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	cookie := httptest.ExtractCookie(w, "admin_token")
	require.NotNil(t, cookie, "admin_token cookie not found")
	require.NotEmpty(t, cookie.Value, "admin_token cookie is empty")

	return cookie.Value
}
