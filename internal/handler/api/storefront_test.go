//go:build unit

package api_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"testing"
	"time"

	"storefront-backend/internal/domain/cart"
	"storefront-backend/internal/handler/api"
	resdto "storefront-backend/internal/handler/dto/response"
	"storefront-backend/internal/pkg/config"
	"storefront-backend/internal/pkg/cookie"
	"storefront-backend/internal/pkg/errs"
	"storefront-backend/internal/usecase/commands"
	"storefront-backend/internal/usecase/queries"
	"storefront-backend/internal/usecase/shared"
	"storefront-backend/tests/common/builder"
	"storefront-backend/tests/common/httptest"
	commandsmock "storefront-backend/tests/mock/commands"
	queriesmock "storefront-backend/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	return gin.New()
}

func TestCartHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	cmds := commandsmock.NewMockCartCommands(ctrl)
	q := queriesmock.NewMockCartQueries(ctrl)
	h := api.NewCartHandler(cmds, q)
	router := newTestRouter()
	router.POST("/api/cart", h.Save)
	router.GET("/api/cart", h.Load)

	t.Run("save passes items through untouched", func(t *testing.T) {
		cmds.EXPECT().Save(gomock.Any(), "asha@example.com", gomock.Any()).
			DoAndReturn(func(_ any, _ string, items cart.Items) error {
				require.Len(t, items, 1)
				assert.JSONEq(t, `{"id":1,"size":"L"}`, string(items[0]))
				return nil
			})

		rec := httptest.PerformRequest(t, router, http.MethodPost, "/api/cart",
			map[string]any{"email": "asha@example.com", "cart": []any{map[string]any{"id": 1, "size": "L"}}}, "")

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"success":true,"message":"Cart saved successfully"}`, rec.Body.String())
	})

	t.Run("save for unknown user", func(t *testing.T) {
		cmds.EXPECT().Save(gomock.Any(), "ghost@example.com", gomock.Any()).Return(commands.ErrCartUserNotFound)

		rec := httptest.PerformRequest(t, router, http.MethodPost, "/api/cart",
			map[string]any{"email": "ghost@example.com", "cart": []any{}}, "")

		httptest.AssertErrorResponse(t, rec, http.StatusNotFound, "User not found")
	})

	t.Run("load", func(t *testing.T) {
		q.EXPECT().Load(gomock.Any(), "asha@example.com").Return(cart.Items{json.RawMessage(`{"id":2}`)}, nil)

		rec := httptest.PerformRequest(t, router, http.MethodGet, "/api/cart?email=asha@example.com", nil, "")

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"success":true,"cart":[{"id":2}]}`, rec.Body.String())
	})

	t.Run("load nil is an empty array", func(t *testing.T) {
		q.EXPECT().Load(gomock.Any(), "new@example.com").Return(nil, nil)

		rec := httptest.PerformRequest(t, router, http.MethodGet, "/api/cart?email=new@example.com", nil, "")

		assert.JSONEq(t, `{"success":true,"cart":[]}`, rec.Body.String())
	})
}

func TestSettingsHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	cmds := commandsmock.NewMockSettingsCommands(ctrl)
	q := queriesmock.NewMockSettingsQueries(ctrl)
	h := api.NewSettingsHandler(cmds, q)
	router := newTestRouter()
	router.GET("/api/settings/shipping", h.GetShipping)
	router.PUT("/api/settings/shipping", h.SetShipping)

	t.Run("get", func(t *testing.T) {
		q.EXPECT().ShippingRate(gomock.Any()).Return(decimal.NewFromInt(5), nil)

		rec := httptest.PerformRequest(t, router, http.MethodGet, "/api/settings/shipping", nil, "")

		assert.JSONEq(t, `{"success":true,"rate":5.00}`, rec.Body.String())
	})

	t.Run("set", func(t *testing.T) {
		cmds.EXPECT().SetShippingRate(gomock.Any(), decimalEq(decimal.RequireFromString("7.5"))).
			Return(decimal.RequireFromString("7.5"), nil)

		rec := httptest.PerformRequest(t, router, http.MethodPut, "/api/settings/shipping", map[string]any{"rate": 7.5}, "")

		var body resdto.ShippingRateResponse
		httptest.AssertSuccessResponse(t, rec, http.StatusOK, &body)
		assert.Equal(t, "Shipping rate updated", body.Message)
		assert.Contains(t, rec.Body.String(), `"rate":7.50`)
	})

	t.Run("missing rate", func(t *testing.T) {
		rec := httptest.PerformRequest(t, router, http.MethodPut, "/api/settings/shipping", map[string]any{}, "")

		httptest.AssertErrorResponse(t, rec, http.StatusBadRequest, "Rate is required")
	})

	t.Run("negative rate", func(t *testing.T) {
		cmds.EXPECT().SetShippingRate(gomock.Any(), gomock.Any()).Return(decimal.Zero, commands.ErrNegativeRate)

		rec := httptest.PerformRequest(t, router, http.MethodPut, "/api/settings/shipping", map[string]any{"rate": -1}, "")

		httptest.AssertErrorResponse(t, rec, http.StatusBadRequest, "Rate cannot be negative")
	})
}

func TestFeedbackHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	cmds := commandsmock.NewMockFeedbackCommands(ctrl)
	router := newTestRouter()
	router.POST("/api/feedback", api.NewFeedbackHandler(cmds).Submit)
	body := map[string]any{"name": "Meera", "email": "meera@example.com", "phone": "555", "query": "Hello"}

	t.Run("success maps query to message", func(t *testing.T) {
		cmds.EXPECT().Submit(gomock.Any(), shared.Feedback{Name: "Meera", Email: "meera@example.com", Phone: "555", Message: "Hello"}).Return(nil)

		rec := httptest.PerformRequest(t, router, http.MethodPost, "/api/feedback", body, "")

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "Thank you for your feedback!")
	})

	t.Run("delivery failure", func(t *testing.T) {
		cmds.EXPECT().Submit(gomock.Any(), gomock.Any()).
			Return(errs.Mark(errs.New("smtp refused"), commands.ErrFeedbackNotSent))

		rec := httptest.PerformRequest(t, router, http.MethodPost, "/api/feedback", body, "")

		httptest.AssertErrorResponse(t, rec, http.StatusInternalServerError, "Failed to send feedback.")
		assert.NotContains(t, rec.Body.String(), "smtp")
	})

	t.Run("validation", func(t *testing.T) {
		cmds.EXPECT().Submit(gomock.Any(), gomock.Any()).Return(commands.ErrFeedbackEmail)

		rec := httptest.PerformRequest(t, router, http.MethodPost, "/api/feedback", body, "")

		httptest.AssertErrorResponse(t, rec, http.StatusBadRequest, "Please enter a valid email address.")
	})
}

func TestPaymentHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	q := queriesmock.NewMockPaymentQueries(ctrl)
	router := newTestRouter()
	router.GET("/api/payment/qr", api.NewPaymentHandler(q).QRCode)

	t.Run("success", func(t *testing.T) {
		q.EXPECT().QRCode(gomock.Any(), "250").Return(&queries.PaymentQR{
			DataURL: "data:image/png;base64,AAAA",
			UPIID:   "shop@upi",
			Amount:  decimal.NewFromInt(250),
			UPIURL:  "upi://pay?pa=shop@upi&am=250",
		}, nil)

		rec := httptest.PerformRequest(t, router, http.MethodGet, "/api/payment/qr?amount=250", nil, "")

		assert.JSONEq(t, `{
			"qrCode": "data:image/png;base64,AAAA",
			"upiId": "shop@upi",
			"amount": 250.00,
			"upiUrl": "upi://pay?pa=shop@upi&am=250"
		}`, rec.Body.String())
	})

	t.Run("bad amount", func(t *testing.T) {
		q.EXPECT().QRCode(gomock.Any(), "").Return(nil, queries.ErrInvalidAmount)

		rec := httptest.PerformRequest(t, router, http.MethodGet, "/api/payment/qr", nil, "")

		httptest.AssertErrorResponse(t, rec, http.StatusBadRequest, "Amount is required")
	})

	t.Run("render failure", func(t *testing.T) {
		q.EXPECT().QRCode(gomock.Any(), "10").Return(nil, errors.New("encoder exploded"))

		rec := httptest.PerformRequest(t, router, http.MethodGet, "/api/payment/qr?amount=10", nil, "")

		httptest.AssertErrorResponse(t, rec, http.StatusInternalServerError, "Failed to generate QR code")
	})
}

func TestUserHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	cmds := commandsmock.NewMockUserCommands(ctrl)
	h := api.NewUserHandler(cmds)
	router := newTestRouter()
	router.POST("/api/users/register", h.Register)
	router.POST("/api/users/login", h.Login)
	router.POST("/api/users/sync", h.SyncIdentity)
	stored := builder.NewUserBuilder().WithEmail("asha@example.com").WithName("Asha").BuildStored()

	t.Run("register", func(t *testing.T) {
		cmds.EXPECT().Register(gomock.Any(), commands.RegisterInput{
			Name: "Asha", Email: "asha@example.com", Password: "longenough", Phone: "1",
		}).Return(stored, nil)

		rec := httptest.PerformRequest(t, router, http.MethodPost, "/api/users/register",
			map[string]any{"name": "Asha", "email": "asha@example.com", "password": "longenough", "phone": "1"}, "")

		var body resdto.UserEnvelope
		httptest.AssertSuccessResponse(t, rec, http.StatusCreated, &body)
		assert.Equal(t, "Asha", body.User.Name)
		assert.NotContains(t, rec.Body.String(), "password")
	})

	t.Run("register conflict", func(t *testing.T) {
		cmds.EXPECT().Register(gomock.Any(), gomock.Any()).Return(nil, commands.ErrEmailTaken)

		rec := httptest.PerformRequest(t, router, http.MethodPost, "/api/users/register",
			map[string]any{"name": "Asha", "email": "asha@example.com", "password": "longenough"}, "")

		httptest.AssertErrorResponse(t, rec, http.StatusConflict, "Email already registered")
	})

	t.Run("login failure", func(t *testing.T) {
		cmds.EXPECT().Login(gomock.Any(), "asha@example.com", "wrong").Return(nil, commands.ErrInvalidCredentials)

		rec := httptest.PerformRequest(t, router, http.MethodPost, "/api/users/login",
			map[string]any{"email": "asha@example.com", "password": "wrong"}, "")

		httptest.AssertErrorResponse(t, rec, http.StatusUnauthorized, "Invalid email or password")
	})

	t.Run("sync", func(t *testing.T) {
		cmds.EXPECT().SyncIdentity(gomock.Any(), commands.IdentityInput{ExternalID: "uid-1", Email: "asha@example.com"}).Return(stored, nil)

		rec := httptest.PerformRequest(t, router, http.MethodPost, "/api/users/sync",
			map[string]any{"uid": "uid-1", "email": "asha@example.com"}, "")

		assert.Equal(t, http.StatusOK, rec.Code)
	})
}

func TestAdminHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	cmds := commandsmock.NewMockAdminCommands(ctrl)
	cfg := config.Config{Cookie: config.CookieConfig{SameSite: "Lax"}}
	h := api.NewAdminHandler(cmds, cfg)
	router := newTestRouter()
	router.POST("/api/admin/login", h.Login)
	router.POST("/api/admin/logout", h.Logout)

	t.Run("login sets cookie", func(t *testing.T) {
		expires := time.Now().Add(time.Hour).Truncate(time.Second)
		cmds.EXPECT().Login(gomock.Any(), "admin", "secret").
			Return(&commands.AdminSession{Token: "tok", ExpiresAt: expires}, nil)

		rec := httptest.PerformRequest(t, router, http.MethodPost, "/api/admin/login",
			map[string]any{"username": "admin", "password": "secret"}, "")

		var body resdto.AdminLoginResponse
		httptest.AssertSuccessResponse(t, rec, http.StatusOK, &body)
		assert.Equal(t, "tok", body.Token)
		assert.Equal(t, expires.Unix(), body.ExpiresAt)
		setCookie := rec.Header().Get("Set-Cookie")
		assert.True(t, strings.HasPrefix(setCookie, cookie.AdminTokenCookieName+"=tok"), setCookie)
		assert.Contains(t, setCookie, "HttpOnly")
	})

	t.Run("bad credentials", func(t *testing.T) {
		cmds.EXPECT().Login(gomock.Any(), "admin", "nope").Return(nil, commands.ErrAdminCredentials)

		rec := httptest.PerformRequest(t, router, http.MethodPost, "/api/admin/login",
			map[string]any{"username": "admin", "password": "nope"}, "")

		httptest.AssertErrorResponse(t, rec, http.StatusUnauthorized, "Invalid username or password")
	})

	t.Run("missing fields", func(t *testing.T) {
		rec := httptest.PerformRequest(t, router, http.MethodPost, "/api/admin/login", map[string]any{"username": "admin"}, "")

		httptest.AssertErrorResponse(t, rec, http.StatusBadRequest, "Invalid request")
	})

	t.Run("logout clears cookie", func(t *testing.T) {
		rec := httptest.PerformRequest(t, router, http.MethodPost, "/api/admin/logout", nil, "")

		assert.Equal(t, http.StatusNoContent, rec.Code)
		assert.Contains(t, rec.Header().Get("Set-Cookie"), "Max-Age=0")
	})
}
