//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"

	"storefront-backend/internal/domain/order"
	"storefront-backend/internal/handler/api"
	resdto "storefront-backend/internal/handler/dto/response"
	"storefront-backend/internal/usecase/commands"
	"storefront-backend/internal/usecase/queries"
	"storefront-backend/tests/common/builder"
	"storefront-backend/tests/common/httptest"
	"storefront-backend/tests/common/testutil"
	commandsmock "storefront-backend/tests/mock/commands"
	queriesmock "storefront-backend/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type OrderHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockOrderCommands
	mockQueries  *queriesmock.MockOrderQueries
	handler      *api.OrderHandler
}

func (s *OrderHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockOrderCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockOrderQueries(s.mockCtrl)
	s.handler = api.NewOrderHandler(s.mockCommands, s.mockQueries)

	s.router.POST("/api/orders", s.handler.Create)
	s.router.GET("/api/orders/track/:orderNumber", s.handler.Track)
	s.router.GET("/api/orders/user/:email", s.handler.ListForCustomer)
	s.router.GET("/api/orders", s.handler.List)
	s.router.PUT("/api/orders/:orderNumber/status", s.handler.UpdateStatus)
	s.router.DELETE("/api/orders/:orderNumber", s.handler.Delete)
	s.router.POST("/api/orders/reset", s.handler.Reset)
}

func (s *OrderHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestOrderHandlerSuite(t *testing.T) {
	suite.Run(t, new(OrderHandlerTestSuite))
}

func orderRequestBody() map[string]any {
	return map[string]any{
		"customer_name":    "Asha Rao",
		"customer_email":   "asha@example.com",
		"customer_phone":   "9876543210",
		"shipping_address": "12 MG Road",
		"city":             "Bengaluru",
		"state":            "Karnataka",
		"zip_code":         "560001",
		"total_amount":     100,
		"coupon_code":      "SAVE10",
		"discount_amount":  10,
		"final_amount":     90,
		"items": []map[string]any{
			{"id": 1, "name": "Ceramic Mug", "quantity": 2, "price": 50, "image": "mug.jpg"},
		},
	}
}

// ================================================================================
// TestCreate
// ================================================================================

func (s *OrderHandlerTestSuite) TestCreate() {
	created, err := builder.NewOrderBuilder().WithCoupon("SAVE10", decimal.NewFromInt(10)).BuildDomain()
	s.Require().NoError(err)

	s.Run("success: returns 201 with the stored order", func() {
		s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ any, in commands.CreateOrderInput) (*order.Order, error) {
				s.Equal("SAVE10", in.CouponCode)
				s.True(in.TotalAmount.Equal(decimal.NewFromInt(100)))
				s.Require().NotNil(in.DiscountAmount)
				s.Require().Len(in.Items, 1)
				s.Equal(int64(1), *in.Items[0].ProductID)
				return created, nil
			})

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/api/orders", orderRequestBody(), "")

		var body struct {
			Success bool           `json:"success"`
			Order   map[string]any `json:"order"`
		}
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.True(body.Success)
		s.Equal(created.Number().String(), body.Order["order_number"])
		s.Equal(90.0, body.Order["final_amount"])
		s.Equal("pending", body.Order["status"])
		httptest.AssertHeaders(s.T(), rec, map[string]string{"Location": "/api/orders/track/" + created.Number().String()})
	})

	invalid := []struct {
		name   string
		mutate func(m map[string]any)
	}{
		{"missing customer_name", testutil.Field("customer_name", nil)},
		{"malformed email", testutil.Field("customer_email", "nope")},
		{"missing city", testutil.Field("city", nil)},
		{"missing total", testutil.Field("total_amount", nil)},
		{"empty items", testutil.Field("items", []any{})},
		{"zero quantity", testutil.Field("items", []map[string]any{{"name": "Mug", "quantity": 0, "price": 1}})},
	}
	for _, tc := range invalid {
		s.Run("error: 400 on "+tc.name, func() {
			body := orderRequestBody()
			tc.mutate(body)

			rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/api/orders", body, "")

			httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
		})
	}

	s.Run("error: coupon rejection surfaces its message", func() {
		s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any()).
			Return(nil, &commands.CouponRejectedError{Message: "This coupon has expired"})

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/api/orders", orderRequestBody(), "")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "This coupon has expired")
	})

	s.Run("error: duplicate number is 409", func() {
		s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil, commands.ErrDuplicateOrderNumber)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/api/orders", orderRequestBody(), "")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "order number already exists")
	})

	s.Run("error: store failure is a generic 500", func() {
		s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil, errors.New("pq: connection reset"))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/api/orders", orderRequestBody(), "")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Internal server error")
		s.NotContains(rec.Body.String(), "connection reset")
	})
}

// ================================================================================
// TestTrack / TestList
// ================================================================================

func (s *OrderHandlerTestSuite) TestTrack() {
	view := &queries.OrderView{
		ID:          3,
		OrderNumber: "ORD-1735787045006-A9ABCDEFG",
		TotalAmount: decimal.RequireFromString("100"),
		FinalAmount: decimal.RequireFromString("100"),
		Status:      "shipped",
	}

	s.Run("success", func() {
		s.mockQueries.EXPECT().Track(gomock.Any(), view.OrderNumber).Return(view, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/orders/track/"+view.OrderNumber, nil, "")

		var body resdto.OrderResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(view.OrderNumber, body.OrderNumber)
		s.Equal("shipped", body.Status)
		s.Contains(rec.Body.String(), `"total_amount":100.00`)
	})

	s.Run("not found", func() {
		s.mockQueries.EXPECT().Track(gomock.Any(), "ORD-X").Return(nil, queries.ErrOrderNotFound)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/orders/track/ORD-X", nil, "")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "order not found")
	})
}

func (s *OrderHandlerTestSuite) TestListForCustomer() {
	s.mockQueries.EXPECT().ListForCustomer(gomock.Any(), "asha@example.com").
		Return([]*queries.OrderView{{OrderNumber: "ORD-1"}, {OrderNumber: "ORD-2"}}, nil)

	rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/orders/user/asha@example.com", nil, "")

	var body resdto.OrderListEnvelope
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
	s.True(body.Success)
	s.Len(body.Orders, 2)
}

func (s *OrderHandlerTestSuite) TestListEmptyIsArray() {
	s.mockQueries.EXPECT().List(gomock.Any()).Return([]*queries.OrderView{}, nil)

	rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/orders", nil, "")

	s.Equal(http.StatusOK, rec.Code)
	s.JSONEq(`{"success":true,"orders":[]}`, rec.Body.String())
}

// ================================================================================
// TestUpdateStatus / TestDelete / TestReset
// ================================================================================

func (s *OrderHandlerTestSuite) TestUpdateStatus() {
	url := "/api/orders/ORD-1735787045006-A9ABCDEFG/status"

	s.Run("success", func() {
		s.mockCommands.EXPECT().UpdateStatus(gomock.Any(), "ORD-1735787045006-A9ABCDEFG", "delivered").
			Return(order.StatusDelivered, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, map[string]any{"status": "delivered"}, "")

		var body resdto.OrderStatusResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("delivered", body.Status)
		s.Equal("Order status updated to delivered", body.Message)
	})

	s.Run("missing status", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, map[string]any{}, "")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Status is required")
	})

	s.Run("invalid status", func() {
		s.mockCommands.EXPECT().UpdateStatus(gomock.Any(), gomock.Any(), "lost").Return(order.Status(""), commands.ErrInvalidStatus)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, map[string]any{"status": "lost"}, "")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "invalid order status")
	})
}

func (s *OrderHandlerTestSuite) TestDeleteAndReset() {
	s.mockCommands.EXPECT().Delete(gomock.Any(), "ORD-9").Return(commands.ErrOrderNotFound)
	rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/api/orders/ORD-9", nil, "")
	httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "order not found")

	s.mockCommands.EXPECT().Reset(gomock.Any()).Return(nil)
	rec = httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/api/orders/reset", nil, "")
	s.Equal(http.StatusOK, rec.Code)
	s.JSONEq(`{"success":true,"message":"All orders deleted and sales reset"}`, rec.Body.String())
}
