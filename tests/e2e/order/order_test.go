//go:build e2e

package order_test

import (
	"net/http"
	"sync"
	"testing"

	"storefront-backend/internal/handler/dto/request"
	"storefront-backend/internal/handler/dto/response"
	"storefront-backend/tests/common/authtest"
	"storefront-backend/tests/common/dbtest"
	"storefront-backend/tests/common/httptest"
	"storefront-backend/tests/e2e"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	ordersURL = "/api/orders"
	trackURL  = "/api/orders/track/"
)

type OrderSuite struct {
	e2e.SharedSuite
}

func TestOrderSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(OrderSuite))
}

func orderRequest(total string, couponCode string) request.CreateOrderRequest {
	price := decimal.RequireFromString(total)
	return request.CreateOrderRequest{
		CustomerName:    "Asha Rao",
		CustomerEmail:   "Asha@Example.com",
		CustomerPhone:   "9876543210",
		ShippingAddress: "12 MG Road",
		City:            "Bengaluru",
		State:           "Karnataka",
		ZipCode:         "560001",
		TotalAmount:     &price,
		Items: []request.OrderItemRequest{
			{Name: "Ceramic Mug", Quantity: 1, Price: &price, Image: "mug.jpg"},
		},
		CouponCode: couponCode,
	}
}

func (s *OrderSuite) TestCreateOrder() {
	s.Run("Normal case: order without coupon is stored pending and trackable", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, ordersURL, orderRequest("100", ""), "")
		var created response.OrderEnvelope
		httptest.AssertSuccessResponse(t, w, http.StatusCreated, &created)
		require.NotNil(t, created.Order)
		assert.Regexp(t, `^ORD-\d+-[A-Z0-9]{9}$`, created.Order.OrderNumber)
		assert.Equal(t, trackURL+created.Order.OrderNumber, w.Header().Get("Location"))

		tw := httptest.PerformRequest(t, s.Router, http.MethodGet, trackURL+created.Order.OrderNumber, nil, "")
		var tracked response.OrderResponse
		httptest.AssertSuccessResponse(t, tw, http.StatusOK, &tracked)

		expected := &response.OrderResponse{
			OrderNumber:     created.Order.OrderNumber,
			CustomerName:    "Asha Rao",
			CustomerEmail:   "asha@example.com",
			CustomerPhone:   "9876543210",
			ShippingAddress: "12 MG Road",
			City:            "Bengaluru",
			State:           "Karnataka",
			ZipCode:         "560001",
			Items: []response.OrderItemResponse{
				{Name: "Ceramic Mug", Quantity: 1, Price: response.NewMoney(decimal.NewFromInt(100)), Image: "mug.jpg"},
			},
			TotalAmount:    response.NewMoney(decimal.NewFromInt(100)),
			DiscountAmount: response.NewMoney(decimal.Zero),
			FinalAmount:    response.NewMoney(decimal.NewFromInt(100)),
			Status:         "pending",
		}
		opts := []cmp.Option{
			cmpopts.IgnoreFields(response.OrderResponse{}, "ID", "CreatedAt"),
			cmp.Comparer(func(a, b response.Money) bool {
				return decimal.Decimal(a).Equal(decimal.Decimal(b))
			}),
		}
		if diff := cmp.Diff(expected, &tracked, opts...); diff != "" {
			t.Errorf("tracked order mismatch (-want +got):\n%s", diff)
		}
	})

	s.Run("Normal case: coupon discount is computed server-side and usage is counted", func() {
		t := s.T()
		dbtest.CreateTestCoupon(t, s.DB, "SAVE10", "percentage", "10", nil)

		req := orderRequest("300", "save10")
		bogus := decimal.NewFromInt(299)
		req.DiscountAmount = &bogus
		req.FinalAmount = &bogus

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, ordersURL, req, "")
		var created response.OrderEnvelope
		httptest.AssertSuccessResponse(t, w, http.StatusCreated, &created)

		require.NotNil(t, created.Order.CouponCode)
		assert.Equal(t, "SAVE10", *created.Order.CouponCode)
		assert.True(t, decimal.Decimal(created.Order.DiscountAmount).Equal(decimal.NewFromInt(30)))
		assert.True(t, decimal.Decimal(created.Order.FinalAmount).Equal(decimal.NewFromInt(270)))
		assert.Equal(t, int32(1), dbtest.CouponUsedCount(t, s.DB, "SAVE10"))
	})

	s.Run("Error case: rejected coupon stores nothing", func() {
		t := s.T()
		limit := int32(0)
		dbtest.CreateTestCoupon(t, s.DB, "GONE", "fixed", "50", &limit)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, ordersURL, orderRequest("300", "GONE"), "")
		httptest.AssertErrorResponse(t, w, http.StatusBadRequest, "This coupon has reached its usage limit")
		assert.Equal(t, 0, dbtest.CountOrders(t, s.DB))
	})

	s.Run("Error case: unknown coupon", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, ordersURL, orderRequest("300", "NOPE"), "")
		httptest.AssertErrorResponse(t, w, http.StatusBadRequest, "Invalid coupon code")
	})
}

func (s *OrderSuite) TestConcurrentRedemption() {
	s.Run("Limit of one admits exactly one order", func() {
		t := s.T()
		limit := int32(1)
		dbtest.CreateTestCoupon(t, s.DB, "ONCE", "fixed", "20", &limit)

		const workers = 6
		codes := make([]int, workers)
		var wg sync.WaitGroup
		for i := range workers {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				w := httptest.PerformRequest(t, s.Router, http.MethodPost, ordersURL, orderRequest("100", "ONCE"), "")
				codes[i] = w.Code
			}(i)
		}
		wg.Wait()

		created := 0
		for _, c := range codes {
			if c == http.StatusCreated {
				created++
			} else {
				assert.Equal(t, http.StatusBadRequest, c)
			}
		}
		assert.Equal(t, 1, created)
		assert.Equal(t, int32(1), dbtest.CouponUsedCount(t, s.DB, "ONCE"))
		assert.Equal(t, 1, dbtest.CountOrders(t, s.DB))
	})
}

func (s *OrderSuite) TestAdminOrderOperations() {
	s.Run("Normal case: status update, customer listing and reset", func() {
		t := s.T()
		token := authtest.LoginAdmin(t, s.Router)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, ordersURL, orderRequest("100", ""), "")
		var created response.OrderEnvelope
		httptest.AssertSuccessResponse(t, w, http.StatusCreated, &created)
		number := created.Order.OrderNumber

		uw := httptest.PerformRequest(t, s.Router, http.MethodPut, ordersURL+"/"+number+"/status",
			request.UpdateOrderStatusRequest{Status: "shipped"}, token)
		var status response.OrderStatusResponse
		httptest.AssertSuccessResponse(t, uw, http.StatusOK, &status)
		assert.Equal(t, "shipped", status.Status)

		lw := httptest.PerformRequest(t, s.Router, http.MethodGet, ordersURL+"/user/ASHA@example.com", nil, "")
		var list response.OrderListEnvelope
		httptest.AssertSuccessResponse(t, lw, http.StatusOK, &list)
		require.Len(t, list.Orders, 1)
		assert.Equal(t, "shipped", list.Orders[0].Status)

		rw := httptest.PerformRequest(t, s.Router, http.MethodPost, ordersURL+"/reset", nil, token)
		httptest.AssertSuccessResponse(t, rw, http.StatusOK, nil)
		assert.Equal(t, 0, dbtest.CountOrders(t, s.DB))
	})

	s.Run("Error case: invalid status leaves order unchanged", func() {
		t := s.T()
		token := authtest.LoginAdmin(t, s.Router)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, ordersURL, orderRequest("100", ""), "")
		var created response.OrderEnvelope
		httptest.AssertSuccessResponse(t, w, http.StatusCreated, &created)

		uw := httptest.PerformRequest(t, s.Router, http.MethodPut, ordersURL+"/"+created.Order.OrderNumber+"/status",
			request.UpdateOrderStatusRequest{Status: "teleported"}, token)
		httptest.AssertErrorResponse(t, uw, http.StatusBadRequest, "")

		tw := httptest.PerformRequest(t, s.Router, http.MethodGet, trackURL+created.Order.OrderNumber, nil, "")
		var tracked response.OrderResponse
		httptest.AssertSuccessResponse(t, tw, http.StatusOK, &tracked)
		assert.Equal(t, "pending", tracked.Status)
	})

	s.Run("Error case: admin routes reject anonymous callers", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, ordersURL, nil, "")
		httptest.AssertErrorResponse(t, w, http.StatusUnauthorized, "Access token required")
	})

	s.Run("Error case: unknown order number", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, trackURL+"ORD-0000000000001-AAAAAAAAA", nil, "")
		httptest.AssertErrorResponse(t, w, http.StatusNotFound, "")
	})
}
