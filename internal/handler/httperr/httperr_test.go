//go:build unit

package httperr_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"storefront-backend/internal/handler/httperr"
	"storefront-backend/internal/pkg/errs"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusOf(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "validation", err: errs.Sentinel("bad", errs.ErrValidation), want: http.StatusBadRequest},
		{name: "unauthorized", err: errs.Sentinel("nope", errs.ErrUnauthorized), want: http.StatusUnauthorized},
		{name: "not found", err: errs.Wrap(errs.Sentinel("order not found", errs.ErrNotFound), "track"), want: http.StatusNotFound},
		{name: "conflict", err: errs.Sentinel("dup", errs.ErrConflict), want: http.StatusConflict},
		{name: "dependency", err: errs.Sentinel("smtp down", errs.ErrDependencyUnavailable), want: http.StatusInternalServerError},
		{name: "unclassified", err: errors.New("pq: connection reset"), want: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, httperr.StatusOf(tt.err))
		})
	}
}

func TestAbortHidesInternalDetail(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name    string
		err     error
		status  int
		message string
	}{
		{name: "client error echoes message", err: errs.Sentinel("Rate cannot be negative", errs.ErrValidation), status: http.StatusBadRequest, message: "Rate cannot be negative"},
		{name: "internal error is generic", err: errors.New("dial tcp 10.0.0.5:5432: refused"), status: http.StatusInternalServerError, message: "Internal server error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(rec)

			httperr.Abort(c, tt.err)

			require.Equal(t, tt.status, rec.Code)
			var body map[string]any
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, false, body["success"])
			assert.Equal(t, tt.message, body["error"].(map[string]any)["message"])
			assert.Len(t, c.Errors, 1)
		})
	}
}
