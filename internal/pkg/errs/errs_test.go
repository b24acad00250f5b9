//go:build unit

package errs_test

import (
	"errors"
	"testing"

	"storefront-backend/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
)

func TestClass(t *testing.T) {
	errOrderMissing := errs.Sentinel("order not found", errs.ErrNotFound)
	errBadInput := errs.Validation(errors.New("name is required"))

	tests := []struct {
		name string
		err  error
		want error
	}{
		{name: "sentinel keeps its class", err: errOrderMissing, want: errs.ErrNotFound},
		{name: "wrapped sentinel keeps its class", err: errs.Wrap(errOrderMissing, "track order"), want: errs.ErrNotFound},
		{name: "validation mark", err: errBadInput, want: errs.ErrValidation},
		{name: "plain error is internal", err: errors.New("boom"), want: errs.ErrInternal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, errs.Class(tt.err))
		})
	}
}

func TestSentinelsStayDistinct(t *testing.T) {
	a := errs.Sentinel("coupon not found", errs.ErrNotFound)
	b := errs.Sentinel("order not found", errs.ErrNotFound)

	assert.True(t, errs.Is(errs.Wrap(a, "lookup"), a))
	assert.False(t, errs.Is(a, b))
}
