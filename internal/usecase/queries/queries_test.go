//go:build unit

package queries_test

import (
	"context"
	"encoding/base64"
	"errors"
	"strings"
	"testing"

	"storefront-backend/internal/infra"
	"storefront-backend/internal/pkg/config"
	"storefront-backend/internal/pkg/errs"
	"storefront-backend/internal/usecase/queries"
	queriesmock "storefront-backend/tests/mock/queries"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func ptr[T any](v T) *T { return &v }

var errNotFound = infra.WrapRepoErr("not found", nil, infra.KindNotFound)

func TestOrderQueries(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := queriesmock.NewMockOrderReadStore(ctrl)
	q := queries.NewOrderQueries(store)
	view := &queries.OrderView{OrderNumber: "ORD-1735787045006-A9ABCDEFG"}

	t.Run("track", func(t *testing.T) {
		store.EXPECT().FindByNumber(gomock.Any(), "ORD-1735787045006-A9ABCDEFG").Return(view, nil)

		got, err := q.Track(context.Background(), " ORD-1735787045006-A9ABCDEFG ")

		require.NoError(t, err)
		assert.Same(t, view, got)
	})

	t.Run("track unknown", func(t *testing.T) {
		store.EXPECT().FindByNumber(gomock.Any(), "ORD-X").Return(nil, errNotFound)

		_, err := q.Track(context.Background(), "ORD-X")

		assert.ErrorIs(t, err, queries.ErrOrderNotFound)
		assert.ErrorIs(t, err, errs.ErrNotFound)
	})

	t.Run("track blank", func(t *testing.T) {
		_, err := q.Track(context.Background(), "")

		assert.ErrorIs(t, err, queries.ErrOrderNumberRequired)
	})

	t.Run("customer orders match lowercased email", func(t *testing.T) {
		store.EXPECT().ListByEmail(gomock.Any(), "asha@example.com").Return([]*queries.OrderView{view}, nil)

		got, err := q.ListForCustomer(context.Background(), " Asha@Example.COM")

		require.NoError(t, err)
		assert.Len(t, got, 1)

		_, err = q.ListForCustomer(context.Background(), " ")
		assert.ErrorIs(t, err, queries.ErrEmailRequired)
	})

	t.Run("list failure is internal", func(t *testing.T) {
		store.EXPECT().List(gomock.Any()).Return(nil, infra.WrapRepoErr("select", errors.New("boom")))

		_, err := q.List(context.Background())

		assert.ErrorIs(t, errs.Class(err), errs.ErrInternal)
	})
}

func TestProductQueries_Get(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := queriesmock.NewMockProductReadStore(ctrl)
	q := queries.NewProductQueries(store)

	store.EXPECT().FindByID(gomock.Any(), int64(7)).Return(&queries.ProductView{ID: 7, Name: "Mug"}, nil)
	store.EXPECT().FindByID(gomock.Any(), int64(8)).Return(nil, errNotFound)

	p, err := q.Get(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, "Mug", p.Name)

	_, err = q.Get(context.Background(), 8)
	assert.ErrorIs(t, err, queries.ErrProductNotFound)
}

func TestSettingsQueries_ShippingRate(t *testing.T) {
	tests := []struct {
		name   string
		stored string
		err    error
		want   decimal.Decimal
	}{
		{name: "stored", stored: "7.25", want: decimal.RequireFromString("7.25")},
		{name: "absent", err: errNotFound, want: queries.DefaultShippingRate},
		{name: "unparsable", stored: "cheap", want: queries.DefaultShippingRate},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := queriesmock.NewMockSettingsReadStore(gomock.NewController(t))
			store.EXPECT().Get(gomock.Any(), queries.ShippingRateKey).Return(tt.stored, tt.err)

			rate, err := queries.NewSettingsQueries(store).ShippingRate(context.Background())

			require.NoError(t, err)
			assert.True(t, tt.want.Equal(rate), rate.String())
		})
	}
}

func TestPaymentQueries_QRCode(t *testing.T) {
	cfg := config.PaymentConfig{UPIID: "shop@upi", Currency: "INR", Note: "Order Payment", QRSizePx: 256}

	t.Run("renders the upi link", func(t *testing.T) {
		encoder := queriesmock.NewMockQREncoder(gomock.NewController(t))
		wantLink := "upi://pay?pa=shop@upi&am=499.00&cu=INR&tn=Order Payment"
		encoder.EXPECT().PNG(wantLink, 256).Return([]byte("png-bytes"), nil)

		qr, err := queries.NewPaymentQueries(encoder, cfg).QRCode(context.Background(), "499.00")

		require.NoError(t, err)
		assert.Equal(t, wantLink, qr.UPIURL)
		assert.Equal(t, "shop@upi", qr.UPIID)
		assert.True(t, qr.Amount.Equal(decimal.NewFromInt(499)))
		require.True(t, strings.HasPrefix(qr.DataURL, "data:image/png;base64,"))
		decoded, err := base64.StdEncoding.DecodeString(strings.TrimPrefix(qr.DataURL, "data:image/png;base64,"))
		require.NoError(t, err)
		assert.Equal(t, "png-bytes", string(decoded))
	})

	t.Run("rejects bad amounts", func(t *testing.T) {
		q := queries.NewPaymentQueries(queriesmock.NewMockQREncoder(gomock.NewController(t)), cfg)
		for _, amount := range []string{"", "abc", "0", "-10"} {
			_, err := q.QRCode(context.Background(), amount)
			assert.ErrorIs(t, err, queries.ErrInvalidAmount, amount)
		}
	})

	t.Run("encoder failure", func(t *testing.T) {
		encoder := queriesmock.NewMockQREncoder(gomock.NewController(t))
		encoder.EXPECT().PNG(gomock.Any(), gomock.Any()).Return(nil, errors.New("too large"))

		_, err := queries.NewPaymentQueries(encoder, cfg).QRCode(context.Background(), "10")

		assert.ErrorIs(t, errs.Class(err), errs.ErrInternal)
	})
}
