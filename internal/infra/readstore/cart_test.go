//go:build unit

package readstore

import (
	"context"
	"testing"

	"storefront-backend/internal/domain/cart"
	"storefront-backend/internal/infra"
	sqlc "storefront-backend/internal/infra/sqlc/generated"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockCartViewQueries struct {
	mock.Mock
}

func (m *MockCartViewQueries) GetUserCartByEmail(ctx context.Context, db sqlc.DBTX, email string) (sqlc.GetUserCartByEmailRow, error) {
	args := m.Called(ctx, db, email)
	return args.Get(0).(sqlc.GetUserCartByEmailRow), args.Error(1)
}

type MockSettingsViewQueries struct {
	mock.Mock
}

func (m *MockSettingsViewQueries) GetSetting(ctx context.Context, db sqlc.DBTX, key string) (string, error) {
	args := m.Called(ctx, db, key)
	return args.String(0), args.Error(1)
}

func TestCartFindByOwner(t *testing.T) {
	owner, err := cart.NewOwner("  Shopper@Example.com ")
	require.NoError(t, err)

	tests := []struct {
		name      string
		row       sqlc.GetUserCartByEmailRow
		mockError error
		want      string
		wantKind  infra.RepositoryErrorKind
	}{
		{
			name: "success - raw cart returned undecoded",
			row:  sqlc.GetUserCartByEmailRow{Cart: `[{"id":1}]`},
			want: `[{"id":1}]`,
		},
		{
			name:      "unknown user",
			mockError: pgx.ErrNoRows,
			wantKind:  infra.KindNotFound,
		},
		{
			name:      "database error",
			mockError: assert.AnError,
			wantKind:  infra.KindDBFailure,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockQueries := new(MockCartViewQueries)
			mockQueries.On("GetUserCartByEmail", mock.Anything, mock.Anything, "shopper@example.com").Return(tt.row, tt.mockError)

			store := NewCartReadStore(mockQueries, nil)
			raw, err := store.FindByOwner(context.Background(), owner)

			if tt.wantKind != "" {
				assert.True(t, infra.IsKind(err, tt.wantKind))
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.want, raw)
			}
			mockQueries.AssertExpectations(t)
		})
	}
}

func TestSettingsGet(t *testing.T) {
	mockQueries := new(MockSettingsViewQueries)
	mockQueries.On("GetSetting", mock.Anything, mock.Anything, "shipping_rate_per_km").Return("", pgx.ErrNoRows).Once()
	mockQueries.On("GetSetting", mock.Anything, mock.Anything, "shipping_rate_per_km").Return("6.25", nil).Once()

	store := NewSettingsReadStore(mockQueries, nil)

	_, err := store.Get(context.Background(), "shipping_rate_per_km")
	assert.True(t, infra.IsKind(err, infra.KindNotFound))

	v, err := store.Get(context.Background(), "shipping_rate_per_km")
	require.NoError(t, err)
	assert.Equal(t, "6.25", v)

	mockQueries.AssertExpectations(t)
}
