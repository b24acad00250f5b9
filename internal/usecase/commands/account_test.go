//go:build unit

package commands_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"storefront-backend/internal/pkg/config"
	"storefront-backend/internal/pkg/errs"
	"storefront-backend/internal/pkg/jwt"
	"storefront-backend/internal/pkg/password"
	"storefront-backend/internal/usecase"
	"storefront-backend/internal/usecase/commands"
	"storefront-backend/internal/usecase/queries"
	"storefront-backend/internal/usecase/shared"
	"storefront-backend/tests/common/builder"
	"storefront-backend/tests/common/memstore"
	sharedmock "storefront-backend/tests/mock/shared"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestUserCommands_Register(t *testing.T) {
	tests := []struct {
		name    string
		input   commands.RegisterInput
		seed    string
		wantErr error
	}{
		{
			name:  "success",
			input: commands.RegisterInput{Name: "Asha", Email: "Asha@Example.com", Password: "longenough", Phone: "98765"},
		},
		{
			name:    "missing password",
			input:   commands.RegisterInput{Name: "Asha", Email: "asha@example.com"},
			wantErr: commands.ErrUserFieldsRequired,
		},
		{
			name:    "weak password",
			input:   commands.RegisterInput{Name: "Asha", Email: "asha@example.com", Password: "short"},
			wantErr: errs.ErrValidation,
		},
		{
			name:    "malformed email",
			input:   commands.RegisterInput{Name: "Asha", Email: "asha", Password: "longenough"},
			wantErr: errs.ErrValidation,
		},
		{
			name:    "email taken",
			input:   commands.RegisterInput{Name: "Asha", Email: "asha@example.com", Password: "longenough"},
			seed:    "asha@example.com",
			wantErr: commands.ErrEmailTaken,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := memstore.New()
			if tt.seed != "" {
				store.PutUser(builder.NewUserBuilder().WithEmail(tt.seed).BuildStored(), "[]")
			}
			cmds := commands.NewUserCommands(store)

			u, err := cmds.Register(context.Background(), tt.input)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "asha@example.com", u.Email().String())
			assert.NotEqual(t, tt.input.Password, u.PasswordHash())
			assert.NoError(t, password.ComparePassword(u.PasswordHash(), tt.input.Password))
			raw, ok := store.RawCart("asha@example.com")
			assert.True(t, ok)
			assert.Equal(t, "[]", raw)
		})
	}
}

func TestUserCommands_Login(t *testing.T) {
	hash, err := password.HashPassword("correct-horse")
	require.NoError(t, err)
	store := memstore.New()
	store.PutUser(builder.NewUserBuilder().WithEmail("asha@example.com").WithPasswordHash(hash).BuildStored(), "[]")
	cmds := commands.NewUserCommands(store)

	u, err := cmds.Login(context.Background(), "ASHA@example.com", "correct-horse")
	require.NoError(t, err)
	assert.Equal(t, "asha@example.com", u.Email().String())

	_, err = cmds.Login(context.Background(), "asha@example.com", "wrong-horse")
	assert.ErrorIs(t, err, commands.ErrInvalidCredentials)

	_, err = cmds.Login(context.Background(), "ghost@example.com", "correct-horse")
	assert.ErrorIs(t, err, commands.ErrInvalidCredentials)

	_, err = cmds.Login(context.Background(), "", "")
	assert.ErrorIs(t, err, commands.ErrCredentialsRequired)
}

func TestUserCommands_SyncIdentity(t *testing.T) {
	t.Run("creates user with fallback name", func(t *testing.T) {
		store := memstore.New()
		cmds := commands.NewUserCommands(store)

		u, err := cmds.SyncIdentity(context.Background(), commands.IdentityInput{
			ExternalID: "uid-1",
			Email:      "ravi@example.com",
			Phone:      "12345",
		})

		require.NoError(t, err)
		assert.Equal(t, "ravi", u.Name())
		assert.Equal(t, "12345", u.Phone())
		require.NotNil(t, u.ExternalID())
		assert.Equal(t, "uid-1", *u.ExternalID())
	})

	t.Run("keeps stored phone", func(t *testing.T) {
		store := memstore.New()
		store.PutUser(builder.NewUserBuilder().WithEmail("ravi@example.com").BuildStored(), "[]")
		cmds := commands.NewUserCommands(store)

		u, err := cmds.SyncIdentity(context.Background(), commands.IdentityInput{
			ExternalID: "uid-1",
			Name:       "Ravi",
			Email:      "ravi@example.com",
			Phone:      "00000",
		})

		require.NoError(t, err)
		assert.Equal(t, "9876543210", u.Phone())
		assert.Equal(t, "Test User", u.Name())
	})

	t.Run("requires email", func(t *testing.T) {
		_, err := commands.NewUserCommands(memstore.New()).SyncIdentity(context.Background(), commands.IdentityInput{ExternalID: "uid"})

		assert.ErrorIs(t, err, commands.ErrIdentityEmail)
	})
}

func TestAdminCommands_Login(t *testing.T) {
	hash, err := password.HashPassword("s3cret-pass")
	require.NoError(t, err)
	jwtService := jwt.NewService("test-secret", time.Hour)
	cmds := commands.NewAdminCommands(config.AdminConfig{Username: "admin", PasswordHash: hash}, jwtService)

	session, err := cmds.Login(context.Background(), "admin", "s3cret-pass")
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(time.Hour), session.ExpiresAt, time.Minute)

	subject, err := usecase.NewTokenValidator(jwtService).ValidateAdminToken(session.Token)
	require.NoError(t, err)
	assert.Equal(t, "admin", subject)

	for _, creds := range [][2]string{{"admin", "nope"}, {"root", "s3cret-pass"}, {"", ""}} {
		_, err := cmds.Login(context.Background(), creds[0], creds[1])
		assert.ErrorIs(t, err, commands.ErrAdminCredentials)
		assert.ErrorIs(t, err, errs.ErrUnauthorized)
	}
}

func TestFeedbackCommands_Submit(t *testing.T) {
	valid := shared.Feedback{Name: " Meera ", Email: "meera@example.com", Phone: "555", Message: "Love the mugs"}

	t.Run("delivers trimmed feedback", func(t *testing.T) {
		notifier := sharedmock.NewMockNotifier(gomock.NewController(t))
		notifier.EXPECT().NotifyFeedback(gomock.Any(), shared.Feedback{
			Name: "Meera", Email: "meera@example.com", Phone: "555", Message: "Love the mugs",
		}).Return(nil)

		assert.NoError(t, commands.NewFeedbackCommands(notifier).Submit(context.Background(), valid))
	})

	t.Run("delivery failure", func(t *testing.T) {
		notifier := sharedmock.NewMockNotifier(gomock.NewController(t))
		notifier.EXPECT().NotifyFeedback(gomock.Any(), gomock.Any()).Return(errors.New("smtp refused"))

		err := commands.NewFeedbackCommands(notifier).Submit(context.Background(), valid)

		assert.True(t, errs.Is(err, commands.ErrFeedbackNotSent))
		assert.True(t, errs.Is(errs.Class(err), errs.ErrInternal))
	})

	t.Run("validation", func(t *testing.T) {
		cmds := commands.NewFeedbackCommands(sharedmock.NewMockNotifier(gomock.NewController(t)))

		missing := valid
		missing.Phone = " "
		assert.ErrorIs(t, cmds.Submit(context.Background(), missing), commands.ErrFeedbackIncomplete)

		badEmail := valid
		badEmail.Email = "meera-at-example"
		assert.ErrorIs(t, cmds.Submit(context.Background(), badEmail), commands.ErrFeedbackEmail)
	})
}

func TestSettingsCommands_SetShippingRate(t *testing.T) {
	store := memstore.New()
	cmds := commands.NewSettingsCommands(store)

	rate, err := cmds.SetShippingRate(context.Background(), decimal.RequireFromString("49.5"))
	require.NoError(t, err)
	assert.True(t, rate.Equal(decimal.RequireFromString("49.5")))

	stored, ok := store.Setting(queries.ShippingRateKey)
	assert.True(t, ok)
	assert.Equal(t, "49.5", stored)

	read, err := queries.NewSettingsQueries(store).ShippingRate(context.Background())
	require.NoError(t, err)
	assert.True(t, read.Equal(decimal.RequireFromString("49.5")))

	_, err = cmds.SetShippingRate(context.Background(), decimal.NewFromInt(-1))
	assert.ErrorIs(t, err, commands.ErrNegativeRate)
}
