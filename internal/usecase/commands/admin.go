package commands

import (
	"context"
	"crypto/subtle"
	"time"

	"storefront-backend/internal/pkg/config"
	"storefront-backend/internal/pkg/errs"
	"storefront-backend/internal/pkg/jwt"
	"storefront-backend/internal/pkg/password"
)

var (
	ErrAdminCredentials = errs.Sentinel("Invalid username or password", errs.ErrUnauthorized)
	ErrTokenGeneration  = errs.New("token generation failed")
)

type AdminSession struct {
	Token     string
	ExpiresAt time.Time
}

type AdminCommands interface {
	Login(ctx context.Context, username, pw string) (*AdminSession, error)
}

type adminCommandsImpl struct {
	cfg        config.AdminConfig
	jwtService *jwt.Service
}

func NewAdminCommands(cfg config.AdminConfig, jwtService *jwt.Service) AdminCommands {
	return &adminCommandsImpl{
		cfg:        cfg,
		jwtService: jwtService,
	}
}

func (uc *adminCommandsImpl) Login(_ context.Context, username, pw string) (*AdminSession, error) {
	userOK := subtle.ConstantTimeCompare([]byte(username), []byte(uc.cfg.Username)) == 1
	// Always run bcrypt so a wrong username costs the same as a wrong password
	pwErr := password.ComparePassword(uc.cfg.PasswordHash, pw)
	if !userOK || pwErr != nil {
		return nil, ErrAdminCredentials
	}

	token, err := uc.jwtService.GenerateToken(uc.cfg.Username, jwt.RoleAdmin)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}
	return &AdminSession{
		Token:     token,
		ExpiresAt: time.Now().Add(uc.jwtService.TokenDuration()),
	}, nil
}
