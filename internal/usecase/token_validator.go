package usecase

import (
	"storefront-backend/internal/pkg/errs"
	"storefront-backend/internal/pkg/jwt"
)

var ErrNotAdmin = errs.Sentinel("admin role required", errs.ErrUnauthorized)

// TokenValidator provides admin token validation for middleware
type TokenValidator interface {
	ValidateAdminToken(tokenString string) (subject string, err error)
}

type tokenValidatorImpl struct {
	jwtService *jwt.Service
}

func NewTokenValidator(jwtService *jwt.Service) TokenValidator {
	return &tokenValidatorImpl{
		jwtService: jwtService,
	}
}

func (t *tokenValidatorImpl) ValidateAdminToken(tokenString string) (string, error) {
	claims, err := t.jwtService.ValidateToken(tokenString)
	if err != nil {
		return "", errs.WithClass(err, errs.ErrUnauthorized)
	}
	if claims.Role != jwt.RoleAdmin {
		return "", ErrNotAdmin
	}
	return claims.Subject, nil
}
