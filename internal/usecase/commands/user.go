package commands

import (
	"context"
	"strings"

	"storefront-backend/internal/domain/user"
	"storefront-backend/internal/infra"
	"storefront-backend/internal/pkg/errs"
	"storefront-backend/internal/pkg/password"
	"storefront-backend/internal/usecase/shared"
)

var (
	ErrUserFieldsRequired  = errs.Sentinel("Name, email and password are required", errs.ErrValidation)
	ErrCredentialsRequired = errs.Sentinel("Email and password are required", errs.ErrValidation)
	ErrIdentityEmail       = errs.Sentinel("Email is required", errs.ErrValidation)
	ErrEmailTaken          = errs.Sentinel("Email already registered", errs.ErrConflict)
	ErrInvalidCredentials  = errs.Sentinel("Invalid email or password", errs.ErrUnauthorized)
)

type RegisterInput struct {
	Name     string
	Email    string
	Password string
	Phone    string
}

type IdentityInput struct {
	ExternalID string
	Name       string
	Email      string
	Phone      string
}

type UserCommands interface {
	Register(ctx context.Context, in RegisterInput) (*user.User, error)
	Login(ctx context.Context, email, pw string) (*user.User, error)
	// SyncIdentity records a user authenticated by the identity provider so
	// carts can be saved against it. A stored phone is never overwritten.
	SyncIdentity(ctx context.Context, in IdentityInput) (*user.User, error)
}

type userCommandsImpl struct {
	uow shared.UnitOfWork
}

func NewUserCommands(uow shared.UnitOfWork) UserCommands {
	return &userCommandsImpl{uow: uow}
}

func (uc *userCommandsImpl) Register(ctx context.Context, in RegisterInput) (*user.User, error) {
	if strings.TrimSpace(in.Name) == "" || strings.TrimSpace(in.Email) == "" || in.Password == "" {
		return nil, ErrUserFieldsRequired
	}
	email, err := user.NewEmail(in.Email)
	if err != nil {
		return nil, errs.Validation(err)
	}
	pw, err := user.NewPassword(in.Password)
	if err != nil {
		return nil, errs.Validation(err)
	}
	hash, err := password.HashPassword(pw.Value())
	if err != nil {
		return nil, errs.Wrap(err, "failed to hash password")
	}
	u, err := user.NewUser(in.Name, email, hash, in.Phone)
	if err != nil {
		return nil, errs.Validation(err)
	}

	created, err := uc.uow.NonTx().Users().Create(ctx, u)
	if err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return nil, ErrEmailTaken
		}
		return nil, errs.Wrap(err, "failed to register user")
	}
	return created, nil
}

func (uc *userCommandsImpl) Login(ctx context.Context, rawEmail, pw string) (*user.User, error) {
	if strings.TrimSpace(rawEmail) == "" || pw == "" {
		return nil, ErrCredentialsRequired
	}
	email, err := user.NewEmail(rawEmail)
	if err != nil {
		return nil, ErrInvalidCredentials
	}

	u, err := uc.uow.NonTx().Users().FindByEmail(ctx, email)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			// Same answer as a wrong password to avoid account enumeration
			return nil, ErrInvalidCredentials
		}
		return nil, errs.Wrap(err, "failed to load user")
	}

	if err := password.ComparePassword(u.PasswordHash(), pw); err != nil {
		return nil, ErrInvalidCredentials
	}
	return u, nil
}

func (uc *userCommandsImpl) SyncIdentity(ctx context.Context, in IdentityInput) (*user.User, error) {
	if strings.TrimSpace(in.Email) == "" {
		return nil, ErrIdentityEmail
	}
	email, err := user.NewEmail(in.Email)
	if err != nil {
		return nil, errs.Validation(err)
	}
	name := strings.TrimSpace(in.Name)
	if name == "" {
		name = user.DisplayNameFallback(email)
	}

	u, err := user.NewExternalUser(in.ExternalID, name, email)
	if err != nil {
		return nil, errs.Validation(err)
	}

	synced, err := uc.uow.NonTx().Users().UpsertExternal(ctx, u.WithPhone(in.Phone))
	if err != nil {
		return nil, errs.Wrap(err, "failed to sync identity")
	}
	return synced, nil
}
