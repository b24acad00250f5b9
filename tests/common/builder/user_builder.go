//go:build unit || e2e

package builder

import (
	"time"

	"storefront-backend/internal/domain/user"
)

type UserBuilder struct {
	ID           int64
	Name         string
	Email        string
	PasswordHash string
	Phone        string
	ExternalID   *string
	Cart         string
	CreatedAt    time.Time
}

func NewUserBuilder() *UserBuilder {
	return &UserBuilder{
		ID:           1,
		Name:         "Test User",
		Email:        "test@example.com",
		PasswordHash: "hashed_password",
		Phone:        "9876543210",
		Cart:         "[]",
		CreatedAt:    time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}

func (u *UserBuilder) With(mutate func(*UserBuilder)) *UserBuilder {
	mutate(u)
	return u
}

// Build methods
func (u *UserBuilder) BuildDomain() (*user.User, error) {
	email, err := user.NewEmail(u.Email)
	if err != nil {
		return nil, err
	}
	return user.NewUser(u.Name, email, u.PasswordHash, u.Phone)
}

func (u *UserBuilder) BuildStored() *user.User {
	email, _ := user.NewEmail(u.Email)
	return user.ReconstructUser(u.ID, u.Name, email, u.PasswordHash, u.Phone, u.ExternalID, u.CreatedAt)
}

// Fluent builder methods
func (u *UserBuilder) WithEmail(email string) *UserBuilder {
	u.Email = email
	return u
}

func (u *UserBuilder) WithName(name string) *UserBuilder {
	u.Name = name
	return u
}

func (u *UserBuilder) WithPasswordHash(hash string) *UserBuilder {
	u.PasswordHash = hash
	return u
}

func (u *UserBuilder) WithCart(raw string) *UserBuilder {
	u.Cart = raw
	return u
}
