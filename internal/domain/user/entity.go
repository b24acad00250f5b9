package user

import (
	"strings"
	"time"
)

// User is a storefront customer. Identity normally comes from the external
// provider; the password hash is a local fallback only.
type User struct {
	id           int64
	name         string
	email        Email
	passwordHash string
	phone        string
	externalID   *string
	createdAt    time.Time
}

func NewUser(name string, email Email, passwordHash, phone string) (*User, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrNameRequired
	}
	return &User{
		name:         name,
		email:        email,
		passwordHash: passwordHash,
		phone:        strings.TrimSpace(phone),
	}, nil
}

// NewExternalUser is a user known through the identity provider. It has no
// usable local password.
func NewExternalUser(externalID, name string, email Email) (*User, error) {
	u, err := NewUser(name, email, "", "")
	if err != nil {
		return nil, err
	}
	id := strings.TrimSpace(externalID)
	if id != "" {
		u.externalID = &id
	}
	return u, nil
}

func ReconstructUser(id int64, name string, email Email, passwordHash, phone string, externalID *string, createdAt time.Time) *User {
	return &User{
		id:           id,
		name:         name,
		email:        email,
		passwordHash: passwordHash,
		phone:        phone,
		externalID:   externalID,
		createdAt:    createdAt,
	}
}

func (u *User) ID() int64            { return u.id }
func (u *User) Name() string         { return u.name }
func (u *User) Email() Email         { return u.email }
func (u *User) PasswordHash() string { return u.passwordHash }
func (u *User) Phone() string        { return u.phone }
func (u *User) ExternalID() *string  { return u.externalID }
func (u *User) CreatedAt() time.Time { return u.createdAt }

// WithPhone returns a copy carrying phone.
func (u *User) WithPhone(phone string) *User {
	c := *u
	c.phone = strings.TrimSpace(phone)
	return &c
}

// DisplayNameFallback derives a name from the email local part for identity
// provider accounts without a display name.
func DisplayNameFallback(email Email) string {
	local, _, _ := strings.Cut(email.Value(), "@")
	return local
}
