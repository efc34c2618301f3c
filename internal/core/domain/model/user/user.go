// Package user provides the User entity. Users own orders; the order
// lifecycle only checks their existence, there is no further behavior here.
package user

import (
	"errors"
	"strings"
	"time"

	"commerce/internal/core/domain/model/kernel"
	"commerce/internal/pkg/errs"
)

// ErrUserIsNotConstructed is returned when a User was not created through
// NewUser or RestoreUser.
var ErrUserIsNotConstructed = errors.New("User must be created via NewUser or RestoreUser")

// User is an account that can place orders. Email is unique across users;
// uniqueness is enforced by the user store.
type User struct {
	id        kernel.UUID
	email     string
	name      string
	createdAt time.Time

	isConstructed bool
}

// NewUser creates a user. Email and name are required; email is lowercased.
func NewUser(id kernel.UUID, email, name string, now time.Time) (*User, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return nil, errs.NewValueIsRequiredError("email")
	}
	if !strings.Contains(email, "@") {
		return nil, errs.NewValueIsInvalidError("email")
	}
	if name == "" {
		return nil, errs.NewValueIsRequiredError("name")
	}

	return &User{
		id:            id,
		email:         email,
		name:          name,
		createdAt:     now,
		isConstructed: true,
	}, nil
}

// RestoreUser reconstructs a user from persistence.
func RestoreUser(id kernel.UUID, email, name string, createdAt time.Time) (*User, error) {
	return NewUser(id, email, name, createdAt)
}

// Validate ensures the User was created through a constructor.
func (u *User) Validate() error {
	if u == nil || !u.isConstructed {
		return ErrUserIsNotConstructed
	}
	return nil
}

// ID returns the user's unique identifier.
func (u *User) ID() kernel.UUID {
	return u.id
}

// Email returns the normalized email address.
func (u *User) Email() string {
	return u.email
}

// Name returns the display name.
func (u *User) Name() string {
	return u.name
}

// CreatedAt returns the creation timestamp.
func (u *User) CreatedAt() time.Time {
	return u.createdAt
}
