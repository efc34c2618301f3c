package commands

import (
	"errors"
	"strings"

	"commerce/internal/core/domain/model/kernel"
	"commerce/internal/pkg/errs"
	"commerce/internal/pkg/guard"
)

var ErrCreateUserCommandIsNotConstructed = errors.New(
	"CreateUserCommand must be created via NewCreateUserCommand constructor",
)

// CreateUserCommand represents a request to register a new user.
type CreateUserCommand struct { //nolint:recvcheck //using for validation
	userID kernel.UUID
	email  string
	name   string

	guard guard.ConstructorGuard
}

// NewCreateUserCommand creates a command to register a user.
// Validates that the ID is valid and email and name are present.
func NewCreateUserCommand(userID kernel.UUID, email, name string) (CreateUserCommand, error) {
	userCommand := CreateUserCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		userCommand.setUserID(userID),
		userCommand.setEmail(email),
		userCommand.setName(name),
	); err != nil {
		return CreateUserCommand{}, err
	}

	return userCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateUserCommandIsNotConstructed if validation fails.
func (c CreateUserCommand) Validate() error {
	return c.guard.Validate(ErrCreateUserCommandIsNotConstructed)
}

// UserID returns the unique identifier for the user.
func (c CreateUserCommand) UserID() kernel.UUID {
	return c.userID
}

// Email returns the user's email address.
func (c CreateUserCommand) Email() string {
	return c.email
}

// Name returns the user's display name.
func (c CreateUserCommand) Name() string {
	return c.name
}

func (c *CreateUserCommand) setUserID(userID kernel.UUID) error {
	if err := userID.Validate(); err != nil {
		return err
	}

	c.userID = userID
	return nil
}

func (c *CreateUserCommand) setEmail(email string) error {
	if strings.TrimSpace(email) == "" {
		return errs.NewValueIsRequiredError("email")
	}

	c.email = email
	return nil
}

func (c *CreateUserCommand) setName(name string) error {
	if strings.TrimSpace(name) == "" {
		return errs.NewValueIsRequiredError("name")
	}

	c.name = name
	return nil
}
