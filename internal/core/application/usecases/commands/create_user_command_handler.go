package commands

import (
	"context"
	"time"

	"commerce/internal/core/domain/model/user"
)

// CreateUserCommandHandler handles user registration.
// Email uniqueness is enforced by the repository; a duplicate surfaces as
// errs.ObjectAlreadyExistsError.
type CreateUserCommandHandler struct {
	uowFactory UserUoWFactory
}

// NewCreateUserCommandHandler creates a handler for user registration.
// Requires a UserUoWFactory for transactional persistence.
func NewCreateUserCommandHandler(uowFactory UserUoWFactory) CreateUserCommandHandler {
	return CreateUserCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the user registration command and returns the created
// user.
func (h CreateUserCommandHandler) Handle(
	ctx context.Context,
	cmd CreateUserCommand,
) (*user.User, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	created, err := user.NewUser(cmd.UserID(), cmd.Email(), cmd.Name(), time.Now().UTC())
	if err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.UserRepository().Add(ctx, created); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return created, nil
}
