package ports

import (
	"context"

	"commerce/internal/core/domain/model/kernel"
	"commerce/internal/core/domain/model/user"
)

// UserRepository defines the persistence contract for users.
type UserRepository interface {
	// Add persists a new user. Returns errs.ObjectAlreadyExistsError when
	// the email is already registered.
	Add(ctx context.Context, aggregate *user.User) error

	// Get retrieves a user by unique identifier.
	// Returns errs.ObjectNotFoundError if no such user exists.
	Get(ctx context.Context, id kernel.UUID) (*user.User, error)

	// GetByEmail retrieves a user by normalized email.
	// Returns errs.ObjectNotFoundError if no such user exists.
	GetByEmail(ctx context.Context, email string) (*user.User, error)
}
