package queries

import (
	"context"
	"database/sql"
	"errors"

	"commerce/internal/core/domain/model/kernel"
	"commerce/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetUserQueryHandler retrieves a single user from the database.
type GetUserQueryHandler struct {
	db *gorm.DB
}

// NewGetUserQueryHandler creates a handler for single-user queries.
// Requires a GORM database connection for query execution.
func NewGetUserQueryHandler(db *gorm.DB) GetUserQueryHandler {
	return GetUserQueryHandler{db: db}
}

// Handle executes the query for one user.
// Returns errs.ObjectNotFoundError when the user does not exist.
func (h GetUserQueryHandler) Handle(
	ctx context.Context,
	query GetUserQuery,
) (UserResponse, error) {
	if err := query.Validate(); err != nil {
		return UserResponse{}, err
	}

	var resp UserResponse
	var id uuid.UUID

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			email,
			name,
			created_at
		FROM users
		WHERE id = ?
	`, query.UserID().Bytes()).Row()

	err := row.Scan(&id, &resp.Email, &resp.Name, &resp.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return UserResponse{}, errs.NewObjectNotFoundError("userId", query.UserID().String())
	}
	if err != nil {
		return UserResponse{}, err
	}

	userID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return UserResponse{}, err
	}
	resp.ID = userID

	return resp, nil
}
