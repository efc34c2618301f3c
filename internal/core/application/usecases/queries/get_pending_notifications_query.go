package queries

import (
	"errors"
	"time"

	"commerce/internal/core/domain/model/kernel"
	"commerce/internal/core/domain/model/notification"
	"commerce/internal/pkg/guard"
)

var (
	ErrGetPendingNotificationsQueryIsNotConstructed = errors.New(
		"GetPendingNotificationsQuery must be created via NewGetPendingNotificationsQuery constructor",
	)
)

// GetPendingNotificationsQuery retrieves all notifications awaiting
// delivery, oldest first.
type GetPendingNotificationsQuery struct {
	guard guard.ConstructorGuard
}

// NewGetPendingNotificationsQuery creates a query for the pending
// notification queue. This is a parameterless query.
func NewGetPendingNotificationsQuery() GetPendingNotificationsQuery {
	return GetPendingNotificationsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetPendingNotificationsQueryIsNotConstructed if validation fails.
func (q GetPendingNotificationsQuery) Validate() error {
	return q.guard.Validate(ErrGetPendingNotificationsQueryIsNotConstructed)
}

// NotificationResponse represents a notification in the read model.
type NotificationResponse struct {
	ID          kernel.UUID
	Type        notification.Type
	RecipientID kernel.UUID
	Subject     string
	Message     string
	Status      notification.Status
	ReferenceID kernel.UUID
	CreatedAt   time.Time
}
