package ports

import (
	"context"

	"commerce/internal/core/domain/model/kernel"
	"commerce/internal/core/domain/model/notification"
)

// NotificationRepository defines the persistence contract for notification
// records.
type NotificationRepository interface {
	// Add persists a new notification.
	Add(ctx context.Context, aggregate *notification.Notification) error

	// Update persists delivery-status changes.
	Update(ctx context.Context, aggregate *notification.Notification) error

	// Get retrieves a notification by unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*notification.Notification, error)

	// GetAllPending retrieves notifications awaiting delivery, oldest first.
	GetAllPending(ctx context.Context) ([]*notification.Notification, error)

	// HasPendingForReference reports whether a pending notification of the
	// given type already exists for the referenced object. Used to avoid
	// duplicate low-stock alerts.
	HasPendingForReference(ctx context.Context, kind notification.Type, referenceID kernel.UUID) (bool, error)
}
