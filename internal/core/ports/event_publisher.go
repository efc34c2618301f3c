package ports

import (
	"context"

	"commerce/internal/core/domain/model/notification"
)

// EventPublisher delivers notification events to the message broker.
// Implementations route by notification type; delivery errors are
// reported back so the dispatcher can mark the notification failed.
type EventPublisher interface {
	Publish(ctx context.Context, aggregate *notification.Notification) error
}
