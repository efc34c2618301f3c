package commands

import (
	"context"
	"time"

	"commerce/internal/core/ports"
)

// DispatchNotificationsCommandHandler drains pending notifications.
// Each one is published to the message broker and marked sent; a publish
// failure marks that notification failed and moves on, so one bad message
// never blocks the rest of the queue.
type DispatchNotificationsCommandHandler struct {
	uowFactory NotificationUoWFactory
	publisher  ports.EventPublisher
}

// NewDispatchNotificationsCommandHandler creates a handler for notification
// delivery. Requires a NotificationUoWFactory for status updates and an
// EventPublisher for broker delivery.
func NewDispatchNotificationsCommandHandler(
	uowFactory NotificationUoWFactory,
	publisher ports.EventPublisher,
) DispatchNotificationsCommandHandler {
	return DispatchNotificationsCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
	}
}

// Handle processes the dispatch command and returns how many notifications
// were delivered.
func (h DispatchNotificationsCommandHandler) Handle(
	ctx context.Context,
	cmd DispatchNotificationsCommand,
) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	notificationRepo := uow.NotificationRepository()
	pending, err := notificationRepo.GetAllPending(ctx)
	if err != nil {
		return 0, err
	}

	sent := 0
	for _, record := range pending {
		if publishErr := h.publisher.Publish(ctx, record); publishErr != nil {
			record.MarkFailed()
		} else {
			record.MarkSent(time.Now().UTC())
			sent++
		}

		if err = notificationRepo.Update(ctx, record); err != nil {
			return 0, err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return sent, nil
}
