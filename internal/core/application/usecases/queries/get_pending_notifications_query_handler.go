package queries

import (
	"context"

	"commerce/internal/core/domain/model/kernel"
	"commerce/internal/core/domain/model/notification"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetPendingNotificationsQueryHandler retrieves undelivered notifications
// from the database.
type GetPendingNotificationsQueryHandler struct {
	db *gorm.DB
}

// NewGetPendingNotificationsQueryHandler creates a handler for pending
// notification queries. Requires a GORM database connection.
func NewGetPendingNotificationsQueryHandler(db *gorm.DB) GetPendingNotificationsQueryHandler {
	return GetPendingNotificationsQueryHandler{db: db}
}

// Handle executes the query for pending notifications, oldest first.
func (h GetPendingNotificationsQueryHandler) Handle(
	ctx context.Context,
	query GetPendingNotificationsQuery,
) ([]NotificationResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			type,
			recipient_id,
			subject,
			message,
			status,
			reference_id,
			created_at
		FROM notifications
		WHERE status = ?
		ORDER BY created_at
	`, string(notification.StatusPending)).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	notifications := make([]NotificationResponse, 0)
	for rows.Next() {
		var resp NotificationResponse
		var id, recipientID, referenceID uuid.UUID
		var kind, status string

		if err = rows.Scan(
			&id,
			&kind,
			&recipientID,
			&resp.Subject,
			&resp.Message,
			&status,
			&referenceID,
			&resp.CreatedAt,
		); err != nil {
			return nil, err
		}

		if resp.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		if resp.RecipientID, err = kernel.UUIDFromBytes(recipientID[:]); err != nil {
			return nil, err
		}
		if resp.ReferenceID, err = kernel.UUIDFromBytes(referenceID[:]); err != nil {
			return nil, err
		}
		resp.Type = notification.Type(kind)
		resp.Status = notification.Status(status)

		notifications = append(notifications, resp)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	return notifications, nil
}
