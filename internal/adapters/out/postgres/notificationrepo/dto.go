// Package notificationrepo provides data transfer objects and mapping
// functions for notification persistence.
package notificationrepo

import (
	"time"

	"commerce/internal/core/domain/model/kernel"
	"commerce/internal/core/domain/model/notification"

	"github.com/google/uuid"
)

// NotificationDTO represents the database structure for persisting
// notification records.
type NotificationDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	Type        string    `gorm:"type:varchar(30)"`
	RecipientID uuid.UUID `gorm:"type:uuid;index"`
	Subject     string    `gorm:"type:varchar(255)"`
	Message     string    `gorm:"type:text"`
	Status      string    `gorm:"type:varchar(10);index"`
	ReferenceID uuid.UUID `gorm:"type:uuid;index"`
	CreatedAt   time.Time
	SentAt      *time.Time
}

// TableName specifies the database table name for notification entities.
func (NotificationDTO) TableName() string {
	return "notifications"
}

// fromDomain converts a notification domain entity to its database
// representation.
func fromDomain(aggregate *notification.Notification) NotificationDTO {
	return NotificationDTO{
		ID:          aggregate.ID().Bytes(),
		Type:        string(aggregate.Kind()),
		RecipientID: aggregate.RecipientID().Bytes(),
		Subject:     aggregate.Subject(),
		Message:     aggregate.Message(),
		Status:      string(aggregate.Status()),
		ReferenceID: aggregate.ReferenceID().Bytes(),
		CreatedAt:   aggregate.CreatedAt(),
		SentAt:      aggregate.SentAt(),
	}
}

// toDomain converts a database DTO to a notification domain entity.
func toDomain(dto NotificationDTO) (*notification.Notification, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	recipientID, err := kernel.UUIDFromBytes(dto.RecipientID[:])
	if err != nil {
		return nil, err
	}
	referenceID, err := kernel.UUIDFromBytes(dto.ReferenceID[:])
	if err != nil {
		return nil, err
	}

	return notification.RestoreNotification(
		id,
		notification.Type(dto.Type),
		recipientID,
		dto.Subject,
		dto.Message,
		notification.Status(dto.Status),
		referenceID,
		dto.CreatedAt,
		dto.SentAt,
	)
}
