// Package notification provides the Notification entity used to record
// lifecycle events (order created/shipped/delivered/cancelled, low stock,
// restock) for best-effort delivery. Notifications are informative only;
// failures to record or deliver them never affect the operations that
// produced them.
package notification

import (
	"errors"
	"fmt"
	"time"

	"commerce/internal/core/domain/model/kernel"
	"commerce/internal/pkg/errs"
)

// Type identifies what event a notification describes.
type Type string

const (
	TypeOrderCreated   Type = "order_created"
	TypeOrderShipped   Type = "order_shipped"
	TypeOrderDelivered Type = "order_delivered"
	TypeOrderCancelled Type = "order_cancelled"
	TypeLowStock       Type = "low_stock"
	TypeRestock        Type = "restock"
)

// systemRecipient is the well-known recipient for operational alerts
// (low stock, restock) that are addressed to operators rather than to a
// customer account.
const systemRecipient = "00000000-0000-0000-0000-000000000001"

// SystemRecipientID returns the recipient used for operational alerts.
func SystemRecipientID() kernel.UUID {
	id, err := kernel.UUIDFromString(systemRecipient)
	if err != nil {
		panic(err)
	}
	return id
}

// Status tracks delivery progress of a notification.
type Status string

const (
	StatusPending Status = "pending"
	StatusSent    Status = "sent"
	StatusFailed  Status = "failed"
)

// subjectByType maps each type to its default subject line.
func subjectByType() map[Type]string {
	return map[Type]string{
		TypeOrderCreated:   "Order Created",
		TypeOrderShipped:   "Order Shipped",
		TypeOrderDelivered: "Order Delivered",
		TypeOrderCancelled: "Order Cancelled",
		TypeLowStock:       "Low Stock Alert",
		TypeRestock:        "Product Restocked",
	}
}

// Validate checks that the type is one of the defined values.
func (t Type) Validate() error {
	if _, ok := subjectByType()[t]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("notification type",
			fmt.Errorf("%q is not a valid notification type", string(t)))
	}
	return nil
}

// Validate checks that the status is one of the defined values.
func (s Status) Validate() error {
	switch s {
	case StatusPending, StatusSent, StatusFailed:
		return nil
	}
	return errs.NewValueIsInvalidErrorWithCause("notification status",
		fmt.Errorf("%q is not a valid notification status", string(s)))
}

// ErrNotificationIsNotConstructed is returned when a Notification was not
// created through NewNotification or RestoreNotification.
var ErrNotificationIsNotConstructed = errors.New(
	"Notification must be created via NewNotification or RestoreNotification")

// Notification is a persisted record of a lifecycle event awaiting
// best-effort delivery. ReferenceID points at the order or product the
// event concerns.
type Notification struct {
	id          kernel.UUID
	kind        Type
	recipientID kernel.UUID
	subject     string
	message     string
	status      Status
	referenceID kernel.UUID
	createdAt   time.Time
	sentAt      *time.Time

	isConstructed bool
}

// NewNotification creates a pending notification. The subject is derived
// from the type.
func NewNotification(
	id kernel.UUID,
	kind Type,
	recipientID kernel.UUID,
	message string,
	referenceID kernel.UUID,
	now time.Time,
) (*Notification, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if err := kind.Validate(); err != nil {
		return nil, err
	}
	if err := recipientID.Validate(); err != nil {
		return nil, err
	}
	if err := referenceID.Validate(); err != nil {
		return nil, err
	}
	if message == "" {
		return nil, errs.NewValueIsRequiredError("message")
	}

	return &Notification{
		id:            id,
		kind:          kind,
		recipientID:   recipientID,
		subject:       subjectByType()[kind],
		message:       message,
		status:        StatusPending,
		referenceID:   referenceID,
		createdAt:     now,
		isConstructed: true,
	}, nil
}

// RestoreNotification reconstructs a notification from persistence.
func RestoreNotification(
	id kernel.UUID,
	kind Type,
	recipientID kernel.UUID,
	subject string,
	message string,
	status Status,
	referenceID kernel.UUID,
	createdAt time.Time,
	sentAt *time.Time,
) (*Notification, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if err := kind.Validate(); err != nil {
		return nil, err
	}
	if err := status.Validate(); err != nil {
		return nil, err
	}

	return &Notification{
		id:            id,
		kind:          kind,
		recipientID:   recipientID,
		subject:       subject,
		message:       message,
		status:        status,
		referenceID:   referenceID,
		createdAt:     createdAt,
		sentAt:        sentAt,
		isConstructed: true,
	}, nil
}

// Validate ensures the Notification was created through a constructor.
func (n *Notification) Validate() error {
	if n == nil || !n.isConstructed {
		return ErrNotificationIsNotConstructed
	}
	return nil
}

// ID returns the notification's unique identifier.
func (n *Notification) ID() kernel.UUID { return n.id }

// Kind returns the notification type.
func (n *Notification) Kind() Type { return n.kind }

// RecipientID returns the user the notification is addressed to.
func (n *Notification) RecipientID() kernel.UUID { return n.recipientID }

// Subject returns the subject line.
func (n *Notification) Subject() string { return n.subject }

// Message returns the notification body.
func (n *Notification) Message() string { return n.message }

// Status returns the delivery status.
func (n *Notification) Status() Status { return n.status }

// ReferenceID returns the order or product the event concerns.
func (n *Notification) ReferenceID() kernel.UUID { return n.referenceID }

// CreatedAt returns the creation timestamp.
func (n *Notification) CreatedAt() time.Time { return n.createdAt }

// SentAt returns the delivery timestamp, nil while pending or failed.
func (n *Notification) SentAt() *time.Time { return n.sentAt }

// MarkSent records successful delivery.
func (n *Notification) MarkSent(now time.Time) {
	n.status = StatusSent
	n.sentAt = &now
}

// MarkFailed records a delivery failure. The dispatcher may retry failed
// notifications on a later pass.
func (n *Notification) MarkFailed() {
	n.status = StatusFailed
	n.sentAt = nil
}
