package notification_test

import (
	"testing"
	"time"

	"commerce/internal/core/domain/model/kernel"
	"commerce/internal/core/domain/model/notification"
	"commerce/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestNotification(t *testing.T) *notification.Notification {
	t.Helper()
	n, err := notification.NewNotification(
		kernel.NewUUID(),
		notification.TypeOrderCreated,
		kernel.NewUUID(),
		"Your order has been created",
		kernel.NewUUID(),
		time.Now().UTC(),
	)
	require.NoError(t, err)
	return n
}

func TestNewNotification(t *testing.T) {
	t.Run("starts_pending_with_derived_subject", func(t *testing.T) {
		n := newTestNotification(t)

		assert.Equal(t, notification.StatusPending, n.Status())
		assert.Equal(t, "Order Created", n.Subject())
		assert.Nil(t, n.SentAt())
	})

	t.Run("rejects_unknown_type", func(t *testing.T) {
		_, err := notification.NewNotification(
			kernel.NewUUID(), notification.Type("order_exploded"),
			kernel.NewUUID(), "boom", kernel.NewUUID(), time.Now().UTC())

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("rejects_empty_message", func(t *testing.T) {
		_, err := notification.NewNotification(
			kernel.NewUUID(), notification.TypeLowStock,
			kernel.NewUUID(), "", kernel.NewUUID(), time.Now().UTC())

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

func TestNotification_MarkSent(t *testing.T) {
	n := newTestNotification(t)
	now := time.Now().UTC()

	n.MarkSent(now)

	assert.Equal(t, notification.StatusSent, n.Status())
	require.NotNil(t, n.SentAt())
	assert.Equal(t, now, *n.SentAt())
}

func TestNotification_MarkFailed(t *testing.T) {
	n := newTestNotification(t)

	n.MarkFailed()

	assert.Equal(t, notification.StatusFailed, n.Status())
	assert.Nil(t, n.SentAt())
}

func TestType_Validate(t *testing.T) {
	valid := []notification.Type{
		notification.TypeOrderCreated,
		notification.TypeOrderShipped,
		notification.TypeOrderDelivered,
		notification.TypeOrderCancelled,
		notification.TypeLowStock,
		notification.TypeRestock,
	}
	for _, kind := range valid {
		require.NoError(t, kind.Validate())
	}

	require.Error(t, notification.Type("").Validate())
}

func TestSystemRecipientID(t *testing.T) {
	id := notification.SystemRecipientID()
	require.NoError(t, id.Validate())
	assert.True(t, id.IsEqual(notification.SystemRecipientID()), "system recipient should be stable")
}
