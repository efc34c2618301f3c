package user_test

import (
	"testing"
	"time"

	"commerce/internal/core/domain/model/kernel"
	"commerce/internal/core/domain/model/user"
	"commerce/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUser(t *testing.T) {
	t.Run("valid_user", func(t *testing.T) {
		u, err := user.NewUser(kernel.NewUUID(), "Alice@Example.com", "Alice", time.Now().UTC())

		require.NoError(t, err)
		require.NoError(t, u.Validate())
		assert.Equal(t, "alice@example.com", u.Email())
		assert.Equal(t, "Alice", u.Name())
	})

	t.Run("rejects_empty_email", func(t *testing.T) {
		_, err := user.NewUser(kernel.NewUUID(), "  ", "Alice", time.Now().UTC())

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("rejects_malformed_email", func(t *testing.T) {
		_, err := user.NewUser(kernel.NewUUID(), "not-an-email", "Alice", time.Now().UTC())

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("rejects_empty_name", func(t *testing.T) {
		_, err := user.NewUser(kernel.NewUUID(), "alice@example.com", "", time.Now().UTC())

		require.Error(t, err)
	})

	t.Run("zero_value_fails_validation", func(t *testing.T) {
		var u user.User

		err := u.Validate()

		require.Error(t, err)
		assert.Equal(t, user.ErrUserIsNotConstructed, err)
	})
}
