package queries_test

import (
	"testing"

	"commerce/internal/core/application/usecases/queries"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGetPendingNotificationsQuery_Valid(t *testing.T) {
	query := queries.NewGetPendingNotificationsQuery()
	err := query.Validate()
	require.NoError(t, err)
}

func TestGetPendingNotificationsQuery_NotConstructedViaConstructor(t *testing.T) {
	query := queries.GetPendingNotificationsQuery{}
	err := query.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrGetPendingNotificationsQueryIsNotConstructed)
}
