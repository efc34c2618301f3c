package queries_test

import (
	"testing"

	"commerce/internal/core/application/usecases/queries"
	"commerce/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGetUserQuery_Valid(t *testing.T) {
	userID := kernel.NewUUID()

	query, err := queries.NewGetUserQuery(userID)
	require.NoError(t, err)
	require.NoError(t, query.Validate())

	assert.True(t, query.UserID().IsEqual(userID))
}

func TestNewGetUserQuery_InvalidID(t *testing.T) {
	_, err := queries.NewGetUserQuery(kernel.UUID{})
	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}

func TestGetUserQuery_NotConstructedViaConstructor(t *testing.T) {
	query := queries.GetUserQuery{}
	err := query.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrGetUserQueryIsNotConstructed)
}
