package queries_test

import (
	"testing"

	"storefront/internal/core/application/usecases/queries"
	"storefront/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/require"
)

func TestNewGetOrderQuery(t *testing.T) {
	orderID := kernel.NewUUID()
	ownerID := kernel.NewUUID()

	query, err := queries.NewGetOrderQuery(orderID, ownerID)
	require.NoError(t, err)
	require.NoError(t, query.Validate())
	require.True(t, query.OrderID().IsEqual(orderID))
	require.True(t, query.OwnerID().IsEqual(ownerID))
}

func TestNewGetOrderQuery_InvalidIDs(t *testing.T) {
	_, err := queries.NewGetOrderQuery(kernel.UUID{}, kernel.NewUUID())
	require.Error(t, err)

	_, err = queries.NewGetOrderQuery(kernel.NewUUID(), kernel.UUID{})
	require.Error(t, err)
}

func TestGetOrderQuery_ZeroValueFailsValidation(t *testing.T) {
	var query queries.GetOrderQuery
	require.ErrorIs(t, query.Validate(), queries.ErrGetOrderQueryIsNotConstructed)
}

func TestNewGetOrdersQuery(t *testing.T) {
	ownerID := kernel.NewUUID()

	query, err := queries.NewGetOrdersQuery(ownerID)
	require.NoError(t, err)
	require.NoError(t, query.Validate())
	require.True(t, query.OwnerID().IsEqual(ownerID))
}

func TestGetOrdersQuery_ZeroValueFailsValidation(t *testing.T) {
	var query queries.GetOrdersQuery
	require.ErrorIs(t, query.Validate(), queries.ErrGetOrdersQueryIsNotConstructed)
}
