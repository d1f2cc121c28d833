package queries_test

import (
	"testing"

	"ustabar/internal/core/application/usecases/queries"
	"ustabar/internal/core/domain/model/kernel"
	"ustabar/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGetOrderApplicationsQuery_Success(t *testing.T) {
	orderID := kernel.NewUUID()
	requesterID := kernel.NewUUID()

	query, err := queries.NewGetOrderApplicationsQuery(orderID, requesterID)

	require.NoError(t, err)
	assert.True(t, query.OrderID().IsEqual(orderID))
	assert.True(t, query.RequesterID().IsEqual(requesterID))
	assert.NoError(t, query.Validate())
}

func TestNewGetOrderApplicationsQuery_ZeroIDs_Fail(t *testing.T) {
	tests := []struct {
		name        string
		orderID     kernel.UUID
		requesterID kernel.UUID
	}{
		{"ZeroOrderID", kernel.UUID{}, kernel.NewUUID()},
		{"ZeroRequesterID", kernel.NewUUID(), kernel.UUID{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := queries.NewGetOrderApplicationsQuery(tt.orderID, tt.requesterID)

			require.ErrorIs(t, err, errs.ErrValueIsRequired)
		})
	}
}

func TestGetOrderApplicationsQuery_ZeroValue_FailsValidation(t *testing.T) {
	var query queries.GetOrderApplicationsQuery

	err := query.Validate()

	require.ErrorIs(t, err, queries.ErrGetOrderApplicationsQueryIsNotConstructed)
}
