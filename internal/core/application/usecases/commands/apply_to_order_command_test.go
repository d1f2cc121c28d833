package commands_test

import (
	"testing"

	"ustabar/internal/core/application/usecases/commands"
	"ustabar/internal/core/domain/model/kernel"
	"ustabar/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewApplyToOrderCommand_Success(t *testing.T) {
	applicationID := kernel.NewUUID()
	orderID := kernel.NewUUID()
	workerID := kernel.NewUUID()
	proposed := 1200

	cmd, err := commands.NewApplyToOrderCommand(
		applicationID, orderID, workerID, &proposed, "can start tomorrow")

	require.NoError(t, err)
	assert.True(t, cmd.ApplicationID().IsEqual(applicationID))
	assert.True(t, cmd.OrderID().IsEqual(orderID))
	assert.True(t, cmd.WorkerID().IsEqual(workerID))
	require.NotNil(t, cmd.ProposedPrice())
	assert.Equal(t, 1200, *cmd.ProposedPrice())
	assert.Equal(t, "can start tomorrow", cmd.Message())
	assert.NoError(t, cmd.Validate())
}

func TestNewApplyToOrderCommand_WithoutCounterOffer(t *testing.T) {
	cmd, err := commands.NewApplyToOrderCommand(
		kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), nil, "")

	require.NoError(t, err)
	assert.Nil(t, cmd.ProposedPrice())
	assert.Empty(t, cmd.Message())
}

func TestNewApplyToOrderCommand_CopiesProposedPrice(t *testing.T) {
	proposed := 900

	cmd, err := commands.NewApplyToOrderCommand(
		kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), &proposed, "")
	require.NoError(t, err)

	proposed = 1
	assert.Equal(t, 900, *cmd.ProposedPrice())
}

func TestNewApplyToOrderCommand_NonPositiveProposedPrice_Fails(t *testing.T) {
	tests := []struct {
		name  string
		price int
	}{
		{"Zero", 0},
		{"Negative", -50},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := commands.NewApplyToOrderCommand(
				kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), &tt.price, "")

			require.ErrorIs(t, err, commands.ErrProposedPriceIsInvalid)
		})
	}
}

func TestNewApplyToOrderCommand_ZeroIDs_Fail(t *testing.T) {
	tests := []struct {
		name          string
		applicationID kernel.UUID
		orderID       kernel.UUID
		workerID      kernel.UUID
	}{
		{"ZeroApplicationID", kernel.UUID{}, kernel.NewUUID(), kernel.NewUUID()},
		{"ZeroOrderID", kernel.NewUUID(), kernel.UUID{}, kernel.NewUUID()},
		{"ZeroWorkerID", kernel.NewUUID(), kernel.NewUUID(), kernel.UUID{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := commands.NewApplyToOrderCommand(
				tt.applicationID, tt.orderID, tt.workerID, nil, "")

			require.ErrorIs(t, err, errs.ErrValueIsRequired)
		})
	}
}

func TestApplyToOrderCommand_ZeroValue_FailsValidation(t *testing.T) {
	var cmd commands.ApplyToOrderCommand

	err := cmd.Validate()

	require.ErrorIs(t, err, commands.ErrApplyToOrderCommandIsNotConstructed)
}
