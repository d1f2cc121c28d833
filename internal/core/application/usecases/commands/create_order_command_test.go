package commands_test

import (
	"testing"

	"ustabar/internal/core/application/usecases/commands"
	"ustabar/internal/core/domain/model/kernel"
	"ustabar/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCreateOrderCommand(t *testing.T) {
	orderID := kernel.NewUUID()
	customerID := kernel.NewUUID()

	t.Run("creates valid command", func(t *testing.T) {
		cmd, err := commands.NewCreateOrderCommand(
			orderID, customerID, "plumbing", 1500, "2 hours", "note", "12 Navoi street",
			[]string{"a.jpg"}, 41.2995, 69.2401)

		require.NoError(t, err)
		require.NoError(t, cmd.Validate())
		assert.True(t, cmd.OrderID().IsEqual(orderID))
		assert.True(t, cmd.CustomerID().IsEqual(customerID))
		assert.Equal(t, "plumbing", cmd.ServiceCategory())
		assert.Equal(t, 1500, cmd.Price())
		assert.Equal(t, "2 hours", cmd.Duration())
		assert.Equal(t, "note", cmd.Comment())
		assert.Equal(t, "12 Navoi street", cmd.Address())
		assert.Equal(t, []string{"a.jpg"}, cmd.Photos())
		assert.InDelta(t, 41.2995, cmd.Location().Latitude(), 1e-9)
		assert.InDelta(t, 69.2401, cmd.Location().Longitude(), 1e-9)
	})

	t.Run("rejects empty category", func(t *testing.T) {
		_, err := commands.NewCreateOrderCommand(
			orderID, customerID, "", 1500, "2 hours", "", "addr", nil, 41, 69)
		require.ErrorIs(t, err, commands.ErrServiceCategoryIsRequired)
	})

	t.Run("rejects non positive price", func(t *testing.T) {
		_, err := commands.NewCreateOrderCommand(
			orderID, customerID, "plumbing", 0, "2 hours", "", "addr", nil, 41, 69)
		require.ErrorIs(t, err, commands.ErrPriceIsInvalid)
	})

	t.Run("rejects missing duration or address", func(t *testing.T) {
		_, err := commands.NewCreateOrderCommand(
			orderID, customerID, "plumbing", 1500, "", "", "addr", nil, 41, 69)
		require.ErrorIs(t, err, commands.ErrDurationIsRequired)

		_, err = commands.NewCreateOrderCommand(
			orderID, customerID, "plumbing", 1500, "2 hours", "", "", nil, 41, 69)
		require.ErrorIs(t, err, commands.ErrAddressIsRequired)
	})

	t.Run("rejects out of range coordinates", func(t *testing.T) {
		_, err := commands.NewCreateOrderCommand(
			orderID, customerID, "plumbing", 1500, "2 hours", "", "addr", nil, 91, 69)
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)

		_, err = commands.NewCreateOrderCommand(
			orderID, customerID, "plumbing", 1500, "2 hours", "", "addr", nil, 41, -181)
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})

	t.Run("zero value fails validation", func(t *testing.T) {
		var cmd commands.CreateOrderCommand
		require.ErrorIs(t, cmd.Validate(), commands.ErrCreateOrderCommandIsNotConstructed)
	})
}
