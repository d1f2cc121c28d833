package order_test

import (
	"testing"

	"ustabar/internal/core/domain/model/order"
	"ustabar/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_Validate(t *testing.T) {
	t.Run("accepts lifecycle statuses", func(t *testing.T) {
		for _, status := range []order.Status{
			order.Searching,
			order.InProgress,
			order.Completed,
			order.Canceled,
		} {
			require.NoError(t, status.Validate())
		}
	})

	t.Run("rejects unknown and out of range", func(t *testing.T) {
		for _, status := range []order.Status{order.Unknown, order.Status(42), order.Status(-1)} {
			err := status.Validate()
			require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		}
	})
}

func TestStatus_String(t *testing.T) {
	assert.Equal(t, "Searching", order.Searching.String())
	assert.Equal(t, "InProgress", order.InProgress.String())
	assert.Equal(t, "Completed", order.Completed.String())
	assert.Equal(t, "Canceled", order.Canceled.String())
	assert.Equal(t, "Unknown", order.Unknown.String())
	assert.Equal(t, "Unknown", order.Status(99).String())
}

func TestStatus_IsTerminal(t *testing.T) {
	assert.True(t, order.Completed.IsTerminal())
	assert.True(t, order.Canceled.IsTerminal())
	assert.False(t, order.Searching.IsTerminal())
	assert.False(t, order.InProgress.IsTerminal())
}

func TestStatus_Accept(t *testing.T) {
	t.Run("searching order can be accepted", func(t *testing.T) {
		next, err := order.Searching.Accept()

		require.NoError(t, err)
		assert.Equal(t, order.InProgress, next)
	})

	t.Run("any other status cannot", func(t *testing.T) {
		for _, status := range []order.Status{
			order.Unknown,
			order.InProgress,
			order.Completed,
			order.Canceled,
		} {
			_, err := status.Accept()
			require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		}
	})
}

func TestStatus_Cancel(t *testing.T) {
	t.Run("searching order can be canceled", func(t *testing.T) {
		next, err := order.Searching.Cancel()

		require.NoError(t, err)
		assert.Equal(t, order.Canceled, next)
	})

	t.Run("in progress order cannot be canceled", func(t *testing.T) {
		_, err := order.InProgress.Cancel()
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("terminal statuses cannot be canceled", func(t *testing.T) {
		for _, status := range []order.Status{order.Completed, order.Canceled} {
			_, err := status.Cancel()
			require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		}
	})
}

func TestStatus_Complete(t *testing.T) {
	t.Run("in progress order can be completed", func(t *testing.T) {
		next, err := order.InProgress.Complete()

		require.NoError(t, err)
		assert.Equal(t, order.Completed, next)
	})

	t.Run("any other status cannot", func(t *testing.T) {
		for _, status := range []order.Status{
			order.Unknown,
			order.Searching,
			order.Completed,
			order.Canceled,
		} {
			_, err := status.Complete()
			require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		}
	})
}

func TestStatus_ValidateCanHaveWorker(t *testing.T) {
	t.Run("searching must have no worker", func(t *testing.T) {
		require.NoError(t, order.Searching.ValidateCanHaveWorker(false))
		require.Error(t, order.Searching.ValidateCanHaveWorker(true))
	})

	t.Run("in progress must have a worker", func(t *testing.T) {
		require.NoError(t, order.InProgress.ValidateCanHaveWorker(true))
		require.Error(t, order.InProgress.ValidateCanHaveWorker(false))
	})

	t.Run("completed must have a worker", func(t *testing.T) {
		require.NoError(t, order.Completed.ValidateCanHaveWorker(true))
		require.Error(t, order.Completed.ValidateCanHaveWorker(false))
	})

	t.Run("canceled must have no worker", func(t *testing.T) {
		require.NoError(t, order.Canceled.ValidateCanHaveWorker(false))
		require.Error(t, order.Canceled.ValidateCanHaveWorker(true))
	})
}
