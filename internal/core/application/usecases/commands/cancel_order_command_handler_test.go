package commands_test

import (
	"testing"

	"ustabar/internal/core/application/usecases/commands"
	"ustabar/internal/core/domain/model/kernel"
	"ustabar/internal/core/domain/model/order"
	"ustabar/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func searchingOrder(t *testing.T, customerID kernel.UUID) *order.Order {
	t.Helper()
	location, err := kernel.NewGeoPoint(41.3, 69.25)
	require.NoError(t, err)

	ord, err := order.NewOrder(
		kernel.NewUUID(), customerID, "plumbing", 1500, "2 hours", "", "12 Navoi street", nil, location)
	require.NoError(t, err)
	return ord
}

func TestCancelOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	customerID := kernel.NewUUID()
	ord := searchingOrder(t, customerID)

	cmd, err := commands.NewCancelOrderCommand(ord.ID(), customerID)
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, ord.ID()).Return(ord, nil).Once(),
		repo.On("UpdateInStatus", mock.Anything, ord, order.Searching).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCancelOrderCommandHandler(factory)
	require.NoError(t, h.Handle(ctx, cmd))

	assert.Equal(t, order.Canceled, ord.Status())

	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestCancelOrderCommandHandler_Handle_NotOwner(t *testing.T) {
	ctx := t.Context()
	ord := searchingOrder(t, kernel.NewUUID())

	cmd, err := commands.NewCancelOrderCommand(ord.ID(), kernel.NewUUID())
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, ord.ID()).Return(ord, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCancelOrderCommandHandler(factory)
	err = h.Handle(ctx, cmd)

	require.ErrorIs(t, err, order.ErrOrderNotOwnedByAccount)
	assert.Equal(t, order.Searching, ord.Status())

	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestCancelOrderCommandHandler_Handle_OrderNotFound(t *testing.T) {
	ctx := t.Context()
	orderID := kernel.NewUUID()

	cmd, err := commands.NewCancelOrderCommand(orderID, kernel.NewUUID())
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, orderID).
			Return(nil, errs.NewObjectNotFoundError("order", orderID.String())).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCancelOrderCommandHandler(factory)
	err = h.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrObjectNotFound)

	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestCancelOrderCommandHandler_Handle_ConcurrentTransitionLoses(t *testing.T) {
	ctx := t.Context()
	customerID := kernel.NewUUID()
	ord := searchingOrder(t, customerID)

	cmd, err := commands.NewCancelOrderCommand(ord.ID(), customerID)
	require.NoError(t, err)

	conflict := errs.NewValueIsInvalidError("status is invalid")

	repo := new(MockOrderRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, ord.ID()).Return(ord, nil).Once(),
		repo.On("UpdateInStatus", mock.Anything, ord, order.Searching).Return(conflict).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCancelOrderCommandHandler(factory)
	err = h.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrValueIsInvalid)

	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}
