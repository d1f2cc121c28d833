package commands_test

import (
	"context"

	"ustabar/internal/core/application/usecases/commands"
	"ustabar/internal/core/domain/model/account"
	"ustabar/internal/core/domain/model/application"
	"ustabar/internal/core/domain/model/kernel"
	"ustabar/internal/core/domain/model/order"
	"ustabar/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type MockAccountRepository struct{ mock.Mock }

func (m *MockAccountRepository) Add(ctx context.Context, aggregate *account.Account) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockAccountRepository) Update(ctx context.Context, aggregate *account.Account) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockAccountRepository) Get(ctx context.Context, id kernel.UUID) (*account.Account, error) {
	args := m.Called(ctx, id)
	if acc, ok := args.Get(0).(*account.Account); ok {
		return acc, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockAccountRepository) GetByTgID(ctx context.Context, tgID int64) (*account.Account, error) {
	args := m.Called(ctx, tgID)
	if acc, ok := args.Get(0).(*account.Account); ok {
		return acc, args.Error(1)
	}
	return nil, args.Error(1)
}

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockOrderRepository) UpdateInStatus(
	ctx context.Context, aggregate *order.Order, expected order.Status,
) error {
	args := m.Called(ctx, aggregate, expected)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if ord, ok := args.Get(0).(*order.Order); ok {
		return ord, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockOrderRepository) GetAllByCustomer(
	ctx context.Context, customerID kernel.UUID,
) ([]*order.Order, error) {
	args := m.Called(ctx, customerID)
	if orders, ok := args.Get(0).([]*order.Order); ok {
		return orders, args.Error(1)
	}
	return nil, args.Error(1)
}

type MockApplicationRepository struct{ mock.Mock }

func (m *MockApplicationRepository) Add(ctx context.Context, aggregate *application.Application) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockApplicationRepository) Get(
	ctx context.Context, id kernel.UUID,
) (*application.Application, error) {
	args := m.Called(ctx, id)
	if app, ok := args.Get(0).(*application.Application); ok {
		return app, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockApplicationRepository) GetAllByOrder(
	ctx context.Context, orderID kernel.UUID,
) ([]*application.Application, error) {
	args := m.Called(ctx, orderID)
	if apps, ok := args.Get(0).([]*application.Application); ok {
		return apps, args.Error(1)
	}
	return nil, args.Error(1)
}

// MockUoW implements every unit of work flavor the handlers use.
type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) AccountRepository() ports.AccountRepository {
	args := m.Called()
	return args.Get(0).(ports.AccountRepository)
}

func (m *MockUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

func (m *MockUoW) ApplicationRepository() ports.ApplicationRepository {
	args := m.Called()
	return args.Get(0).(ports.ApplicationRepository)
}

type MockAccountUoWFactory struct{ mock.Mock }

func (m *MockAccountUoWFactory) Create() commands.AccountUoW {
	args := m.Called()
	return args.Get(0).(commands.AccountUoW)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

type MockDecisionUoWFactory struct{ mock.Mock }

func (m *MockDecisionUoWFactory) Create() commands.DecisionUoW {
	args := m.Called()
	return args.Get(0).(commands.DecisionUoW)
}

type MockUoWFactory struct{ mock.Mock }

func (m *MockUoWFactory) Create() commands.UoW {
	args := m.Called()
	return args.Get(0).(commands.UoW)
}

type MockWorkerNotifier struct{ mock.Mock }

func (m *MockWorkerNotifier) NotifyApplicationAccepted(
	ctx context.Context, event ports.AcceptedApplicationEvent,
) {
	m.Called(ctx, event)
}
