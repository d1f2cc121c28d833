package commands

import (
	"context"

	"ustabar/internal/core/domain/model/order"
	"ustabar/internal/pkg/metrics"
)

// CreateOrderCommandHandler handles the business logic for order creation.
// New orders start in Searching status and immediately become visible in
// matching workers' feeds.
type CreateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewCreateOrderCommandHandler creates a handler for order creation
// operations.
func NewCreateOrderCommandHandler(uowFactory OrderUoWFactory) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the order creation command inside a transaction.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	newOrder, err := order.NewOrder(
		cmd.OrderID(),
		cmd.CustomerID(),
		cmd.ServiceCategory(),
		cmd.Price(),
		cmd.Duration(),
		cmd.Comment(),
		cmd.Address(),
		cmd.Photos(),
		cmd.Location(),
	)
	if err != nil {
		return err
	}

	if err = uow.OrderRepository().Add(ctx, newOrder); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	metrics.OrdersCreatedTotal.Inc()
	return nil
}
