package commands

import (
	"context"

	"ustabar/internal/core/domain/model/order"
)

// CancelOrderCommandHandler handles order cancellation. The final write is
// a compare-and-set on the Searching status, so a cancellation racing an
// acceptance can never undo the acceptance.
type CancelOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewCancelOrderCommandHandler creates a handler for order cancellation
// operations.
func NewCancelOrderCommandHandler(uowFactory OrderUoWFactory) CancelOrderCommandHandler {
	return CancelOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the cancellation command.
func (h *CancelOrderCommandHandler) Handle(ctx context.Context, cmd CancelOrderCommand) error {
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

	orderRepo := uow.OrderRepository()

	ord, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = ord.Cancel(cmd.RequesterID()); err != nil {
		return err
	}

	if err = orderRepo.UpdateInStatus(ctx, ord, order.Searching); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
