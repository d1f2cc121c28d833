package commands

import (
	"context"

	"ustabar/internal/core/domain/model/order"
)

// CompleteOrderCommandHandler handles order completion. The final write is
// a compare-and-set on the InProgress status.
type CompleteOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewCompleteOrderCommandHandler creates a handler for order completion
// operations.
func NewCompleteOrderCommandHandler(uowFactory OrderUoWFactory) CompleteOrderCommandHandler {
	return CompleteOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the completion command.
func (h *CompleteOrderCommandHandler) Handle(ctx context.Context, cmd CompleteOrderCommand) error {
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

	if err = ord.Complete(cmd.RequesterID()); err != nil {
		return err
	}

	if err = orderRepo.UpdateInStatus(ctx, ord, order.InProgress); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
