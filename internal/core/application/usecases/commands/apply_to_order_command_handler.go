package commands

import (
	"context"
	"errors"
	"fmt"

	"ustabar/internal/core/domain/model/application"
	"ustabar/internal/core/domain/model/order"
	"ustabar/internal/core/ports"
	"ustabar/internal/pkg/errs"
	"ustabar/internal/pkg/metrics"
)

// ApplyToOrderCommandHandler records a worker's application. The unique
// (order, worker) constraint in storage makes the operation idempotent:
// whichever of two racing decisions inserts first wins, and the loser gets
// the DecisionAlreadyMade outcome instead of an error.
type ApplyToOrderCommandHandler struct {
	uowFactory DecisionUoWFactory
}

// NewApplyToOrderCommandHandler creates a handler for application
// operations.
func NewApplyToOrderCommandHandler(uowFactory DecisionUoWFactory) ApplyToOrderCommandHandler {
	return ApplyToOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the application command. The order must still be in
// Searching status: applications to accepted, completed or canceled orders
// are rejected.
func (h *ApplyToOrderCommandHandler) Handle(
	ctx context.Context,
	cmd ApplyToOrderCommand,
) (DecisionOutcome, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	ord, err := uow.OrderRepository().Get(ctx, cmd.OrderID())
	if err != nil {
		return 0, err
	}

	if ord.Status() != order.Searching {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s order does not take applications", ord.Status()),
		)
	}

	app, err := application.NewApplication(
		cmd.ApplicationID(), cmd.OrderID(), cmd.WorkerID(), cmd.ProposedPrice(), cmd.Message())
	if err != nil {
		return 0, err
	}

	if err = uow.ApplicationRepository().Add(ctx, app); err != nil {
		if errors.Is(err, ports.ErrDecisionAlreadyMade) {
			return DecisionAlreadyMade, nil
		}
		return 0, err
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	metrics.DecisionsTotal.WithLabelValues("apply").Inc()
	return DecisionRecorded, nil
}
