package commands

import (
	"context"
	"errors"

	"ustabar/internal/core/domain/model/application"
	"ustabar/internal/core/ports"
	"ustabar/internal/pkg/metrics"
)

// SkipOrderCommandHandler records a worker's skip. Unlike applying, a skip
// is accepted whatever the order's current status: it only hides the order
// from the worker's feed. The same unique constraint makes repeated skips
// idempotent.
type SkipOrderCommandHandler struct {
	uowFactory DecisionUoWFactory
}

// NewSkipOrderCommandHandler creates a handler for skip operations.
func NewSkipOrderCommandHandler(uowFactory DecisionUoWFactory) SkipOrderCommandHandler {
	return SkipOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the skip command.
func (h *SkipOrderCommandHandler) Handle(
	ctx context.Context,
	cmd SkipOrderCommand,
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

	// The order must exist; its status does not matter for a skip.
	if _, err := uow.OrderRepository().Get(ctx, cmd.OrderID()); err != nil {
		return 0, err
	}

	skip, err := application.NewSkip(cmd.SkipID(), cmd.OrderID(), cmd.WorkerID())
	if err != nil {
		return 0, err
	}

	if err = uow.ApplicationRepository().Add(ctx, skip); err != nil {
		if errors.Is(err, ports.ErrDecisionAlreadyMade) {
			return DecisionAlreadyMade, nil
		}
		return 0, err
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	metrics.DecisionsTotal.WithLabelValues("skip").Inc()
	return DecisionRecorded, nil
}
