package commands

import (
	"context"

	"ustabar/internal/core/domain/model/order"
	"ustabar/internal/core/domain/services"
	"ustabar/internal/core/ports"
	"ustabar/internal/pkg/metrics"
)

// AcceptApplicationCommandHandler orchestrates the acceptance of a worker's
// application: the order moves to InProgress with the worker assigned and
// the effective price set, guarded by a compare-and-set so that of two
// concurrent accepts exactly one wins. After the transaction commits the
// worker is notified through the side channel; notification failures never
// affect the committed result.
type AcceptApplicationCommandHandler struct {
	uowFactory UoWFactory
	notifier   ports.WorkerNotifier
	acceptor   services.ApplicationAcceptor
}

// NewAcceptApplicationCommandHandler creates a handler for application
// acceptance operations.
func NewAcceptApplicationCommandHandler(
	uowFactory UoWFactory,
	notifier ports.WorkerNotifier,
) AcceptApplicationCommandHandler {
	return AcceptApplicationCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
		acceptor:   services.NewApplicationAcceptor(),
	}
}

// Handle processes the acceptance command.
func (h *AcceptApplicationCommandHandler) Handle(ctx context.Context, cmd AcceptApplicationCommand) error {
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

	app, err := uow.ApplicationRepository().Get(ctx, cmd.ApplicationID())
	if err != nil {
		return err
	}

	if err = h.acceptor.Accept(ord, app, cmd.RequesterID()); err != nil {
		return err
	}

	if err = orderRepo.UpdateInStatus(ctx, ord, order.Searching); err != nil {
		return err
	}

	// The worker's Telegram ID is needed for the notification; load it
	// while the transaction is still open.
	worker, err := uow.AccountRepository().Get(ctx, app.WorkerID())
	if err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	metrics.ApplicationsAcceptedTotal.Inc()
	h.notifier.NotifyApplicationAccepted(ctx, ports.AcceptedApplicationEvent{
		OrderID:         ord.ID().String(),
		WorkerID:        worker.ID().String(),
		WorkerTgID:      worker.TgID(),
		ServiceCategory: ord.ServiceCategory(),
		Price:           ord.Price(),
	})

	return nil
}
