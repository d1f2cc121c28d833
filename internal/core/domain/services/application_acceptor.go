package services

import (
	"errors"

	"ustabar/internal/core/domain/model/application"
	"ustabar/internal/core/domain/model/kernel"
	"ustabar/internal/core/domain/model/order"
)

var (
	// ErrApplicationNotForOrder is returned when the application being
	// accepted belongs to a different order.
	ErrApplicationNotForOrder = errors.New("application does not belong to the order")

	// ErrCannotAcceptSkip is returned when the customer tries to accept a
	// skip decision.
	ErrCannotAcceptSkip = errors.New("skip decision cannot be accepted")
)

// ApplicationAcceptor is a domain service coordinating the acceptance of a
// worker's application by the order's customer. It sits above the two
// aggregates because the decision needs facts from both: the order's
// ownership and status, and the application's target, skip flag and
// proposed price.
//
// Business rules:
//   - the application must reference the order being accepted
//   - a skip can never be accepted
//   - the order transition rules apply (owner-only, Searching-only)
//   - the application's proposed price, when present, replaces the order's
type ApplicationAcceptor struct{}

// NewApplicationAcceptor creates a new ApplicationAcceptor instance.
func NewApplicationAcceptor() ApplicationAcceptor {
	return ApplicationAcceptor{}
}

// Accept applies a worker's application to the order on behalf of the
// requesting customer. On success the order is InProgress with the
// application's worker assigned and the effective price set.
func (s ApplicationAcceptor) Accept(
	ord *order.Order,
	app *application.Application,
	requesterID kernel.UUID,
) error {
	if err := errors.Join(ord.Validate(), app.Validate(), requesterID.Validate()); err != nil {
		return err
	}

	if !app.OrderID().IsEqual(ord.ID()) {
		return ErrApplicationNotForOrder
	}

	if app.IsSkip() {
		return ErrCannotAcceptSkip
	}

	return ord.Accept(requesterID, app.WorkerID(), app.ProposedPrice())
}
