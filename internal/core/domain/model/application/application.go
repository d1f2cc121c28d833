package application

import (
	"errors"
	"fmt"
	"time"

	"ustabar/internal/core/domain/model/kernel"
	"ustabar/internal/pkg/errs"
	"ustabar/internal/pkg/guard"
)

// ErrApplicationIsNotConstructed is returned when an Application instance
// was not created through NewApplication, NewSkip or RestoreApplication.
var ErrApplicationIsNotConstructed = errors.New(
	"Application must be created via NewApplication constructor")

// Application records a worker's single decision about an order: either a
// real application (optionally with a proposed price and a message) or a
// skip. A worker makes at most one decision per order; the persistence layer
// enforces this with a unique (order_id, worker_id) constraint, and the
// record is never updated afterwards.
type Application struct {
	id            kernel.UUID
	orderID       kernel.UUID
	workerID      kernel.UUID
	proposedPrice *int
	message       string
	skipped       bool
	createdAt     time.Time
	guard         guard.ConstructorGuard
}

// NewApplication creates a worker's application to an order. The proposed
// price and message are optional; a proposed price, when present, must be
// positive.
func NewApplication(
	id kernel.UUID,
	orderID kernel.UUID,
	workerID kernel.UUID,
	proposedPrice *int,
	message string,
) (*Application, error) {
	app := &Application{
		message:   message,
		createdAt: time.Now().UTC(),
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		app.setID(id),
		app.setOrderID(orderID),
		app.setWorkerID(workerID),
		app.setProposedPrice(proposedPrice),
	); err != nil {
		return nil, err
	}

	return app, nil
}

// NewSkip creates a skip decision: the order is hidden from the worker's
// feed without applying. Skips carry no price or message.
func NewSkip(id kernel.UUID, orderID kernel.UUID, workerID kernel.UUID) (*Application, error) {
	app := &Application{
		skipped:   true,
		createdAt: time.Now().UTC(),
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		app.setID(id),
		app.setOrderID(orderID),
		app.setWorkerID(workerID),
	); err != nil {
		return nil, err
	}

	return app, nil
}

// RestoreApplication reconstructs an Application from persistent storage.
func RestoreApplication(
	id kernel.UUID,
	orderID kernel.UUID,
	workerID kernel.UUID,
	proposedPrice *int,
	message string,
	skipped bool,
	createdAt time.Time,
) (*Application, error) {
	app := &Application{
		message:   message,
		skipped:   skipped,
		createdAt: createdAt,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		app.setID(id),
		app.setOrderID(orderID),
		app.setWorkerID(workerID),
		app.setProposedPrice(proposedPrice),
	); err != nil {
		return nil, err
	}

	return app, nil
}

// Validate checks that the Application was created via a constructor.
func (a *Application) Validate() error {
	if a == nil {
		return ErrApplicationIsNotConstructed
	}
	return a.guard.Validate(ErrApplicationIsNotConstructed)
}

// IsEqual compares two applications by their unique identifiers.
func (a *Application) IsEqual(other *Application) bool {
	return other != nil && a.id.IsEqual(other.id)
}

// ID returns the application's unique identifier.
func (a *Application) ID() kernel.UUID {
	return a.id
}

// OrderID returns the ID of the order the decision is about.
func (a *Application) OrderID() kernel.UUID {
	return a.orderID
}

// WorkerID returns the ID of the worker who made the decision.
func (a *Application) WorkerID() kernel.UUID {
	return a.workerID
}

// ProposedPrice returns the worker's counter-offer, or nil when the worker
// accepted the customer's price.
func (a *Application) ProposedPrice() *int {
	return a.proposedPrice
}

// Message returns the optional message to the customer.
func (a *Application) Message() string {
	return a.message
}

// IsSkip reports whether the decision is a skip rather than an application.
func (a *Application) IsSkip() bool {
	return a.skipped
}

// CreatedAt returns the creation timestamp (UTC).
func (a *Application) CreatedAt() time.Time {
	return a.createdAt
}

func (a *Application) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	a.id = id
	return nil
}

func (a *Application) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	a.orderID = orderID
	return nil
}

func (a *Application) setWorkerID(workerID kernel.UUID) error {
	if err := workerID.Validate(); err != nil {
		return err
	}
	a.workerID = workerID
	return nil
}

func (a *Application) setProposedPrice(proposedPrice *int) error {
	if proposedPrice == nil {
		return nil
	}
	if *proposedPrice <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"proposed price is invalid",
			fmt.Errorf("%d is not greater than 0", *proposedPrice),
		)
	}

	price := *proposedPrice
	a.proposedPrice = &price
	return nil
}
