package commands

import (
	"errors"

	"ustabar/internal/core/domain/model/kernel"
	"ustabar/internal/pkg/guard"
)

var (
	ErrApplyToOrderCommandIsNotConstructed = errors.New(
		"ApplyToOrderCommand must be created via NewApplyToOrderCommand constructor",
	)
	ErrProposedPriceIsInvalid = errors.New("proposed price must be greater than 0")
)

// ApplyToOrderCommand represents a worker's application to an order,
// optionally with a counter-offer price and a message to the customer.
type ApplyToOrderCommand struct { //nolint:recvcheck //using for validation
	applicationID kernel.UUID
	orderID       kernel.UUID
	workerID      kernel.UUID
	proposedPrice *int
	message       string

	guard guard.ConstructorGuard
}

// NewApplyToOrderCommand creates a command to apply to an order.
func NewApplyToOrderCommand(
	applicationID, orderID, workerID kernel.UUID,
	proposedPrice *int,
	message string,
) (ApplyToOrderCommand, error) {
	cmd := ApplyToOrderCommand{
		message: message,
		guard:   guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setApplicationID(applicationID),
		cmd.setOrderID(orderID),
		cmd.setWorkerID(workerID),
		cmd.setProposedPrice(proposedPrice),
	); err != nil {
		return ApplyToOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ApplyToOrderCommand) Validate() error {
	return c.guard.Validate(ErrApplyToOrderCommandIsNotConstructed)
}

// ApplicationID returns the identifier for the new application.
func (c ApplyToOrderCommand) ApplicationID() kernel.UUID {
	return c.applicationID
}

// OrderID returns the order being applied to.
func (c ApplyToOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// WorkerID returns the applying worker.
func (c ApplyToOrderCommand) WorkerID() kernel.UUID {
	return c.workerID
}

// ProposedPrice returns the optional counter-offer.
func (c ApplyToOrderCommand) ProposedPrice() *int {
	return c.proposedPrice
}

// Message returns the optional message to the customer.
func (c ApplyToOrderCommand) Message() string {
	return c.message
}

func (c *ApplyToOrderCommand) setApplicationID(applicationID kernel.UUID) error {
	if err := applicationID.Validate(); err != nil {
		return err
	}

	c.applicationID = applicationID
	return nil
}

func (c *ApplyToOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *ApplyToOrderCommand) setWorkerID(workerID kernel.UUID) error {
	if err := workerID.Validate(); err != nil {
		return err
	}

	c.workerID = workerID
	return nil
}

func (c *ApplyToOrderCommand) setProposedPrice(proposedPrice *int) error {
	if proposedPrice == nil {
		return nil
	}
	if *proposedPrice <= 0 {
		return ErrProposedPriceIsInvalid
	}

	price := *proposedPrice
	c.proposedPrice = &price
	return nil
}
