package commands

import (
	"errors"

	"ustabar/internal/core/domain/model/kernel"
	"ustabar/internal/pkg/guard"
)

var ErrAcceptApplicationCommandIsNotConstructed = errors.New(
	"AcceptApplicationCommand must be created via NewAcceptApplicationCommand constructor",
)

// AcceptApplicationCommand represents a customer's choice of one worker's
// application for their order.
type AcceptApplicationCommand struct { //nolint:recvcheck //using for validation
	orderID       kernel.UUID
	applicationID kernel.UUID
	requesterID   kernel.UUID

	guard guard.ConstructorGuard
}

// NewAcceptApplicationCommand creates a command to accept an application.
func NewAcceptApplicationCommand(
	orderID, applicationID, requesterID kernel.UUID,
) (AcceptApplicationCommand, error) {
	cmd := AcceptApplicationCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setApplicationID(applicationID),
		cmd.setRequesterID(requesterID),
	); err != nil {
		return AcceptApplicationCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AcceptApplicationCommand) Validate() error {
	return c.guard.Validate(ErrAcceptApplicationCommandIsNotConstructed)
}

// OrderID returns the order being decided.
func (c AcceptApplicationCommand) OrderID() kernel.UUID {
	return c.orderID
}

// ApplicationID returns the chosen application.
func (c AcceptApplicationCommand) ApplicationID() kernel.UUID {
	return c.applicationID
}

// RequesterID returns the account making the choice.
func (c AcceptApplicationCommand) RequesterID() kernel.UUID {
	return c.requesterID
}

func (c *AcceptApplicationCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *AcceptApplicationCommand) setApplicationID(applicationID kernel.UUID) error {
	if err := applicationID.Validate(); err != nil {
		return err
	}

	c.applicationID = applicationID
	return nil
}

func (c *AcceptApplicationCommand) setRequesterID(requesterID kernel.UUID) error {
	if err := requesterID.Validate(); err != nil {
		return err
	}

	c.requesterID = requesterID
	return nil
}
