package commands

import (
	"errors"

	"ustabar/internal/core/domain/model/kernel"
	"ustabar/internal/pkg/guard"
)

var ErrSkipOrderCommandIsNotConstructed = errors.New(
	"SkipOrderCommand must be created via NewSkipOrderCommand constructor",
)

// SkipOrderCommand represents a worker's request to hide an order from
// their feed without applying.
type SkipOrderCommand struct { //nolint:recvcheck //using for validation
	skipID   kernel.UUID
	orderID  kernel.UUID
	workerID kernel.UUID

	guard guard.ConstructorGuard
}

// NewSkipOrderCommand creates a command to skip an order.
func NewSkipOrderCommand(skipID, orderID, workerID kernel.UUID) (SkipOrderCommand, error) {
	cmd := SkipOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setSkipID(skipID),
		cmd.setOrderID(orderID),
		cmd.setWorkerID(workerID),
	); err != nil {
		return SkipOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c SkipOrderCommand) Validate() error {
	return c.guard.Validate(ErrSkipOrderCommandIsNotConstructed)
}

// SkipID returns the identifier for the new skip record.
func (c SkipOrderCommand) SkipID() kernel.UUID {
	return c.skipID
}

// OrderID returns the order being skipped.
func (c SkipOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// WorkerID returns the skipping worker.
func (c SkipOrderCommand) WorkerID() kernel.UUID {
	return c.workerID
}

func (c *SkipOrderCommand) setSkipID(skipID kernel.UUID) error {
	if err := skipID.Validate(); err != nil {
		return err
	}

	c.skipID = skipID
	return nil
}

func (c *SkipOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *SkipOrderCommand) setWorkerID(workerID kernel.UUID) error {
	if err := workerID.Validate(); err != nil {
		return err
	}

	c.workerID = workerID
	return nil
}
