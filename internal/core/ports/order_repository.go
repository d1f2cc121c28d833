package ports

import (
	"context"

	"ustabar/internal/core/domain/model/kernel"
	"ustabar/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate without any
	// status precondition.
	Update(ctx context.Context, aggregate *order.Order) error

	// UpdateInStatus persists changes to an existing order only if its
	// stored status still equals expected. The write is a compare-and-set:
	// when the stored status has moved on (a concurrent transition won),
	// no row is touched and errs.ErrValueIsInvalid is returned.
	UpdateInStatus(ctx context.Context, aggregate *order.Order, expected order.Status) error

	// Get retrieves an order aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetAllByCustomer retrieves the customer's orders, newest first.
	GetAllByCustomer(ctx context.Context, customerID kernel.UUID) ([]*order.Order, error)
}
