package ports

import (
	"context"

	"ustabar/internal/core/domain/model/application"
	"ustabar/internal/core/domain/model/kernel"
)

// ApplicationRepository defines the persistence contract for worker
// decisions (applications and skips).
type ApplicationRepository interface {
	// Add persists a new decision. The storage enforces at most one
	// decision per (order, worker) pair; inserting a second one returns
	// ErrDecisionAlreadyMade.
	Add(ctx context.Context, aggregate *application.Application) error

	// Get retrieves a decision by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*application.Application, error)

	// GetAllByOrder retrieves all non-skip applications for an order,
	// oldest first.
	GetAllByOrder(ctx context.Context, orderID kernel.UUID) ([]*application.Application, error)
}
