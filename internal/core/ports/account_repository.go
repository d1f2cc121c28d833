// Package ports defines the contracts between the application core and the
// infrastructure adapters: repositories, the unit of work and the outbound
// notifier. The interfaces enable dependency inversion and testability.
package ports

import (
	"context"

	"ustabar/internal/core/domain/model/account"
	"ustabar/internal/core/domain/model/kernel"
)

// AccountRepository defines the persistence contract for account aggregates.
type AccountRepository interface {
	// Add persists a new account aggregate to storage.
	Add(ctx context.Context, aggregate *account.Account) error

	// Update persists changes to an existing account aggregate.
	Update(ctx context.Context, aggregate *account.Account) error

	// Get retrieves an account aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*account.Account, error)

	// GetByTgID retrieves an account by its Telegram user ID. This is the
	// authentication lookup: it resolves, never creates.
	GetByTgID(ctx context.Context, tgID int64) (*account.Account, error)
}
