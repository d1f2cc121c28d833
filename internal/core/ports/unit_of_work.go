package ports

import (
	"context"
	"errors"
)

// ErrDecisionAlreadyMade signals that the worker already has a decision
// recorded for the order. Command handlers translate it into an idempotent
// outcome rather than a failure.
var ErrDecisionAlreadyMade = errors.New("decision for this order already exists")

// UnitOfWorkFactory creates new UnitOfWork instances for each
// request/command. This ensures proper isolation between concurrent
// operations.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork represents a business transaction boundary. It provides
// transaction control and repositories bound to the active transaction.
// Client code must explicitly manage the transaction lifecycle.
type UnitOfWork interface {
	// Begin starts a new database transaction.
	Begin(ctx context.Context) error

	// Commit commits the current transaction.
	Commit(ctx context.Context) error

	// Rollback rolls back the current transaction. Safe to defer: it is a
	// no-op after Commit.
	Rollback(ctx context.Context) error

	// AccountRepository returns an AccountRepository bound to the current
	// transaction.
	AccountRepository() AccountRepository

	// OrderRepository returns an OrderRepository bound to the current
	// transaction.
	OrderRepository() OrderRepository

	// ApplicationRepository returns an ApplicationRepository bound to the
	// current transaction.
	ApplicationRepository() ApplicationRepository
}
