// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS
// architecture. All commands follow a consistent pattern: validation,
// transaction management, and persistence.
package commands

import (
	"context"

	"ustabar/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command
// handlers. Each handler declares the narrowest unit of work it needs.
type (
	// TxManager handles database transaction lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// AccountRepoFactory provides access to the account repository within a
	// transaction.
	AccountRepoFactory interface {
		AccountRepository() ports.AccountRepository
	}

	// OrderRepoFactory provides access to the order repository within a
	// transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// ApplicationRepoFactory provides access to the application repository
	// within a transaction.
	ApplicationRepoFactory interface {
		ApplicationRepository() ports.ApplicationRepository
	}

	// AccountUoW manages transactions for account-only operations.
	AccountUoW interface {
		TxManager
		AccountRepoFactory
	}

	// AccountUoWFactory creates new account unit of work instances.
	AccountUoWFactory interface {
		Create() AccountUoW
	}

	// OrderUoW manages transactions for order-only operations.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
	}

	// OrderUoWFactory creates new order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// DecisionUoW manages transactions for worker decisions, which read the
	// order and write the application.
	DecisionUoW interface {
		TxManager
		OrderRepoFactory
		ApplicationRepoFactory
	}

	// DecisionUoWFactory creates new decision unit of work instances.
	DecisionUoWFactory interface {
		Create() DecisionUoW
	}

	// UoW manages transactions across all three aggregates. Used by the
	// acceptance flow, which touches the order, the application and the
	// worker's account.
	UoW interface {
		TxManager
		AccountRepoFactory
		OrderRepoFactory
		ApplicationRepoFactory
	}

	// UoWFactory creates new unit of work instances for cross-aggregate
	// operations.
	UoWFactory interface {
		Create() UoW
	}
)
