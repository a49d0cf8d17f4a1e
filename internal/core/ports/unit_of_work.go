package ports

import (
	"context"
)

// UnitOfWorkFactory creates new UnitOfWork instances for each request/command.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork represents a business transaction boundary.
// Repositories obtained from it run inside the transaction started by Begin.
// Domain events of the aggregates written through them are published after Commit.
type UnitOfWork interface {
	// Begin starts a new database transaction.
	Begin(ctx context.Context) error

	// Commit commits the current transaction and then publishes collected events.
	// Returns error if no active transaction or commit fails.
	Commit(ctx context.Context) error

	// Rollback rolls back the current transaction and drops collected events.
	// Calling it after Commit is a no-op.
	Rollback(ctx context.Context) error

	PrincipalRepository() PrincipalRepository
	CategoryRepository() CategoryRepository
	MenuItemRepository() MenuItemRepository
	CartRepository() CartRepository
	OrderRepository() OrderRepository
}
