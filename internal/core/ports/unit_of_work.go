package ports

import (
	"context"

	"parcelroute/internal/core/domain/model/kernel"
)

// UnitOfWork coordinates a database transaction across repository
// operations. The clear-then-set flag reconciliation and the conditional
// completion updates each run inside one unit of work so concurrent requests
// never observe a transient state with two flagged parcels.
type UnitOfWork interface {
	// Begin starts a new transaction. Calling Begin on an already begun
	// unit of work is a no-op.
	Begin(ctx context.Context) error

	// Commit finalizes all changes made within the current transaction.
	Commit(ctx context.Context) error

	// Rollback discards all changes made within the current transaction.
	Rollback(ctx context.Context) error

	// ParcelRepository returns a repository bound to the current transaction,
	// or to the main connection when no transaction is active.
	ParcelRepository() ParcelRepository

	// TrackAggregate registers an aggregate modified within this unit of
	// work, enabling post-commit processing such as oracle notifications.
	TrackAggregate(id kernel.UUID, aggregate any)
}

// UnitOfWorkFactory produces isolated UnitOfWork instances; each business
// operation gets a fresh one.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}
