// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS
// architecture. All commands follow a consistent pattern: validation,
// transaction management, and persistence, with oracle side effects kept
// strictly after the commit.
package commands

import (
	"context"

	"parcelroute/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command
// handlers. These abstractions ensure data consistency across the
// clear-then-set and completion updates.
type (
	// TxManager handles database transaction lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// ParcelRepoFactory provides access to the parcel repository within a
	// transaction.
	ParcelRepoFactory interface {
		ParcelRepository() ports.ParcelRepository
	}

	// UoW manages transactions for parcel operations.
	UoW interface {
		TxManager
		ParcelRepoFactory
	}

	// UoWFactory creates new unit of work instances; each handled command
	// gets a fresh one.
	UoWFactory interface {
		Create() UoW
	}
)
