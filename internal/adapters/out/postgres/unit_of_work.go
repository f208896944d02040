// Package postgres provides the GORM-based implementation of the Unit of
// Work pattern. A unit of work brackets the repository operations of one
// business operation in a single database transaction, so the clear-then-set
// flag reconciliation and the conditional completion updates commit or roll
// back as a whole.
//
// Usage pattern:
//
//	uow := factory.Create()
//	if err := uow.Begin(ctx); err != nil {
//	    return err
//	}
//	defer func() {
//	    _ = uow.Rollback(ctx)
//	}()
//
//	repo := uow.ParcelRepository()
//	// ... repository operations
//
//	return uow.Commit(ctx)
//
// Each UnitOfWork instance owns its transaction state; concurrent operations
// must use separate instances. Rollback after a successful commit is a no-op
// error, which makes the deferred rollback idiom safe.
package postgres

import (
	"context"

	"parcelroute/internal/adapters/out/postgres/parcelrepo"
	"parcelroute/internal/core/domain/model/kernel"
	"parcelroute/internal/core/ports"

	"gorm.io/gorm"
)

// trackedAggregate represents an aggregate modified during the unit of work.
// Command handlers use the tracked set for post-commit processing such as
// oracle completion notifications.
type trackedAggregate struct {
	ID        kernel.UUID
	Aggregate any
}

// GormUnitOfWorkFactory creates UnitOfWork instances sharing one GORM
// database connection. Each created instance is isolated from the others.
type GormUnitOfWorkFactory struct {
	db *gorm.DB
}

// NewGormUnitOfWorkFactory creates a factory for GORM-based unit of work
// instances. The provided database connection is used for all created
// instances.
func NewGormUnitOfWorkFactory(db *gorm.DB) *GormUnitOfWorkFactory {
	return &GormUnitOfWorkFactory{db: db}
}

// Create produces a new UnitOfWork ready for one business operation.
func (f *GormUnitOfWorkFactory) Create() ports.UnitOfWork {
	return &GormUnitOfWork{
		db:                f.db,
		trackedAggregates: make([]trackedAggregate, 0),
	}
}

// GormUnitOfWork coordinates a database transaction and tracks aggregate
// changes for one business operation.
type GormUnitOfWork struct {
	db                *gorm.DB
	tx                *gorm.DB
	trackedAggregates []trackedAggregate
}

// Begin initiates a new database transaction. Subsequent repository
// operations execute within this transaction. Calling Begin again on the
// same instance is a no-op rather than a nested transaction.
func (uow *GormUnitOfWork) Begin(ctx context.Context) error {
	if uow.tx != nil {
		return nil
	}

	uow.tx = uow.db.WithContext(ctx).Begin()
	if uow.tx.Error != nil {
		return uow.tx.Error
	}

	return nil
}

// Commit finalizes all changes made within the current transaction.
// Returns gorm.ErrInvalidTransaction when no transaction is active.
func (uow *GormUnitOfWork) Commit(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Commit().Error
	uow.tx = nil
	return err
}

// Rollback discards all changes made within the current transaction.
// Returns gorm.ErrInvalidTransaction when no transaction is active, which is
// the expected outcome of the deferred rollback after a successful commit.
func (uow *GormUnitOfWork) Rollback(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Rollback().Error
	uow.tx = nil
	return err
}

// ParcelRepository provides parcel persistence operations bound to the
// current transaction if one is active, otherwise to the main connection.
// The returned repository tracks modified aggregates via TrackAggregate.
func (uow *GormUnitOfWork) ParcelRepository() ports.ParcelRepository {
	db := uow.db
	if uow.tx != nil {
		db = uow.tx
	}
	return parcelrepo.NewGormParcelRepository(db, uow)
}

// TrackAggregate registers a domain aggregate as modified within this unit
// of work. Typically called by repository implementations.
func (uow *GormUnitOfWork) TrackAggregate(id kernel.UUID, aggregate any) {
	uow.trackedAggregates = append(uow.trackedAggregates, trackedAggregate{
		ID:        id,
		Aggregate: aggregate,
	})
}
