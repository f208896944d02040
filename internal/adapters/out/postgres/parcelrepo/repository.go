package parcelrepo

import (
	"context"
	"errors"
	"time"

	"parcelroute/internal/core/domain/model/kernel"
	"parcelroute/internal/core/domain/model/parcel"
	"parcelroute/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormParcelRepository implements ParcelRepository using GORM.
type GormParcelRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormParcelRepository creates a new GORM parcel repository.
func NewGormParcelRepository(db *gorm.DB, tracker aggregateTracker) *GormParcelRepository {
	return &GormParcelRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new parcel to the database.
func (r *GormParcelRepository) Add(ctx context.Context, aggregate *parcel.Parcel) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// GetByTrackingCode retrieves the non-deleted parcel matching the tracking
// code and delivery driver. Scoping by driver means another driver's parcel
// is indistinguishable from a missing one.
func (r *GormParcelRepository) GetByTrackingCode(
	ctx context.Context,
	code parcel.TrackingCode,
	driverID kernel.UUID,
) (*parcel.Parcel, error) {
	if err := code.Validate(); err != nil {
		return nil, err
	}
	if err := driverID.Validate(); err != nil {
		return nil, err
	}

	var dto ParcelDTO
	err := r.db.WithContext(ctx).
		First(&dto, "tracking_code = ? AND delivery_driver_id = ? AND is_deleted = false",
			code.String(), driverID.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("trackingCode", code.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetOwnerPickupGroup retrieves all non-deleted parcels of the shop owner
// assigned to the pickup driver and scheduled for pickup today.
func (r *GormParcelRepository) GetOwnerPickupGroup(
	ctx context.Context,
	ownerID, driverID kernel.UUID,
) ([]*parcel.Parcel, error) {
	if err := ownerID.Validate(); err != nil {
		return nil, err
	}
	if err := driverID.Validate(); err != nil {
		return nil, err
	}

	var dtos []ParcelDTO
	err := r.db.WithContext(ctx).
		Find(&dtos,
			"owner_id = ? AND pickup_driver_id = ? AND pickup_scheduled_date = CURRENT_DATE AND is_deleted = false",
			ownerID.Bytes(), driverID.Bytes()).Error
	if err != nil {
		return nil, err
	}

	parcels := make([]*parcel.Parcel, 0, len(dtos))
	for _, dto := range dtos {
		p, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		parcels = append(parcels, p)
	}

	return parcels, nil
}

// ClearNextTargets resets the lifecycle's target flag on every non-deleted
// parcel of the driver scheduled today. Runs as one statement so it is safe
// to re-run on retry.
func (r *GormParcelRepository) ClearNextTargets(
	ctx context.Context,
	lifecycle parcel.Lifecycle,
	driverID kernel.UUID,
) error {
	if err := lifecycle.Validate(); err != nil {
		return err
	}
	if err := driverID.Validate(); err != nil {
		return err
	}

	cols := lifecycleColumns(lifecycle)
	return r.db.WithContext(ctx).
		Model(&ParcelDTO{}).
		Where(cols.driver+" = ? AND "+cols.scheduledDate+" = CURRENT_DATE AND is_deleted = false",
			driverID.Bytes()).
		Update(cols.nextTarget, false).Error
}

// SetNextTarget flags the given parcel as the driver's next stop for the
// lifecycle. The driver scope makes an oracle answer naming a foreign parcel
// a no-op (zero rows affected).
func (r *GormParcelRepository) SetNextTarget(
	ctx context.Context,
	lifecycle parcel.Lifecycle,
	parcelID, driverID kernel.UUID,
) (int64, error) {
	if err := lifecycle.Validate(); err != nil {
		return 0, err
	}
	if err := parcelID.Validate(); err != nil {
		return 0, err
	}
	if err := driverID.Validate(); err != nil {
		return 0, err
	}

	cols := lifecycleColumns(lifecycle)
	result := r.db.WithContext(ctx).
		Model(&ParcelDTO{}).
		Where("id = ? AND "+cols.driver+" = ? AND "+cols.status+" = ? AND is_deleted = false",
			parcelID.Bytes(), driverID.Bytes(), cols.pendingStatus).
		Update(cols.nextTarget, true)

	return result.RowsAffected, result.Error
}

// MarkPickupGroupCompleted transitions every still-pending pickup of the
// (owner, driver, today, non-deleted) group in one conditional statement.
// A concurrent second completer matches zero pending rows.
func (r *GormParcelRepository) MarkPickupGroupCompleted(
	ctx context.Context,
	ownerID, driverID kernel.UUID,
	completedAt time.Time,
) (int64, error) {
	if err := ownerID.Validate(); err != nil {
		return 0, err
	}
	if err := driverID.Validate(); err != nil {
		return 0, err
	}

	result := r.db.WithContext(ctx).
		Model(&ParcelDTO{}).
		Where("owner_id = ? AND pickup_driver_id = ? AND pickup_scheduled_date = CURRENT_DATE"+
			" AND is_deleted = false AND pickup_status = ?",
			ownerID.Bytes(), driverID.Bytes(), int(parcel.PickupPending)).
		Updates(map[string]any{
			"pickup_status":         int(parcel.PickupCompleted),
			"pickup_completed_at":   completedAt,
			"is_next_pickup_target": false,
		})

	return result.RowsAffected, result.Error
}

// MarkDeliveryCompleted transitions a still-pending delivery matching
// (trackingCode, driver, non-deleted) in one conditional statement.
func (r *GormParcelRepository) MarkDeliveryCompleted(
	ctx context.Context,
	code parcel.TrackingCode,
	driverID kernel.UUID,
	completedAt time.Time,
) (int64, error) {
	if err := code.Validate(); err != nil {
		return 0, err
	}
	if err := driverID.Validate(); err != nil {
		return 0, err
	}

	result := r.db.WithContext(ctx).
		Model(&ParcelDTO{}).
		Where("tracking_code = ? AND delivery_driver_id = ? AND is_deleted = false AND delivery_status = ?",
			code.String(), driverID.Bytes(), int(parcel.DeliveryPending)).
		Updates(map[string]any{
			"delivery_status":         int(parcel.DeliveryCompleted),
			"delivery_completed_at":   completedAt,
			"is_next_delivery_target": false,
		})

	return result.RowsAffected, result.Error
}

// ListActiveDriverIDs returns the distinct drivers with non-deleted,
// still-pending parcels scheduled today for the lifecycle.
func (r *GormParcelRepository) ListActiveDriverIDs(
	ctx context.Context,
	lifecycle parcel.Lifecycle,
) ([]kernel.UUID, error) {
	if err := lifecycle.Validate(); err != nil {
		return nil, err
	}

	cols := lifecycleColumns(lifecycle)
	var raw []uuid.UUID
	err := r.db.WithContext(ctx).
		Model(&ParcelDTO{}).
		Distinct(cols.driver).
		Where(cols.scheduledDate+" = CURRENT_DATE AND is_deleted = false AND "+cols.status+" = ?",
			cols.pendingStatus).
		Pluck(cols.driver, &raw).Error
	if err != nil {
		return nil, err
	}

	drivers := make([]kernel.UUID, 0, len(raw))
	for _, id := range raw {
		driverID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		drivers = append(drivers, driverID)
	}

	return drivers, nil
}

// columns holds the per-lifecycle column names so flag and list operations
// stay parameterized instead of duplicated per lifecycle.
type columns struct {
	driver        string
	status        string
	scheduledDate string
	nextTarget    string
	pendingStatus int
}

func lifecycleColumns(lifecycle parcel.Lifecycle) columns {
	if lifecycle == parcel.LifecycleDelivery {
		return columns{
			driver:        "delivery_driver_id",
			status:        "delivery_status",
			scheduledDate: "delivery_scheduled_date",
			nextTarget:    "is_next_delivery_target",
			pendingStatus: int(parcel.DeliveryPending),
		}
	}
	return columns{
		driver:        "pickup_driver_id",
		status:        "pickup_status",
		scheduledDate: "pickup_scheduled_date",
		nextTarget:    "is_next_pickup_target",
		pendingStatus: int(parcel.PickupPending),
	}
}
