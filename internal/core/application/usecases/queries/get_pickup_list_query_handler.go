package queries

import (
	"context"

	"parcelroute/internal/core/domain/model/kernel"
	"parcelroute/internal/core/domain/model/parcel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetPickupListQueryHandler reads the driver's grouped pickup list from the
// database. Grouping happens in SQL: one row per owner with the pending
// parcel count and a BOOL_OR over the target flags, so the recommended stop
// sorts first regardless of which parcel of the group carries the flag.
type GetPickupListQueryHandler struct {
	db *gorm.DB
}

// NewGetPickupListQueryHandler creates a handler for grouped pickup list queries.
func NewGetPickupListQueryHandler(db *gorm.DB) GetPickupListQueryHandler {
	return GetPickupListQueryHandler{db: db}
}

// Handle executes the query. Returns one row per shop owner with pending
// pickups assigned to the driver and scheduled today, recommended stop first.
func (h GetPickupListQueryHandler) Handle(
	ctx context.Context,
	query GetPickupListQuery,
) ([]GetPickupListQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	stops := make([]GetPickupListQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			owner_id,
			COUNT(id),
			MIN(recipient_address),
			MIN(detail_address),
			MIN(pickup_time_window),
			MIN(product_name),
			BOOL_OR(is_next_pickup_target)
		FROM parcels
		WHERE pickup_driver_id = ?
			AND pickup_scheduled_date = CURRENT_DATE
			AND pickup_status = ?
			AND is_deleted = false
		GROUP BY owner_id
		ORDER BY BOOL_OR(is_next_pickup_target) DESC, owner_id
	`, query.DriverID().Bytes(), int(parcel.PickupPending)).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var stop GetPickupListQueryResponse
		var ownerID uuid.UUID

		err = rows.Scan(
			&ownerID,
			&stop.ParcelCount,
			&stop.Address,
			&stop.DetailAddress,
			&stop.PickupTimeWindow,
			&stop.ProductName,
			&stop.IsNextTarget,
		)
		if err != nil {
			return nil, err
		}

		stop.OwnerID, err = kernel.UUIDFromBytes(ownerID[:])
		if err != nil {
			return nil, err
		}

		stops = append(stops, stop)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return stops, nil
}
