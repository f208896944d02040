package queries

import (
	"context"

	"parcelroute/internal/core/domain/model/kernel"
	"parcelroute/internal/core/domain/model/parcel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetDeliveryListQueryHandler reads the driver's delivery list from the
// database: every non-deleted parcel scheduled for delivery today, pending
// and completed alike, recommended stop first.
type GetDeliveryListQueryHandler struct {
	db *gorm.DB
}

// NewGetDeliveryListQueryHandler creates a handler for delivery list queries.
func NewGetDeliveryListQueryHandler(db *gorm.DB) GetDeliveryListQueryHandler {
	return GetDeliveryListQueryHandler{db: db}
}

// Handle executes the query.
func (h GetDeliveryListQueryHandler) Handle(
	ctx context.Context,
	query GetDeliveryListQuery,
) ([]GetDeliveryListQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	stops := make([]GetDeliveryListQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			tracking_code,
			recipient_address,
			detail_address,
			delivery_time_window,
			product_name,
			delivery_status,
			is_next_delivery_target,
			delivery_completed_at
		FROM parcels
		WHERE delivery_driver_id = ?
			AND delivery_scheduled_date = CURRENT_DATE
			AND is_deleted = false
		ORDER BY is_next_delivery_target DESC, tracking_code
	`, query.DriverID().Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var stop GetDeliveryListQueryResponse
		var id uuid.UUID
		var status int

		err = rows.Scan(
			&id,
			&stop.TrackingCode,
			&stop.RecipientAddress,
			&stop.DetailAddress,
			&stop.DeliveryTimeWindow,
			&stop.ProductName,
			&status,
			&stop.IsNextTarget,
			&stop.CompletedAt,
		)
		if err != nil {
			return nil, err
		}

		stop.ParcelID, err = kernel.UUIDFromBytes(id[:])
		if err != nil {
			return nil, err
		}
		stop.Status = parcel.DeliveryStatus(status).String()

		stops = append(stops, stop)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return stops, nil
}
