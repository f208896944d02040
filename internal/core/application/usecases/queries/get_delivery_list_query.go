package queries

import (
	"errors"
	"time"

	"parcelroute/internal/core/domain/model/kernel"
	"parcelroute/internal/pkg/guard"
)

var ErrGetDeliveryListQueryIsNotConstructed = errors.New(
	"GetDeliveryListQuery must be created via NewGetDeliveryListQuery constructor",
)

// GetDeliveryListQuery retrieves a driver's delivery stops for today, one row
// per parcel. Unlike pickups, completed deliveries stay in the list so the
// driver sees the day's progress.
type GetDeliveryListQuery struct {
	driverID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetDeliveryListQuery creates a query for the driver's delivery list.
func NewGetDeliveryListQuery(driverID kernel.UUID) (GetDeliveryListQuery, error) {
	if err := driverID.Validate(); err != nil {
		return GetDeliveryListQuery{}, err
	}

	return GetDeliveryListQuery{
		driverID: driverID,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// DriverID returns the delivery driver whose stops are listed.
func (q GetDeliveryListQuery) DriverID() kernel.UUID {
	return q.driverID
}

// Validate ensures the query was created through the constructor.
func (q GetDeliveryListQuery) Validate() error {
	return q.guard.Validate(ErrGetDeliveryListQueryIsNotConstructed)
}

// GetDeliveryListQueryResponse is one delivery stop.
type GetDeliveryListQueryResponse struct {
	ParcelID           kernel.UUID
	TrackingCode       string
	RecipientAddress   string
	DetailAddress      string
	DeliveryTimeWindow string
	ProductName        string
	Status             string

	// IsNextTarget marks the stop the route oracle currently recommends;
	// it sorts first.
	IsNextTarget bool

	CompletedAt *time.Time
}
