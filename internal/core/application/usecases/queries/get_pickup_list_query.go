// Package queries contains read-only operations of the CQRS architecture.
// Query handlers bypass the aggregate and repository layers and read the
// parcels table directly, shaping rows into response structs for the HTTP
// adapter.
package queries

import (
	"errors"

	"parcelroute/internal/core/domain/model/kernel"
	"parcelroute/internal/pkg/guard"
)

var ErrGetPickupListQueryIsNotConstructed = errors.New(
	"GetPickupListQuery must be created via NewGetPickupListQuery constructor",
)

// GetPickupListQuery retrieves a driver's pending pickup stops for today,
// grouped by shop owner. A driver picks up all of an owner's parcels in one
// stop, so the list has one row per owner, not per parcel.
type GetPickupListQuery struct {
	driverID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetPickupListQuery creates a query for the driver's grouped pickup list.
func NewGetPickupListQuery(driverID kernel.UUID) (GetPickupListQuery, error) {
	if err := driverID.Validate(); err != nil {
		return GetPickupListQuery{}, err
	}

	return GetPickupListQuery{
		driverID: driverID,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// DriverID returns the pickup driver whose stops are listed.
func (q GetPickupListQuery) DriverID() kernel.UUID {
	return q.driverID
}

// Validate ensures the query was created through the constructor.
func (q GetPickupListQuery) Validate() error {
	return q.guard.Validate(ErrGetPickupListQueryIsNotConstructed)
}

// GetPickupListQueryResponse is one pickup stop: a shop owner with the number
// of parcels still to collect there. Payload fields are representative:
// every parcel of an owner shares the same pickup location, so any row of
// the group supplies them.
type GetPickupListQueryResponse struct {
	OwnerID          kernel.UUID
	ParcelCount      int64
	Address          string
	DetailAddress    string
	PickupTimeWindow string
	ProductName      string

	// IsNextTarget marks the stop the route oracle currently recommends.
	// At most one group carries it, and it sorts first.
	IsNextTarget bool
}
