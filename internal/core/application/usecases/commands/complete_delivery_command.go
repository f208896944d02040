package commands

import (
	"errors"

	"parcelroute/internal/core/domain/model/kernel"
	"parcelroute/internal/core/domain/model/parcel"
	"parcelroute/internal/pkg/guard"
)

var ErrCompleteDeliveryCommandIsNotConstructed = errors.New(
	"CompleteDeliveryCommand must be created via NewCompleteDeliveryCommand constructor",
)

// CompleteDeliveryCommand marks a single parcel's delivery as completed.
// Deliveries complete one parcel at a time, identified by tracking code and
// scoped to the acting driver.
type CompleteDeliveryCommand struct {
	trackingCode parcel.TrackingCode
	driverID     kernel.UUID

	guard guard.ConstructorGuard
}

// NewCompleteDeliveryCommand creates a command to complete one delivery for
// the acting driver.
func NewCompleteDeliveryCommand(trackingCode parcel.TrackingCode, driverID kernel.UUID) (CompleteDeliveryCommand, error) {
	if err := trackingCode.Validate(); err != nil {
		return CompleteDeliveryCommand{}, err
	}
	if err := driverID.Validate(); err != nil {
		return CompleteDeliveryCommand{}, err
	}

	return CompleteDeliveryCommand{
		trackingCode: trackingCode,
		driverID:     driverID,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

// TrackingCode returns the code identifying the parcel to complete.
func (c CompleteDeliveryCommand) TrackingCode() parcel.TrackingCode {
	return c.trackingCode
}

// DriverID returns the acting delivery driver.
func (c CompleteDeliveryCommand) DriverID() kernel.UUID {
	return c.driverID
}

// Validate ensures the command was created through the constructor.
func (c CompleteDeliveryCommand) Validate() error {
	return c.guard.Validate(ErrCompleteDeliveryCommandIsNotConstructed)
}
