package commands

import (
	"errors"

	"parcelroute/internal/core/domain/model/kernel"
	"parcelroute/internal/pkg/guard"
)

var ErrCompletePickupGroupCommandIsNotConstructed = errors.New(
	"CompletePickupGroupCommand must be created via NewCompletePickupGroupCommand constructor",
)

// CompletePickupGroupCommand marks every pending pickup of one shop owner,
// assigned to the acting driver and scheduled today, as completed. Pickups
// are completed per owner because the driver collects all of an owner's
// parcels in a single stop.
type CompletePickupGroupCommand struct {
	ownerID  kernel.UUID
	driverID kernel.UUID

	guard guard.ConstructorGuard
}

// NewCompletePickupGroupCommand creates a command to complete an owner's
// pickup group for the acting driver.
func NewCompletePickupGroupCommand(ownerID, driverID kernel.UUID) (CompletePickupGroupCommand, error) {
	if err := ownerID.Validate(); err != nil {
		return CompletePickupGroupCommand{}, err
	}
	if err := driverID.Validate(); err != nil {
		return CompletePickupGroupCommand{}, err
	}

	return CompletePickupGroupCommand{
		ownerID:  ownerID,
		driverID: driverID,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// OwnerID returns the shop owner whose pickup group is completed.
func (c CompletePickupGroupCommand) OwnerID() kernel.UUID {
	return c.ownerID
}

// DriverID returns the acting pickup driver.
func (c CompletePickupGroupCommand) DriverID() kernel.UUID {
	return c.driverID
}

// Validate ensures the command was created through the constructor.
func (c CompletePickupGroupCommand) Validate() error {
	return c.guard.Validate(ErrCompletePickupGroupCommandIsNotConstructed)
}
