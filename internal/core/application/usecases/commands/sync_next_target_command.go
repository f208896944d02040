package commands

import (
	"errors"

	"parcelroute/internal/core/domain/model/kernel"
	"parcelroute/internal/core/domain/model/parcel"
	"parcelroute/internal/pkg/guard"
)

var ErrSyncNextTargetCommandIsNotConstructed = errors.New(
	"SyncNextTargetCommand must be created via NewSyncNextTargetCommand constructor",
)

// SyncNextTargetCommand reconciles the oracle's "next stop" recommendation
// with the target flags on a driver's parcels for one lifecycle and the
// current day.
//
// The credential is only consulted for the delivery lifecycle, where the
// oracle lookup forwards the driver's inbound bearer credential verbatim.
type SyncNextTargetCommand struct {
	lifecycle  parcel.Lifecycle
	driverID   kernel.UUID
	credential string

	guard guard.ConstructorGuard
}

// NewSyncNextTargetCommand creates a command to refresh a driver's target
// flags. The lifecycle and driver are validated; the credential may be empty
// for the pickup lifecycle.
func NewSyncNextTargetCommand(
	lifecycle parcel.Lifecycle,
	driverID kernel.UUID,
	credential string,
) (SyncNextTargetCommand, error) {
	if err := lifecycle.Validate(); err != nil {
		return SyncNextTargetCommand{}, err
	}
	if err := driverID.Validate(); err != nil {
		return SyncNextTargetCommand{}, err
	}

	return SyncNextTargetCommand{
		lifecycle:  lifecycle,
		driverID:   driverID,
		credential: credential,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Lifecycle returns the status track being reconciled.
func (c SyncNextTargetCommand) Lifecycle() parcel.Lifecycle {
	return c.lifecycle
}

// DriverID returns the driver whose flags are reconciled.
func (c SyncNextTargetCommand) DriverID() kernel.UUID {
	return c.driverID
}

// Credential returns the forwarded bearer credential, if any.
func (c SyncNextTargetCommand) Credential() string {
	return c.credential
}

// Validate ensures the command was created through the constructor.
func (c SyncNextTargetCommand) Validate() error {
	return c.guard.Validate(ErrSyncNextTargetCommandIsNotConstructed)
}
