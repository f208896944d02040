package parcel

import (
	"errors"
	"time"

	"parcelroute/internal/core/domain/model/kernel"
	"parcelroute/internal/pkg/errs"
)

// ErrParcelIsNotConstructed is returned when a Parcel instance was not
// created through NewParcel or RestoreParcel.
var ErrParcelIsNotConstructed = errors.New("Parcel must be created via NewParcel or RestoreParcel constructor")

// Details is the read-only address payload carried through to API responses.
// The service never interprets these fields; they originate in the
// registration workflow and are echoed back to drivers.
type Details struct {
	RecipientAddress   string
	DetailAddress      string
	PickupTimeWindow   string
	DeliveryTimeWindow string
	ProductName        string
}

// Schedule holds the date-only scheduling of the two lifecycles.
// Comparison against "today" always happens in the server's local calendar
// day; the pickup and delivery dates may differ.
type Schedule struct {
	PickupDate   time.Time
	DeliveryDate time.Time
}

// Parcel is the aggregate root of this service. It carries two independent
// lifecycle tracks (pickup and delivery), the routing flags maintained by the
// target synchronizer, and the address payload.
//
// Parcel follows these invariants:
//   - Must have a valid unique identifier and tracking code
//   - Must reference its shop owner and both assigned drivers
//   - Status transitions only move forward (pending -> completed)
//   - Completion timestamps are set exactly once, on the completing transition
//   - Completing a lifecycle clears that lifecycle's target flag
//   - Can only be created through NewParcel or RestoreParcel
type Parcel struct {
	id           kernel.UUID
	trackingCode TrackingCode

	ownerID          kernel.UUID
	pickupDriverID   kernel.UUID
	deliveryDriverID kernel.UUID

	pickupStatus   PickupStatus
	deliveryStatus DeliveryStatus

	schedule Schedule
	details  Details

	isNextPickupTarget   bool
	isNextDeliveryTarget bool

	pickupCompletedAt   *time.Time
	deliveryCompletedAt *time.Time

	isDeleted bool

	isConstructed bool
}

// NewParcel creates a Parcel fresh out of registration: both lifecycles
// pending, no target flags, no completion timestamps.
//
// All identifiers are validated; the tracking code must be constructed.
func NewParcel(
	id kernel.UUID,
	trackingCode TrackingCode,
	ownerID kernel.UUID,
	pickupDriverID kernel.UUID,
	deliveryDriverID kernel.UUID,
	schedule Schedule,
	details Details,
) (*Parcel, error) {
	p := &Parcel{
		pickupStatus:   PickupPending,
		deliveryStatus: DeliveryPending,
		schedule:       schedule,
		details:        details,
		isConstructed:  true,
	}

	if err := errors.Join(
		p.setID(id),
		p.setTrackingCode(trackingCode),
		p.setOwnerID(ownerID),
		p.setDrivers(pickupDriverID, deliveryDriverID),
	); err != nil {
		return nil, err
	}

	return p, nil
}

// RestoreParcel reconstructs a Parcel from persistence, including lifecycle
// states, flags, completion timestamps, and the soft-delete marker.
// Statuses are validated so corrupt rows never become live aggregates.
func RestoreParcel(
	id kernel.UUID,
	trackingCode TrackingCode,
	ownerID kernel.UUID,
	pickupDriverID kernel.UUID,
	deliveryDriverID kernel.UUID,
	pickupStatus PickupStatus,
	deliveryStatus DeliveryStatus,
	schedule Schedule,
	details Details,
	isNextPickupTarget bool,
	isNextDeliveryTarget bool,
	pickupCompletedAt *time.Time,
	deliveryCompletedAt *time.Time,
	isDeleted bool,
) (*Parcel, error) {
	p := &Parcel{
		schedule:             schedule,
		details:              details,
		isNextPickupTarget:   isNextPickupTarget,
		isNextDeliveryTarget: isNextDeliveryTarget,
		pickupCompletedAt:    pickupCompletedAt,
		deliveryCompletedAt:  deliveryCompletedAt,
		isDeleted:            isDeleted,
		isConstructed:        true,
	}

	if err := errors.Join(
		p.setID(id),
		p.setTrackingCode(trackingCode),
		p.setOwnerID(ownerID),
		p.setDrivers(pickupDriverID, deliveryDriverID),
		p.setStatuses(pickupStatus, deliveryStatus),
	); err != nil {
		return nil, err
	}

	return p, nil
}

// Validate ensures the Parcel was properly constructed.
func (p *Parcel) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrParcelIsNotConstructed
	}
	return nil
}

// IsEqual compares two parcels by their unique identifiers.
func (p *Parcel) IsEqual(other *Parcel) bool {
	return other != nil && p.id.IsEqual(other.id)
}

// ID returns the parcel's unique identifier.
func (p *Parcel) ID() kernel.UUID {
	return p.id
}

// TrackingCode returns the human-readable tracking code.
func (p *Parcel) TrackingCode() TrackingCode {
	return p.trackingCode
}

// OwnerID returns the shop owner who originated the parcel.
func (p *Parcel) OwnerID() kernel.UUID {
	return p.ownerID
}

// PickupDriverID returns the driver assigned to collect the parcel.
func (p *Parcel) PickupDriverID() kernel.UUID {
	return p.pickupDriverID
}

// DeliveryDriverID returns the driver assigned to deliver the parcel.
// The pickup and delivery drivers may differ.
func (p *Parcel) DeliveryDriverID() kernel.UUID {
	return p.deliveryDriverID
}

// PickupStatus returns the pickup-side lifecycle state.
func (p *Parcel) PickupStatus() PickupStatus {
	return p.pickupStatus
}

// DeliveryStatus returns the delivery-side lifecycle state.
func (p *Parcel) DeliveryStatus() DeliveryStatus {
	return p.deliveryStatus
}

// Schedule returns the date-only scheduling of both lifecycles.
func (p *Parcel) Schedule() Schedule {
	return p.schedule
}

// Details returns the read-only address payload.
func (p *Parcel) Details() Details {
	return p.details
}

// IsNextPickupTarget reports whether the oracle currently recommends this
// parcel as the driver's next pickup stop.
func (p *Parcel) IsNextPickupTarget() bool {
	return p.isNextPickupTarget
}

// IsNextDeliveryTarget reports whether the oracle currently recommends this
// parcel as the driver's next delivery stop.
func (p *Parcel) IsNextDeliveryTarget() bool {
	return p.isNextDeliveryTarget
}

// PickupCompletedAt returns when the pickup completed, or nil while pending.
func (p *Parcel) PickupCompletedAt() *time.Time {
	return p.pickupCompletedAt
}

// DeliveryCompletedAt returns when the delivery completed, or nil while pending.
func (p *Parcel) DeliveryCompletedAt() *time.Time {
	return p.deliveryCompletedAt
}

// IsDeleted reports the soft-delete marker. Deleted parcels are invisible to
// every list and complete operation.
func (p *Parcel) IsDeleted() bool {
	return p.isDeleted
}

// CompletePickup transitions the pickup lifecycle to completed.
//
// Business rules enforced:
//   - The pickup must be pending; completing twice is an error
//   - The completion timestamp is set exactly once, to completedAt
//   - The next-pickup-target flag is cleared (a completed parcel is never "next")
func (p *Parcel) CompletePickup(completedAt time.Time) error {
	newStatus, err := p.pickupStatus.Complete()
	if err != nil {
		return err
	}

	p.pickupStatus = newStatus
	p.pickupCompletedAt = &completedAt
	p.isNextPickupTarget = false
	return nil
}

// CompleteDelivery transitions the delivery lifecycle to completed.
//
// Business rules enforced:
//   - The delivery must be pending; completing twice is an error
//   - The completion timestamp is set exactly once, to completedAt
//   - The next-delivery-target flag is cleared
func (p *Parcel) CompleteDelivery(completedAt time.Time) error {
	newStatus, err := p.deliveryStatus.Complete()
	if err != nil {
		return err
	}

	p.deliveryStatus = newStatus
	p.deliveryCompletedAt = &completedAt
	p.isNextDeliveryTarget = false
	return nil
}

// MarkNextTarget sets the lifecycle's target flag. Only pending parcels can
// be recommended as next; flagging a completed lifecycle is an error.
func (p *Parcel) MarkNextTarget(lifecycle Lifecycle) error {
	if err := lifecycle.Validate(); err != nil {
		return err
	}

	switch lifecycle {
	case LifecyclePickup:
		if !p.pickupStatus.IsPending() {
			return errs.NewValueIsInvalidError("cannot flag a completed pickup as next target")
		}
		p.isNextPickupTarget = true
	case LifecycleDelivery:
		if !p.deliveryStatus.IsPending() {
			return errs.NewValueIsInvalidError("cannot flag a completed delivery as next target")
		}
		p.isNextDeliveryTarget = true
	}

	return nil
}

// ClearNextTarget unconditionally clears the lifecycle's target flag.
// Clearing is idempotent and valid in any state.
func (p *Parcel) ClearNextTarget(lifecycle Lifecycle) {
	switch lifecycle {
	case LifecyclePickup:
		p.isNextPickupTarget = false
	case LifecycleDelivery:
		p.isNextDeliveryTarget = false
	}
}

func (p *Parcel) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.id = id
	return nil
}

func (p *Parcel) setTrackingCode(code TrackingCode) error {
	if err := code.Validate(); err != nil {
		return err
	}
	p.trackingCode = code
	return nil
}

func (p *Parcel) setOwnerID(ownerID kernel.UUID) error {
	if err := ownerID.Validate(); err != nil {
		return err
	}
	p.ownerID = ownerID
	return nil
}

func (p *Parcel) setDrivers(pickupDriverID, deliveryDriverID kernel.UUID) error {
	if err := pickupDriverID.Validate(); err != nil {
		return err
	}
	if err := deliveryDriverID.Validate(); err != nil {
		return err
	}
	p.pickupDriverID = pickupDriverID
	p.deliveryDriverID = deliveryDriverID
	return nil
}

func (p *Parcel) setStatuses(pickupStatus PickupStatus, deliveryStatus DeliveryStatus) error {
	if err := pickupStatus.Validate(); err != nil {
		return err
	}
	if err := deliveryStatus.Validate(); err != nil {
		return err
	}
	p.pickupStatus = pickupStatus
	p.deliveryStatus = deliveryStatus
	return nil
}
