package parcel

import (
	"fmt"

	"parcelroute/internal/pkg/errs"
)

// PickupStatus represents the pickup-side lifecycle state of a parcel.
//
// State transitions:
//
//	PickupPending ──> PickupCompleted
//
// PickupCompleted is a final state; the reverse transition never occurs.
type PickupStatus int

const (
	// PickupUnknown represents an invalid or undefined pickup status.
	// This value (0) helps catch uninitialized PickupStatus values.
	PickupUnknown PickupStatus = iota

	// PickupPending is the initial status: the parcel is waiting to be
	// collected from its shop owner.
	PickupPending

	// PickupCompleted indicates the parcel has been collected.
	// This is a final state with no further transitions allowed.
	PickupCompleted
)

// Validate checks if the PickupStatus value is valid.
func (s PickupStatus) Validate() error {
	if s != PickupPending && s != PickupCompleted {
		return errs.NewValueIsInvalidErrorWithCause("pickup status is invalid",
			fmt.Errorf("%d is not a valid pickup status", s))
	}
	return nil
}

// String returns the wire representation of the status.
// Implements fmt.Stringer and is safe to call on any value.
func (s PickupStatus) String() string {
	switch s {
	case PickupPending:
		return "PICKUP_PENDING"
	case PickupCompleted:
		return "PICKUP_COMPLETED"
	default:
		return "PICKUP_UNKNOWN"
	}
}

// IsPending reports whether the pickup is still waiting to be collected.
func (s PickupStatus) IsPending() bool {
	return s == PickupPending
}

// Complete transitions the status to PickupCompleted.
//
// Valid transitions:
//   - PickupPending -> PickupCompleted
//
// Returns (0, error) for any other starting state, including an already
// completed pickup.
func (s PickupStatus) Complete() (PickupStatus, error) {
	if s != PickupPending {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"pickup status is invalid",
			fmt.Errorf("%s is not a valid status to complete", s.String()),
		)
	}

	return PickupCompleted, nil
}

// DeliveryStatus represents the delivery-side lifecycle state of a parcel.
//
// State transitions:
//
//	DeliveryPending ──> DeliveryCompleted
//
// DeliveryCompleted is a final state; the reverse transition never occurs.
type DeliveryStatus int

const (
	// DeliveryUnknown represents an invalid or undefined delivery status.
	DeliveryUnknown DeliveryStatus = iota

	// DeliveryPending is the initial status: the parcel is waiting to be
	// handed to its recipient.
	DeliveryPending

	// DeliveryCompleted indicates the parcel has been delivered.
	// This is a final state with no further transitions allowed.
	DeliveryCompleted
)

// Validate checks if the DeliveryStatus value is valid.
func (s DeliveryStatus) Validate() error {
	if s != DeliveryPending && s != DeliveryCompleted {
		return errs.NewValueIsInvalidErrorWithCause("delivery status is invalid",
			fmt.Errorf("%d is not a valid delivery status", s))
	}
	return nil
}

// String returns the wire representation of the status.
func (s DeliveryStatus) String() string {
	switch s {
	case DeliveryPending:
		return "DELIVERY_PENDING"
	case DeliveryCompleted:
		return "DELIVERY_COMPLETED"
	default:
		return "DELIVERY_UNKNOWN"
	}
}

// IsPending reports whether the delivery is still outstanding.
func (s DeliveryStatus) IsPending() bool {
	return s == DeliveryPending
}

// Complete transitions the status to DeliveryCompleted.
//
// Valid transitions:
//   - DeliveryPending -> DeliveryCompleted
//
// Returns (0, error) for any other starting state, including an already
// completed delivery.
func (s DeliveryStatus) Complete() (DeliveryStatus, error) {
	if s != DeliveryPending {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"delivery status is invalid",
			fmt.Errorf("%s is not a valid status to complete", s.String()),
		)
	}

	return DeliveryCompleted, nil
}
