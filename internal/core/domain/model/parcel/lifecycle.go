package parcel

import (
	"fmt"

	"parcelroute/internal/pkg/errs"
)

// Lifecycle selects one of the two independent status tracks on a parcel.
// The target synchronizer, the oracle client, and the repository flag
// operations are all parameterized by lifecycle.
type Lifecycle int

const (
	// LifecycleUnknown represents an invalid or undefined lifecycle.
	LifecycleUnknown Lifecycle = iota

	// LifecyclePickup is the shop-owner collection track.
	LifecyclePickup

	// LifecycleDelivery is the recipient hand-off track.
	LifecycleDelivery
)

// Validate checks if the Lifecycle value is valid.
func (l Lifecycle) Validate() error {
	if l != LifecyclePickup && l != LifecycleDelivery {
		return errs.NewValueIsInvalidErrorWithCause("lifecycle is invalid",
			fmt.Errorf("%d is not a valid lifecycle", l))
	}
	return nil
}

// String returns the lifecycle name used in oracle paths and logs.
func (l Lifecycle) String() string {
	switch l {
	case LifecyclePickup:
		return "pickup"
	case LifecycleDelivery:
		return "delivery"
	default:
		return "unknown"
	}
}
