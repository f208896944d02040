package parcel

import (
	"strings"

	"parcelroute/internal/pkg/errs"
)

// ErrTrackingCodeIsNotConstructed indicates that a TrackingCode was not
// created through NewTrackingCode.
var ErrTrackingCodeIsNotConstructed = errs.NewValueIsRequiredError(
	"TrackingCode must be created via NewTrackingCode",
)

// TrackingCode is the unique human-readable identifier printed on a parcel.
// Drivers complete deliveries by tracking code, not by internal ID.
//
// The zero value is invalid; construct through NewTrackingCode.
type TrackingCode struct {
	value string
}

// NewTrackingCode creates a TrackingCode from its string form.
// Surrounding whitespace is trimmed; an empty code is rejected.
func NewTrackingCode(value string) (TrackingCode, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return TrackingCode{}, errs.NewValueIsRequiredError("trackingCode")
	}
	return TrackingCode{value: value}, nil
}

// String returns the tracking code as printed on the parcel.
func (c TrackingCode) String() string {
	return c.value
}

// IsEqual compares two tracking codes for equality.
func (c TrackingCode) IsEqual(other TrackingCode) bool {
	return c.value == other.value
}

// Validate checks the tracking code was properly constructed.
func (c TrackingCode) Validate() error {
	if c.value == "" {
		return ErrTrackingCodeIsNotConstructed
	}
	return nil
}
