package queries_test

import (
	"fmt"
	"time"

	"parcelroute/internal/core/domain/model/kernel"
	"parcelroute/internal/core/domain/model/parcel"
)

type mockAggregateTracker struct{}

func (m *mockAggregateTracker) TrackAggregate(kernel.UUID, any) {}

var trackingCodeSeq int

// buildParcel constructs a parcel with a unique tracking code, scheduled for
// the same day on both lifecycles.
func buildParcel(ownerID, pickupDriverID, deliveryDriverID kernel.UUID, day time.Time) (*parcel.Parcel, error) {
	trackingCodeSeq++
	code, err := parcel.NewTrackingCode(fmt.Sprintf("TRK%06d", trackingCodeSeq))
	if err != nil {
		return nil, err
	}

	return parcel.NewParcel(
		kernel.NewUUID(),
		code,
		ownerID,
		pickupDriverID,
		deliveryDriverID,
		parcel.Schedule{PickupDate: day, DeliveryDate: day},
		parcel.Details{
			RecipientAddress:   "12 Rose Lane",
			DetailAddress:      "apt 3",
			PickupTimeWindow:   "09:00-12:00",
			DeliveryTimeWindow: "14:00-18:00",
			ProductName:        "ceramics",
		},
	)
}
