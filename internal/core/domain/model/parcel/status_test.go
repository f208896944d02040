package parcel_test

import (
	"testing"

	"parcelroute/internal/core/domain/model/parcel"
	"parcelroute/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPickupStatus_Validate(t *testing.T) {
	tests := []struct {
		name    string
		status  parcel.PickupStatus
		wantErr bool
	}{
		{"pending is valid", parcel.PickupPending, false},
		{"completed is valid", parcel.PickupCompleted, false},
		{"unknown is invalid", parcel.PickupUnknown, true},
		{"out of range is invalid", parcel.PickupStatus(42), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.status.Validate()
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestPickupStatus_String(t *testing.T) {
	assert.Equal(t, "PICKUP_PENDING", parcel.PickupPending.String())
	assert.Equal(t, "PICKUP_COMPLETED", parcel.PickupCompleted.String())
	assert.Equal(t, "PICKUP_UNKNOWN", parcel.PickupUnknown.String())
}

func TestPickupStatus_Complete(t *testing.T) {
	t.Run("pending completes", func(t *testing.T) {
		status, err := parcel.PickupPending.Complete()

		require.NoError(t, err)
		assert.Equal(t, parcel.PickupCompleted, status)
	})

	t.Run("completed is terminal", func(t *testing.T) {
		_, err := parcel.PickupCompleted.Complete()

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("unknown cannot complete", func(t *testing.T) {
		_, err := parcel.PickupUnknown.Complete()

		require.Error(t, err)
	})
}

func TestDeliveryStatus_Validate(t *testing.T) {
	tests := []struct {
		name    string
		status  parcel.DeliveryStatus
		wantErr bool
	}{
		{"pending is valid", parcel.DeliveryPending, false},
		{"completed is valid", parcel.DeliveryCompleted, false},
		{"unknown is invalid", parcel.DeliveryUnknown, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.status.Validate()
			if tt.wantErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestDeliveryStatus_String(t *testing.T) {
	assert.Equal(t, "DELIVERY_PENDING", parcel.DeliveryPending.String())
	assert.Equal(t, "DELIVERY_COMPLETED", parcel.DeliveryCompleted.String())
	assert.Equal(t, "DELIVERY_UNKNOWN", parcel.DeliveryUnknown.String())
}

func TestDeliveryStatus_Complete(t *testing.T) {
	t.Run("pending completes", func(t *testing.T) {
		status, err := parcel.DeliveryPending.Complete()

		require.NoError(t, err)
		assert.Equal(t, parcel.DeliveryCompleted, status)
	})

	t.Run("completed is terminal", func(t *testing.T) {
		_, err := parcel.DeliveryCompleted.Complete()

		require.Error(t, err)
	})
}

func TestLifecycle(t *testing.T) {
	t.Run("pickup and delivery are valid", func(t *testing.T) {
		require.NoError(t, parcel.LifecyclePickup.Validate())
		require.NoError(t, parcel.LifecycleDelivery.Validate())
	})

	t.Run("unknown is invalid", func(t *testing.T) {
		require.Error(t, parcel.LifecycleUnknown.Validate())
	})

	t.Run("string names", func(t *testing.T) {
		assert.Equal(t, "pickup", parcel.LifecyclePickup.String())
		assert.Equal(t, "delivery", parcel.LifecycleDelivery.String())
		assert.Equal(t, "unknown", parcel.LifecycleUnknown.String())
	})
}
