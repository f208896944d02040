package kernel_test

import (
	"testing"

	"parcelroute/internal/core/domain/model/kernel"
	"parcelroute/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUUID(t *testing.T) {
	id := kernel.NewUUID()

	require.NoError(t, id.Validate())
	assert.Len(t, id.String(), 36)
}

func TestUUIDFromString(t *testing.T) {
	t.Run("valid UUID string", func(t *testing.T) {
		id, err := kernel.UUIDFromString("550e8400-e29b-41d4-a716-446655440000")

		require.NoError(t, err)
		assert.Equal(t, "550e8400-e29b-41d4-a716-446655440000", id.String())
	})

	t.Run("invalid UUID string", func(t *testing.T) {
		_, err := kernel.UUIDFromString("not-a-uuid")

		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid UUID format")
	})
}

func TestUUIDFromBytes(t *testing.T) {
	t.Run("roundtrip through bytes", func(t *testing.T) {
		original := kernel.NewUUID()
		raw := original.Bytes()

		restored, err := kernel.UUIDFromBytes(raw[:])

		require.NoError(t, err)
		assert.True(t, original.IsEqual(restored))
	})

	t.Run("wrong length", func(t *testing.T) {
		_, err := kernel.UUIDFromBytes([]byte{0x01, 0x02})

		require.Error(t, err)
	})

	t.Run("nil UUID bytes are rejected", func(t *testing.T) {
		_, err := kernel.UUIDFromBytes(make([]byte, 16))

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

func TestUUID_Validate(t *testing.T) {
	t.Run("constructed UUID is valid", func(t *testing.T) {
		require.NoError(t, kernel.NewUUID().Validate())
	})

	t.Run("zero value is invalid", func(t *testing.T) {
		var id kernel.UUID

		err := id.Validate()

		require.Error(t, err)
		assert.Equal(t, kernel.ErrUUIDIsNotConstructed, err)
	})
}

func TestUUID_IsEqual(t *testing.T) {
	first := kernel.NewUUID()
	second := kernel.NewUUID()
	copyOfFirst := first

	assert.True(t, first.IsEqual(copyOfFirst))
	assert.False(t, first.IsEqual(second))
}
