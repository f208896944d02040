package commands_test

import (
	"context"
	"time"

	"parcelroute/internal/core/application/usecases/commands"
	"parcelroute/internal/core/domain/model/kernel"
	"parcelroute/internal/core/domain/model/parcel"
	"parcelroute/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type MockParcelRepository struct{ mock.Mock }

func (m *MockParcelRepository) GetByTrackingCode(
	ctx context.Context,
	code parcel.TrackingCode,
	driverID kernel.UUID,
) (*parcel.Parcel, error) {
	args := m.Called(ctx, code, driverID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*parcel.Parcel), args.Error(1)
}

func (m *MockParcelRepository) GetOwnerPickupGroup(
	ctx context.Context,
	ownerID, driverID kernel.UUID,
) ([]*parcel.Parcel, error) {
	args := m.Called(ctx, ownerID, driverID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*parcel.Parcel), args.Error(1)
}

func (m *MockParcelRepository) ClearNextTargets(
	ctx context.Context,
	lifecycle parcel.Lifecycle,
	driverID kernel.UUID,
) error {
	args := m.Called(ctx, lifecycle, driverID)
	return args.Error(0)
}

func (m *MockParcelRepository) SetNextTarget(
	ctx context.Context,
	lifecycle parcel.Lifecycle,
	parcelID, driverID kernel.UUID,
) (int64, error) {
	args := m.Called(ctx, lifecycle, parcelID, driverID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockParcelRepository) MarkPickupGroupCompleted(
	ctx context.Context,
	ownerID, driverID kernel.UUID,
	completedAt time.Time,
) (int64, error) {
	args := m.Called(ctx, ownerID, driverID, completedAt)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockParcelRepository) MarkDeliveryCompleted(
	ctx context.Context,
	code parcel.TrackingCode,
	driverID kernel.UUID,
	completedAt time.Time,
) (int64, error) {
	args := m.Called(ctx, code, driverID, completedAt)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockParcelRepository) ListActiveDriverIDs(
	ctx context.Context,
	lifecycle parcel.Lifecycle,
) ([]kernel.UUID, error) {
	args := m.Called(ctx, lifecycle)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]kernel.UUID), args.Error(1)
}

type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) ParcelRepository() ports.ParcelRepository {
	args := m.Called()
	return args.Get(0).(ports.ParcelRepository)
}

type MockUoWFactory struct{ mock.Mock }

func (m *MockUoWFactory) Create() commands.UoW {
	args := m.Called()
	return args.Get(0).(commands.UoW)
}

type MockRouteOracle struct{ mock.Mock }

func (m *MockRouteOracle) NextStop(
	ctx context.Context,
	lifecycle parcel.Lifecycle,
	driverID kernel.UUID,
	credential string,
) (*ports.NextStop, error) {
	args := m.Called(ctx, lifecycle, driverID, credential)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ports.NextStop), args.Error(1)
}

func (m *MockRouteOracle) NotifyCompletion(
	ctx context.Context,
	lifecycle parcel.Lifecycle,
	parcelID kernel.UUID,
) error {
	args := m.Called(ctx, lifecycle, parcelID)
	return args.Error(0)
}

func (m *MockRouteOracle) AllPickupsCompleted(ctx context.Context) (bool, error) {
	args := m.Called(ctx)
	return args.Bool(0), args.Error(1)
}
