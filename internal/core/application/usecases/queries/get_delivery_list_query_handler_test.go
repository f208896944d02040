package queries_test

import (
	"context"
	"testing"
	"time"

	"parcelroute/internal/adapters/out/postgres/parcelrepo"
	"parcelroute/internal/core/application/usecases/queries"
	"parcelroute/internal/core/domain/model/kernel"
	"parcelroute/internal/core/domain/model/parcel"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type GetDeliveryListQueryHandlerTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	handler   queries.GetDeliveryListQueryHandler
	repo      *parcelrepo.GormParcelRepository
	driverID  kernel.UUID
}

func (suite *GetDeliveryListQueryHandlerTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	err = db.AutoMigrate(&parcelrepo.ParcelDTO{})
	suite.Require().NoError(err)

	suite.handler = queries.NewGetDeliveryListQueryHandler(db)
	suite.repo = parcelrepo.NewGormParcelRepository(db, &mockAggregateTracker{})
	suite.driverID = kernel.NewUUID()
}

func (suite *GetDeliveryListQueryHandlerTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *GetDeliveryListQueryHandlerTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE parcels CASCADE").Error
	suite.Require().NoError(err)
}

func (suite *GetDeliveryListQueryHandlerTestSuite) addParcel(day time.Time) *parcel.Parcel {
	p, err := buildParcel(kernel.NewUUID(), kernel.NewUUID(), suite.driverID, day)
	suite.Require().NoError(err)
	err = suite.repo.Add(context.Background(), p)
	suite.Require().NoError(err)
	return p
}

func (suite *GetDeliveryListQueryHandlerTestSuite) TestHandle_EmptyDatabase_ReturnsEmptySlice() {
	query, err := queries.NewGetDeliveryListQuery(suite.driverID)
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.NotNil(result)
	suite.Empty(result)
}

func (suite *GetDeliveryListQueryHandlerTestSuite) TestHandle_CompletedDeliveriesStayInTheList() {
	today := time.Now()
	pending := suite.addParcel(today)
	done := suite.addParcel(today)

	_, err := suite.repo.MarkDeliveryCompleted(
		context.Background(), done.TrackingCode(), suite.driverID, time.Now())
	suite.Require().NoError(err)

	query, err := queries.NewGetDeliveryListQuery(suite.driverID)
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Require().Len(result, 2)

	byCode := make(map[string]queries.GetDeliveryListQueryResponse)
	for _, stop := range result {
		byCode[stop.TrackingCode] = stop
	}

	suite.Equal(parcel.DeliveryPending.String(), byCode[pending.TrackingCode().String()].Status)
	suite.Nil(byCode[pending.TrackingCode().String()].CompletedAt)

	suite.Equal(parcel.DeliveryCompleted.String(), byCode[done.TrackingCode().String()].Status)
	suite.NotNil(byCode[done.TrackingCode().String()].CompletedAt)
}

func (suite *GetDeliveryListQueryHandlerTestSuite) TestHandle_RecommendedStopSortsFirst() {
	today := time.Now()
	suite.addParcel(today)
	suite.addParcel(today)
	flagged := suite.addParcel(today)

	_, err := suite.repo.SetNextTarget(
		context.Background(), parcel.LifecycleDelivery, flagged.ID(), suite.driverID)
	suite.Require().NoError(err)

	query, err := queries.NewGetDeliveryListQuery(suite.driverID)
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Require().Len(result, 3)
	suite.True(flagged.ID().IsEqual(result[0].ParcelID))
	suite.True(result[0].IsNextTarget)
	suite.False(result[1].IsNextTarget)
	suite.False(result[2].IsNextTarget)
}

func (suite *GetDeliveryListQueryHandlerTestSuite) TestHandle_OtherDriversAndDaysAreExcluded() {
	today := time.Now()
	tomorrow := today.AddDate(0, 0, 1)

	suite.addParcel(tomorrow)

	foreign, err := buildParcel(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), today)
	suite.Require().NoError(err)
	err = suite.repo.Add(context.Background(), foreign)
	suite.Require().NoError(err)

	query, err := queries.NewGetDeliveryListQuery(suite.driverID)
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Empty(result)
}

func (suite *GetDeliveryListQueryHandlerTestSuite) TestHandle_CarriesParcelPayload() {
	p := suite.addParcel(time.Now())

	query, err := queries.NewGetDeliveryListQuery(suite.driverID)
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Require().Len(result, 1)
	suite.Equal(p.TrackingCode().String(), result[0].TrackingCode)
	suite.Equal("12 Rose Lane", result[0].RecipientAddress)
	suite.Equal("apt 3", result[0].DetailAddress)
	suite.Equal("14:00-18:00", result[0].DeliveryTimeWindow)
	suite.Equal("ceramics", result[0].ProductName)
}

func (suite *GetDeliveryListQueryHandlerTestSuite) TestHandle_InvalidQuery_ReturnsError() {
	invalidQuery := queries.GetDeliveryListQuery{}

	result, err := suite.handler.Handle(context.Background(), invalidQuery)

	suite.Require().Error(err)
	suite.Nil(result)
	suite.Contains(err.Error(), "must be created via NewGetDeliveryListQuery constructor")
}

func TestGetDeliveryListQueryHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(GetDeliveryListQueryHandlerTestSuite))
}
