package queries_test

import (
	"context"
	"testing"
	"time"

	"warehouse/internal/adapters/out/postgres/locationrepo"
	"warehouse/internal/core/application/usecases/queries"
	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/core/domain/model/location"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type GetLocationsQueryHandlerTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	handler   queries.GetLocationsQueryHandler
	repo      *locationrepo.GormLocationRepository
	tenantID  kernel.TenantID
}

func (suite *GetLocationsQueryHandlerTestSuite) SetupSuite() {
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

	suite.Require().NoError(db.AutoMigrate(&locationrepo.LocationDTO{}))

	suite.handler = queries.NewGetLocationsQueryHandler(db)
	suite.repo = locationrepo.NewGormLocationRepository(db)
}

func (suite *GetLocationsQueryHandlerTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *GetLocationsQueryHandlerTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE locations").Error)
	suite.tenantID = kernel.NewTenantID()
}

func (suite *GetLocationsQueryHandlerTestSuite) TestHandle_EmptyDatabase_ReturnsEmptySlice() {
	query, err := queries.NewGetLocationsQuery(suite.tenantID, nil)
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(suite.T().Context(), query)

	suite.Require().NoError(err)
	suite.NotNil(result)
	suite.Empty(result)
}

func (suite *GetLocationsQueryHandlerTestSuite) TestHandle_OrderedByBarcodeAndTenantScoped() {
	suite.addLocation(suite.tenantID, "C", 0)
	suite.addLocation(suite.tenantID, "A", 25)
	suite.addLocation(suite.tenantID, "B", 0)
	suite.addLocation(kernel.NewTenantID(), "A", 0)

	query, err := queries.NewGetLocationsQuery(suite.tenantID, nil)
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(suite.T().Context(), query)

	suite.Require().NoError(err)
	suite.Require().Len(result, 3)
	suite.Equal("A0101010", result[0].Barcode)
	suite.Equal("B0101010", result[1].Barcode)
	suite.Equal("C0101010", result[2].Barcode)

	first := result[0]
	suite.Equal("A", first.Zone)
	suite.Equal("1", first.Aisle)
	suite.Equal("Bin", first.Type)
	suite.Equal("Occupied", first.Status)
	suite.True(first.CurrentQuantity.Equal(decimal.NewFromInt(25)))
	suite.True(first.MaximumQuantity.Equal(decimal.NewFromInt(50)))
	suite.Nil(first.ParentID)
	suite.Empty(first.Code)
}

func (suite *GetLocationsQueryHandlerTestSuite) TestHandle_FiltersByStatus() {
	suite.addLocation(suite.tenantID, "A", 0)
	blocked := suite.addLocation(suite.tenantID, "B", 0)

	_, err := blocked.Block(kernel.NewUUID(), "inventory count", time.Now())
	suite.Require().NoError(err)
	suite.Require().NoError(suite.repo.Update(suite.T().Context(), blocked))

	status := location.Blocked
	query, err := queries.NewGetLocationsQuery(suite.tenantID, &status)
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(suite.T().Context(), query)

	suite.Require().NoError(err)
	suite.Require().Len(result, 1)
	suite.Equal(blocked.ID(), result[0].ID)
	suite.Equal("Blocked", result[0].Status)
	suite.Equal("inventory count", result[0].BlockReason)
}

func (suite *GetLocationsQueryHandlerTestSuite) TestHandle_HierarchyLocation() {
	ctx := suite.T().Context()
	parentID := kernel.NewUUID()
	id := kernel.NewUUID()
	barcode, err := location.GenerateBarcodeFromCode("WH1-Z1", id.String())
	suite.Require().NoError(err)
	capacity, err := location.NewCapacity(decimal.Zero, decimal.NewFromInt(1000))
	suite.Require().NoError(err)

	loc, _, err := location.NewLocation(location.Params{
		ID:          id,
		TenantID:    suite.tenantID,
		Barcode:     barcode,
		Capacity:    capacity,
		Code:        "WH1-Z1",
		Name:        "Zone 1",
		Type:        location.Zone,
		ParentID:    &parentID,
		Description: "cold storage",
	}, time.Now())
	suite.Require().NoError(err)
	suite.Require().NoError(suite.repo.Add(ctx, loc))

	query, err := queries.NewGetLocationsQuery(suite.tenantID, nil)
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(ctx, query)

	suite.Require().NoError(err)
	suite.Require().Len(result, 1)
	suite.Equal("WH1-Z1", result[0].Code)
	suite.Equal("Zone 1", result[0].Name)
	suite.Equal("Zone", result[0].Type)
	suite.Empty(result[0].Zone)
	suite.Require().NotNil(result[0].ParentID)
	suite.Equal(parentID, *result[0].ParentID)
	suite.Equal("cold storage", result[0].Description)
}

func (suite *GetLocationsQueryHandlerTestSuite) TestHandle_InvalidQuery_ReturnsError() {
	result, err := suite.handler.Handle(suite.T().Context(), queries.GetLocationsQuery{})

	suite.Require().ErrorIs(err, queries.ErrGetLocationsQueryIsNotConstructed)
	suite.Nil(result)
}

func (suite *GetLocationsQueryHandlerTestSuite) TestHandle_ContextCancellation_ReturnsError() {
	suite.addLocation(suite.tenantID, "A", 0)
	query, err := queries.NewGetLocationsQuery(suite.tenantID, nil)
	suite.Require().NoError(err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	result, err := suite.handler.Handle(ctx, query)

	suite.Require().Error(err)
	suite.Nil(result)
}

func (suite *GetLocationsQueryHandlerTestSuite) addLocation(
	tenantID kernel.TenantID,
	zone string,
	current int64,
) *location.Location {
	coords, err := location.NewCoordinates(zone, "1", "1", "1")
	suite.Require().NoError(err)
	barcode, err := location.GenerateBarcode(coords, "")
	suite.Require().NoError(err)
	capacity, err := location.NewCapacity(decimal.NewFromInt(current), decimal.NewFromInt(50))
	suite.Require().NoError(err)

	loc, _, err := location.NewLocation(location.Params{
		ID:          kernel.NewUUID(),
		TenantID:    tenantID,
		Coordinates: &coords,
		Barcode:     barcode,
		Capacity:    capacity,
	}, time.Now())
	suite.Require().NoError(err)
	suite.Require().NoError(suite.repo.Add(suite.T().Context(), loc))
	return loc
}

func TestGetLocationsQueryHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(GetLocationsQueryHandlerTestSuite))
}
