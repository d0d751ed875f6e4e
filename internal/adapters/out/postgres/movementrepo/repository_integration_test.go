package movementrepo_test

import (
	"context"
	"testing"
	"time"

	"warehouse/internal/adapters/out/postgres/movementrepo"
	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/core/domain/model/movement"
	"warehouse/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type StockMovementRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *movementrepo.GormStockMovementRepository
	tenantID   kernel.TenantID
}

func (suite *StockMovementRepositoryIntegrationTestSuite) SetupSuite() {
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

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(&movementrepo.StockMovementDTO{}))
}

func (suite *StockMovementRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE stock_movements").Error)

	suite.repository = movementrepo.NewGormStockMovementRepository(suite.db)
	suite.tenantID = kernel.NewTenantID()
}

func (suite *StockMovementRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *StockMovementRepositoryIntegrationTestSuite) TestAdd_RoundTrip() {
	ctx := suite.T().Context()
	stockItemID := kernel.NewUUID()
	mv := suite.newMovement(&stockItemID)

	suite.Require().NoError(suite.repository.Add(ctx, mv))

	stored, err := suite.repository.Get(ctx, suite.tenantID, mv.ID())
	suite.Require().NoError(err)

	suite.True(stored.ID().IsEqual(mv.ID()))
	suite.Require().NotNil(stored.StockItemID())
	suite.True(stored.StockItemID().IsEqual(stockItemID))
	suite.True(stored.ProductID().IsEqual(mv.ProductID()))
	suite.True(stored.SourceLocationID().IsEqual(mv.SourceLocationID()))
	suite.True(stored.DestinationLocationID().IsEqual(mv.DestinationLocationID()))
	suite.Equal(7, stored.Quantity())
	suite.Equal(movement.Putaway, stored.Type())
	suite.Equal(movement.ReasonRestocking, stored.Reason())
	suite.Equal(movement.Pending, stored.Status())
	suite.WithinDuration(mv.InitiatedAt(), stored.InitiatedAt(), time.Millisecond)
	suite.Nil(stored.CompletedAt())
	suite.Nil(stored.CancelledAt())
}

func (suite *StockMovementRepositoryIntegrationTestSuite) TestAdd_DuplicateID() {
	ctx := suite.T().Context()
	mv := suite.newMovement(nil)

	suite.Require().NoError(suite.repository.Add(ctx, mv))
	err := suite.repository.Add(ctx, mv)

	suite.Require().ErrorIs(err, errs.ErrObjectAlreadyExists)
}

func (suite *StockMovementRepositoryIntegrationTestSuite) TestGet_OtherTenantIsNotFound() {
	ctx := suite.T().Context()
	mv := suite.newMovement(nil)
	suite.Require().NoError(suite.repository.Add(ctx, mv))

	_, err := suite.repository.Get(ctx, kernel.NewTenantID(), mv.ID())

	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *StockMovementRepositoryIntegrationTestSuite) TestUpdate_Complete() {
	ctx := suite.T().Context()
	mv := suite.newMovement(nil)
	suite.Require().NoError(suite.repository.Add(ctx, mv))

	actor := kernel.NewUUID()
	_, err := mv.Complete(actor, time.Now())
	suite.Require().NoError(err)
	suite.Require().NoError(suite.repository.Update(ctx, mv))

	stored, err := suite.repository.Get(ctx, suite.tenantID, mv.ID())
	suite.Require().NoError(err)
	suite.Equal(movement.Completed, stored.Status())
	suite.Require().NotNil(stored.CompletedBy())
	suite.True(stored.CompletedBy().IsEqual(actor))
	suite.NotNil(stored.CompletedAt())
	suite.Equal(mv.Version()+1, stored.Version())
}

func (suite *StockMovementRepositoryIntegrationTestSuite) TestUpdate_Cancel() {
	ctx := suite.T().Context()
	mv := suite.newMovement(nil)
	suite.Require().NoError(suite.repository.Add(ctx, mv))

	_, err := mv.Cancel(kernel.NewUUID(), "wrong destination", time.Now())
	suite.Require().NoError(err)
	suite.Require().NoError(suite.repository.Update(ctx, mv))

	stored, err := suite.repository.Get(ctx, suite.tenantID, mv.ID())
	suite.Require().NoError(err)
	suite.Equal(movement.Cancelled, stored.Status())
	suite.Equal("wrong destination", stored.CancellationReason())
	suite.NotNil(stored.CancelledAt())
}

func (suite *StockMovementRepositoryIntegrationTestSuite) TestUpdate_StaleVersion() {
	ctx := suite.T().Context()
	mv := suite.newMovement(nil)
	suite.Require().NoError(suite.repository.Add(ctx, mv))

	stale, err := suite.repository.Get(ctx, suite.tenantID, mv.ID())
	suite.Require().NoError(err)

	_, err = mv.Complete(kernel.NewUUID(), time.Now())
	suite.Require().NoError(err)
	suite.Require().NoError(suite.repository.Update(ctx, mv))

	_, err = stale.Cancel(kernel.NewUUID(), "late cancel", time.Now())
	suite.Require().NoError(err)
	err = suite.repository.Update(ctx, stale)

	suite.Require().ErrorIs(err, errs.ErrVersionIsInvalid)
}

func (suite *StockMovementRepositoryIntegrationTestSuite) newMovement(stockItemID *kernel.UUID) *movement.StockMovement {
	mv, _, err := movement.NewStockMovement(movement.Params{
		ID:                    kernel.NewUUID(),
		TenantID:              suite.tenantID,
		StockItemID:           stockItemID,
		ProductID:             kernel.NewUUID(),
		SourceLocationID:      kernel.NewUUID(),
		DestinationLocationID: kernel.NewUUID(),
		Quantity:              7,
		Type:                  movement.Putaway,
		Reason:                movement.ReasonRestocking,
		InitiatedBy:           kernel.NewUUID(),
	}, time.Now())
	suite.Require().NoError(err)
	return mv
}

func TestStockMovementRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(StockMovementRepositoryIntegrationTestSuite))
}
