package inventoryrepo_test

import (
	"context"
	"testing"
	"time"

	"foodorder/internal/adapters/out/postgres/inventoryrepo"
	"foodorder/internal/core/domain/model/inventory"
	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// MockAggregateTracker is a mock implementation of aggregateTracker interface.
type MockAggregateTracker struct {
	mock.Mock
}

func (m *MockAggregateTracker) TrackAggregate(id kernel.UUID, aggregate interface{}) {
	m.Called(id, aggregate)
}

// InventoryRepositoryIntegrationTestSuite provides integration tests for
// InventoryRepository using PostgreSQL containers.
type InventoryRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *inventoryrepo.GormInventoryRepository
	tracker    *MockAggregateTracker
}

func (suite *InventoryRepositoryIntegrationTestSuite) SetupSuite() {
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

	suite.Require().NoError(db.AutoMigrate(&inventoryrepo.RecordDTO{}, &inventoryrepo.LogDTO{}))
}

func (suite *InventoryRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE inventory_records, inventory_logs").Error)

	suite.tracker = new(MockAggregateTracker)
	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything).Maybe()
	suite.repository = inventoryrepo.NewGormInventoryRepository(suite.db, suite.tracker)
}

func (suite *InventoryRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *InventoryRepositoryIntegrationTestSuite) createTestRecord(productID string, quantity int) (*inventory.Record, inventory.LogEntry) {
	initial, err := inventory.NewStockQuantity(quantity)
	suite.Require().NoError(err)

	record, entry, err := inventory.NewRecord(productID, initial, "admin")
	suite.Require().NoError(err)
	record.ClearDomainEvents()
	return record, entry
}

func (suite *InventoryRepositoryIntegrationTestSuite) TestAdd_Get_RoundTrip() {
	ctx := context.Background()
	record, _ := suite.createTestRecord("p1", 7)

	suite.Require().NoError(suite.repository.Add(ctx, record))

	loaded, err := suite.repository.GetByProductID(ctx, "p1")
	suite.Require().NoError(err)
	suite.Equal(record.ID(), loaded.ID())
	suite.Equal("p1", loaded.ProductID())
	suite.Equal(7, loaded.Quantity().Value())
}

func (suite *InventoryRepositoryIntegrationTestSuite) TestGetByProductID_NotFound() {
	_, err := suite.repository.GetByProductID(context.Background(), "missing")
	suite.Require().Error(err)
	suite.ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *InventoryRepositoryIntegrationTestSuite) TestSave_PersistsQuantity() {
	ctx := context.Background()
	record, _ := suite.createTestRecord("p1", 3)
	suite.Require().NoError(suite.repository.Add(ctx, record))

	_, err := record.AdjustTo(10, inventory.OperationRestock, "delivery", "admin")
	suite.Require().NoError(err)
	suite.Require().NoError(suite.repository.Save(ctx, record))

	loaded, err := suite.repository.GetByProductID(ctx, "p1")
	suite.Require().NoError(err)
	suite.Equal(10, loaded.Quantity().Value())
}

func (suite *InventoryRepositoryIntegrationTestSuite) TestSave_MissingRecord() {
	record, _ := suite.createTestRecord("p1", 3)

	err := suite.repository.Save(context.Background(), record)
	suite.Require().Error(err)
	suite.ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *InventoryRepositoryIntegrationTestSuite) TestAppendLog_GetLogs_NewestFirst() {
	ctx := context.Background()
	record, initialEntry := suite.createTestRecord("p1", 5)
	suite.Require().NoError(suite.repository.Add(ctx, record))
	suite.Require().NoError(suite.repository.AppendLog(ctx, initialEntry))

	saleQty, err := inventory.NewStockQuantity(2)
	suite.Require().NoError(err)
	saleEntry, err := record.Sell(saleQty, "pos-1")
	suite.Require().NoError(err)
	suite.Require().NoError(suite.repository.AppendLog(ctx, saleEntry))

	restockQty, err := inventory.NewStockQuantity(4)
	suite.Require().NoError(err)
	restockEntry, err := record.Restock(restockQty, "delivery", "admin")
	suite.Require().NoError(err)
	suite.Require().NoError(suite.repository.AppendLog(ctx, restockEntry))

	entries, total, err := suite.repository.GetLogs(ctx, "p1", 10, 0)
	suite.Require().NoError(err)
	suite.Equal(int64(3), total)
	suite.Require().Len(entries, 3)

	suite.Equal(inventory.OperationRestock, entries[0].OperationType())
	suite.Equal(4, entries[0].Delta())
	suite.Equal(inventory.OperationSale, entries[1].OperationType())
	suite.Equal(-2, entries[1].Delta())
	suite.Equal(inventory.OperationInitial, entries[2].OperationType())
}

func (suite *InventoryRepositoryIntegrationTestSuite) TestGetLogs_Pagination() {
	ctx := context.Background()
	record, initialEntry := suite.createTestRecord("p1", 0)
	suite.Require().NoError(suite.repository.Add(ctx, record))
	suite.Require().NoError(suite.repository.AppendLog(ctx, initialEntry))

	for target := 1; target <= 4; target++ {
		entry, err := record.AdjustTo(target, inventory.OperationManualAdjustment, "recount", "admin")
		suite.Require().NoError(err)
		suite.Require().NoError(suite.repository.AppendLog(ctx, entry))
	}

	entries, total, err := suite.repository.GetLogs(ctx, "p1", 2, 0)
	suite.Require().NoError(err)
	suite.Equal(int64(5), total)
	suite.Len(entries, 2)

	entries, total, err = suite.repository.GetLogs(ctx, "p1", 2, 4)
	suite.Require().NoError(err)
	suite.Equal(int64(5), total)
	suite.Len(entries, 1)
}

func (suite *InventoryRepositoryIntegrationTestSuite) TestGetLogs_OtherProductExcluded() {
	ctx := context.Background()
	record, entry := suite.createTestRecord("p1", 5)
	suite.Require().NoError(suite.repository.Add(ctx, record))
	suite.Require().NoError(suite.repository.AppendLog(ctx, entry))

	entries, total, err := suite.repository.GetLogs(ctx, "p2", 10, 0)
	suite.Require().NoError(err)
	suite.Equal(int64(0), total)
	suite.Empty(entries)
}

func TestInventoryRepositoryIntegrationTestSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	suite.Run(t, new(InventoryRepositoryIntegrationTestSuite))
}
