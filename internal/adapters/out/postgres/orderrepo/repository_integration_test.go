package orderrepo_test

import (
	"context"
	"testing"
	"time"

	"dispatch/internal/adapters/out/postgres/orderrepo"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/pkg/errs"

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

func (m *MockAggregateTracker) TrackAggregate(id kernel.UUID, aggregate any) {
	m.Called(id, aggregate)
}

// OrderRepositoryIntegrationTestSuite covers order persistence against a real
// PostgreSQL instance.
type OrderRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *orderrepo.GormOrderRepository
	tracker    *MockAggregateTracker
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupSuite() {
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

	suite.Require().NoError(db.AutoMigrate(&orderrepo.OrderDTO{}))
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE orders").Error)

	suite.tracker = new(MockAggregateTracker)
	suite.repository = orderrepo.NewGormOrderRepository(suite.db, suite.tracker)
}

func (suite *OrderRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *OrderRepositoryIntegrationTestSuite) createTestOrder() *order.Order {
	deliveryDate := time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC)
	o, err := order.NewOrder(
		kernel.NewUUID(), order.NewNumber(), "M30", 12.5, 48000, "Plot 14, Ring Road",
		deliveryDate, "user-42")
	suite.Require().NoError(err)
	return o
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAdd_ValidOrder_Success() {
	ctx := context.Background()
	testOrder := suite.createTestOrder()

	suite.tracker.On("TrackAggregate", testOrder.ID(), testOrder).Once()

	err := suite.repository.Add(ctx, testOrder)
	suite.Require().NoError(err)

	var count int64
	suite.Require().NoError(suite.db.Model(&orderrepo.OrderDTO{}).Count(&count).Error)
	suite.Equal(int64(1), count)
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGetByNumber_RoundTrip() {
	ctx := context.Background()
	testOrder := suite.createTestOrder()
	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything)
	suite.Require().NoError(suite.repository.Add(ctx, testOrder))

	restored, err := suite.repository.GetByNumber(ctx, testOrder.Number())
	suite.Require().NoError(err)

	suite.True(restored.ID().IsEqual(testOrder.ID()))
	suite.Equal(testOrder.Number(), restored.Number())
	suite.Equal(order.PendingApproval, restored.Status())
	suite.Equal("M30", restored.Grade())
	suite.InDelta(12.5, restored.Quantity(), 0.0001)
	suite.Require().NotNil(restored.DeliveryDate())
	suite.Nil(restored.DispatchDateTime())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGetByNumber_NotFound() {
	ctx := context.Background()

	_, err := suite.repository.GetByNumber(ctx, "ORD-MISSING1")

	suite.Require().Error(err)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_PersistsScheduleFields() {
	ctx := context.Background()
	testOrder := suite.createTestOrder()
	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything)
	suite.Require().NoError(suite.repository.Add(ctx, testOrder))

	dispatchAt := time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC)
	suite.Require().NoError(
		testOrder.ScheduleDispatch(dispatchAt, dispatchAt.Add(2*time.Hour), "route A", "1"))
	suite.Require().NoError(suite.repository.Update(ctx, testOrder))

	restored, err := suite.repository.GetByNumber(ctx, testOrder.Number())
	suite.Require().NoError(err)

	suite.Equal(order.Dispatched, restored.Status())
	suite.Require().NotNil(restored.DispatchDateTime())
	suite.True(restored.DispatchDateTime().Equal(dispatchAt))
	suite.Equal("route A", restored.TripPlanning())
	suite.Equal("1", restored.DeliverySequence())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGetAllInDispatchedStatus_FiltersByStatus() {
	ctx := context.Background()
	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything)

	pending := suite.createTestOrder()
	suite.Require().NoError(suite.repository.Add(ctx, pending))

	dispatched := suite.createTestOrder()
	dispatchAt := time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC)
	suite.Require().NoError(
		dispatched.ScheduleDispatch(dispatchAt, dispatchAt.Add(2*time.Hour), "route A", "1"))
	suite.Require().NoError(suite.repository.Add(ctx, dispatched))

	result, err := suite.repository.GetAllInDispatchedStatus(ctx)
	suite.Require().NoError(err)

	suite.Len(result, 1)
	suite.True(result[0].ID().IsEqual(dispatched.ID()))
}

func (suite *OrderRepositoryIntegrationTestSuite) TestDelete_RemovesOrder() {
	ctx := context.Background()
	testOrder := suite.createTestOrder()
	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything)
	suite.Require().NoError(suite.repository.Add(ctx, testOrder))

	suite.Require().NoError(suite.repository.Delete(ctx, testOrder.ID()))

	_, err := suite.repository.GetByNumber(ctx, testOrder.Number())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestDelete_NotFound() {
	ctx := context.Background()

	err := suite.repository.Delete(ctx, kernel.NewUUID())

	suite.Require().Error(err)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func TestOrderRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(OrderRepositoryIntegrationTestSuite))
}
