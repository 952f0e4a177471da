package postgres_test

import (
	"context"
	"sync"
	"testing"
	"time"

	postgres_adapter "fulfillment/internal/adapters/out/postgres"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/ports"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/logging"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// UnitOfWorkIntegrationTestSuite exercises the GORM unit of work against a
// real PostgreSQL database.
type UnitOfWorkIntegrationTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	factory   ports.UnitOfWorkFactory
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(wait.ForLog("database system is ready to accept connections").
			WithOccurrence(2).
			WithStartupTimeout(30*time.Second)),
	)
	suite.Require().NoError(err)
	suite.container = container

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(postgres_adapter.Migrate(ctx, db))

	suite.factory = postgres_adapter.NewGormUnitOfWorkFactory(db, logging.Discard())
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE order_history, order_line_items, orders").Error
	suite.Require().NoError(err)
}

func (suite *UnitOfWorkIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_TransactionLifecycle() {
	ctx := context.Background()
	uow := suite.factory.Create()

	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.Begin(ctx), "Multiple begin calls should be safe")
	suite.Require().NoError(uow.Commit(ctx))

	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.Rollback(ctx))

	suite.Require().ErrorIs(uow.Commit(ctx), gorm.ErrInvalidTransaction)
	suite.Require().ErrorIs(uow.Rollback(ctx), gorm.ErrInvalidTransaction)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_CommitPersists() {
	ctx := context.Background()
	uow := suite.factory.Create()
	testOrder := createTestOrder(suite.T(), "OF-1")

	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.OrderRepository().Add(ctx, testOrder))

	retrieved, err := uow.OrderRepository().Get(ctx, "OF-1")
	suite.Require().NoError(err)
	suite.Equal("OF-1", retrieved.Reference())

	suite.Require().NoError(uow.Commit(ctx))

	retrieved, err = suite.factory.Create().OrderRepository().Get(ctx, "OF-1")
	suite.Require().NoError(err)
	suite.Equal(testOrder.Snapshot(), retrieved.Snapshot())
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_RollbackDiscards() {
	ctx := context.Background()
	uow := suite.factory.Create()

	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.OrderRepository().Add(ctx, createTestOrder(suite.T(), "OF-1")))
	suite.Require().NoError(uow.Rollback(ctx))

	_, err := suite.factory.Create().OrderRepository().Get(ctx, "OF-1")
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_RepositoryIsolation() {
	ctx := context.Background()
	uow1 := suite.factory.Create()
	uow2 := suite.factory.Create()

	suite.Require().NoError(uow1.Begin(ctx))
	suite.Require().NoError(uow2.Begin(ctx))

	suite.Require().NoError(uow1.OrderRepository().Add(ctx, createTestOrder(suite.T(), "OF-1")))
	suite.Require().NoError(uow2.OrderRepository().Add(ctx, createTestOrder(suite.T(), "OF-2")))

	_, err := uow1.OrderRepository().Get(ctx, "OF-2")
	suite.Require().Error(err, "UOW1 should not see OF-2")
	_, err = uow2.OrderRepository().Get(ctx, "OF-1")
	suite.Require().Error(err, "UOW2 should not see OF-1")

	suite.Require().NoError(uow1.Commit(ctx))
	suite.Require().NoError(uow2.Rollback(ctx))

	orders, err := suite.factory.Create().OrderRepository().List(ctx)
	suite.Require().NoError(err)
	suite.Require().Len(orders, 1)
	suite.Equal("OF-1", orders[0].Reference())
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_WithoutTransaction() {
	ctx := context.Background()
	repo := suite.factory.Create().OrderRepository()

	suite.Require().NoError(repo.Add(ctx, createTestOrder(suite.T(), "OF-1")))

	retrieved, err := suite.factory.Create().OrderRepository().Get(ctx, "OF-1")
	suite.Require().NoError(err)
	suite.Equal("OF-1", retrieved.Reference())
}

// TestUnitOfWork_ConcurrentAdvances checks that the row lock taken by Get
// serializes units of work on the same order.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_ConcurrentAdvances() {
	ctx := context.Background()
	suite.Require().NoError(suite.factory.Create().OrderRepository().Add(ctx, createTestOrder(suite.T(), "OF-1")))

	const workers = 5
	var wg sync.WaitGroup
	errCh := make(chan error, workers)
	for range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			uow := suite.factory.Create()
			if err := uow.Begin(ctx); err != nil {
				errCh <- err
				return
			}
			defer func() { _ = uow.Rollback(ctx) }()

			repo := uow.OrderRepository()
			o, err := repo.Get(ctx, "OF-1")
			if err != nil {
				errCh <- err
				return
			}
			o.Advance("")
			if err = repo.Update(ctx, o); err != nil {
				errCh <- err
				return
			}
			errCh <- uow.Commit(ctx)
		}()
	}
	wg.Wait()
	close(errCh)
	for err := range errCh {
		suite.Require().NoError(err)
	}

	o, err := suite.factory.Create().OrderRepository().Get(ctx, "OF-1")
	suite.Require().NoError(err)
	suite.Len(o.History(), workers+1)
	suite.Equal(workers+1, o.State().Position())
}

func createTestOrder(t *testing.T, reference string) *order.Order {
	t.Helper()
	item, err := order.NewLineItem("P-100", "Bearing", 4, "PRJ-7")
	if err != nil {
		t.Fatal(err)
	}
	o, err := order.NewOrder(reference, "ACME", []order.LineItem{item})
	if err != nil {
		t.Fatal(err)
	}
	return o
}

func TestUnitOfWorkIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(UnitOfWorkIntegrationTestSuite))
}
