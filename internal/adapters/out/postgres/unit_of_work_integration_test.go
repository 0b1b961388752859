package postgres_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"comanda/internal/adapters/out/postgres"
	"comanda/internal/adapters/out/postgres/diningrepo"
	"comanda/internal/adapters/out/postgres/orderrepo"
	"comanda/internal/adapters/out/postgres/paymentrepo"
	"comanda/internal/adapters/out/postgres/productrepo"
	"comanda/internal/core/domain/model/kernel"
	"comanda/internal/core/domain/model/order"
	"comanda/internal/core/domain/model/product"
	"comanda/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// UnitOfWorkIntegrationTestSuite verifies transaction semantics of the GORM
// unit of work against a real PostgreSQL instance.
type UnitOfWorkIntegrationTestSuite struct {
	suite.Suite
	container *tcpostgres.PostgresContainer
	db        *gorm.DB
	factory   *postgres.GormUnitOfWorkFactory
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := tcpostgres.Run(ctx,
		"postgres:15-alpine",
		tcpostgres.WithDatabase("testdb"),
		tcpostgres.WithUsername("testuser"),
		tcpostgres.WithPassword("testpass"),
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

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{TranslateError: true})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(
		&diningrepo.TableDTO{},
		&productrepo.ProductDTO{},
		&orderrepo.OrderDTO{},
		&orderrepo.OrderLineDTO{},
		&paymentrepo.PaymentDTO{},
	))
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec(
		"TRUNCATE TABLE order_lines, orders, payments, products, tables").Error)
	suite.factory = postgres.NewGormUnitOfWorkFactory(suite.db)
}

func (suite *UnitOfWorkIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *UnitOfWorkIntegrationTestSuite) TestCommit_MakesChangesVisible() {
	ctx := context.Background()

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))

	table, err := uow.TableRepository().ObtainByNumber(ctx, 3)
	suite.Require().NoError(err)

	o, err := order.NewOrder(kernel.NewUUID(), table.ID(), time.Now().UTC())
	suite.Require().NoError(err)
	suite.Require().NoError(uow.OrderRepository().Add(ctx, o))
	suite.Require().NoError(uow.Commit(ctx))

	restored, err := orderrepo.NewGormOrderRepository(suite.db).Get(ctx, o.ID())
	suite.Require().NoError(err)
	suite.True(restored.ID().IsEqual(o.ID()))
}

func (suite *UnitOfWorkIntegrationTestSuite) TestRollback_DiscardsChanges() {
	ctx := context.Background()

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))

	table, err := uow.TableRepository().ObtainByNumber(ctx, 5)
	suite.Require().NoError(err)

	o, err := order.NewOrder(kernel.NewUUID(), table.ID(), time.Now().UTC())
	suite.Require().NoError(err)
	suite.Require().NoError(uow.OrderRepository().Add(ctx, o))
	suite.Require().NoError(uow.Rollback(ctx))

	_, err = orderrepo.NewGormOrderRepository(suite.db).Get(ctx, o.ID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)

	var tableCount int64
	suite.Require().NoError(suite.db.Table("tables").Count(&tableCount).Error)
	suite.Zero(tableCount)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestRollback_WithoutTransaction_ReturnsError() {
	uow := suite.factory.Create()
	suite.Require().Error(uow.Rollback(context.Background()))
}

func (suite *UnitOfWorkIntegrationTestSuite) TestObtainByNumber_ReusesExistingTable() {
	ctx := context.Background()

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	first, err := uow.TableRepository().ObtainByNumber(ctx, 8)
	suite.Require().NoError(err)
	suite.Require().NoError(uow.Commit(ctx))

	uow = suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	second, err := uow.TableRepository().ObtainByNumber(ctx, 8)
	suite.Require().NoError(err)
	suite.Require().NoError(uow.Commit(ctx))

	suite.True(first.ID().IsEqual(second.ID()))
}

// Two simultaneous submissions for the same table must end up in one open
// order. The table row lock taken by ObtainByNumber serializes the
// find-open-order + create window, so the second transaction sees the first
// one's order and merges instead of opening a duplicate.
func (suite *UnitOfWorkIntegrationTestSuite) TestConcurrentSubmissions_SingleOpenOrderPerTable() {
	ctx := context.Background()

	pizza, err := product.NewProduct(kernel.NewUUID(), "Pizza", 11, "")
	suite.Require().NoError(err)
	suite.Require().NoError(productrepo.NewGormProductRepository(suite.db).Add(ctx, pizza))

	submit := func() error {
		uow := suite.factory.Create()
		if err := uow.Begin(ctx); err != nil {
			return err
		}
		defer func() {
			_ = uow.Rollback(ctx)
		}()

		table, err := uow.TableRepository().ObtainByNumber(ctx, 12)
		if err != nil {
			return err
		}

		target, err := uow.OrderRepository().GetOpenByTable(ctx, table.ID())
		opened := false
		if errors.Is(err, errs.ErrObjectNotFound) {
			target, err = order.NewOrder(kernel.NewUUID(), table.ID(), time.Now().UTC())
			opened = true
		}
		if err != nil {
			return err
		}

		if err = target.Merge([]order.Item{{ProductID: pizza.ID(), Quantity: 1}}); err != nil {
			return err
		}

		if opened {
			err = uow.OrderRepository().Add(ctx, target)
		} else {
			err = uow.OrderRepository().Update(ctx, target)
		}
		if err != nil {
			return err
		}

		return uow.Commit(ctx)
	}

	results := make(chan error, 2)
	var wg sync.WaitGroup
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			results <- submit()
		}()
	}
	wg.Wait()
	close(results)

	for err := range results {
		suite.Require().NoError(err)
	}

	var orderCount int64
	suite.Require().NoError(suite.db.Table("orders").Count(&orderCount).Error)
	suite.Require().EqualValues(1, orderCount)

	var orderID string
	suite.Require().NoError(suite.db.Table("orders").Select("id").Row().Scan(&orderID))
	id, err := kernel.UUIDFromString(orderID)
	suite.Require().NoError(err)

	open, err := orderrepo.NewGormOrderRepository(suite.db).Get(ctx, id)
	suite.Require().NoError(err)

	line, err := open.Line(pizza.ID())
	suite.Require().NoError(err)
	suite.Equal(2, line.Quantity())
}

func TestUnitOfWorkIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(UnitOfWorkIntegrationTestSuite))
}
