package commands_test

import (
	"context"
	"testing"
	"time"

	"comanda/internal/core/application/usecases/commands"
	"comanda/internal/core/domain/model/dining"
	"comanda/internal/core/domain/model/kernel"
	"comanda/internal/core/domain/model/order"
	"comanda/internal/core/domain/model/payment"
	"comanda/internal/core/domain/model/product"
	"comanda/internal/core/ports"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockTableRepository struct{ mock.Mock }

func (m *MockTableRepository) ObtainByNumber(ctx context.Context, number int) (*dining.Table, error) {
	args := m.Called(ctx, number)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dining.Table), args.Error(1)
}

func (m *MockTableRepository) Get(ctx context.Context, id kernel.UUID) (*dining.Table, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dining.Table), args.Error(1)
}

type MockProductRepository struct{ mock.Mock }

func (m *MockProductRepository) Add(ctx context.Context, p *product.Product) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockProductRepository) Update(ctx context.Context, p *product.Product) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockProductRepository) Delete(ctx context.Context, id kernel.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockProductRepository) Get(ctx context.Context, id kernel.UUID) (*product.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*product.Product), args.Error(1)
}

func (m *MockProductRepository) GetByIDs(ctx context.Context,
	ids []kernel.UUID) (map[kernel.UUID]*product.Product, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[kernel.UUID]*product.Product), args.Error(1)
}

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetOpenByTable(ctx context.Context,
	tableID kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, tableID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) HasLinesForProduct(ctx context.Context,
	productID kernel.UUID) (bool, error) {
	args := m.Called(ctx, productID)
	return args.Bool(0), args.Error(1)
}

type MockPaymentRepository struct{ mock.Mock }

func (m *MockPaymentRepository) Add(ctx context.Context, p *payment.Payment) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockPaymentRepository) GetByOrderID(ctx context.Context,
	orderID kernel.UUID) (*payment.Payment, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*payment.Payment), args.Error(1)
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

func (m *MockUoW) TableRepository() ports.TableRepository {
	args := m.Called()
	return args.Get(0).(ports.TableRepository)
}

func (m *MockUoW) ProductRepository() ports.ProductRepository {
	args := m.Called()
	return args.Get(0).(ports.ProductRepository)
}

func (m *MockUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

func (m *MockUoW) PaymentRepository() ports.PaymentRepository {
	args := m.Called()
	return args.Get(0).(ports.PaymentRepository)
}

type MockOrderingUoWFactory struct{ mock.Mock }

func (m *MockOrderingUoWFactory) Create() commands.OrderingUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderingUoW)
}

type MockChargingUoWFactory struct{ mock.Mock }

func (m *MockChargingUoWFactory) Create() commands.ChargingUoW {
	args := m.Called()
	return args.Get(0).(commands.ChargingUoW)
}

type MockCatalogUoWFactory struct{ mock.Mock }

func (m *MockCatalogUoWFactory) Create() commands.CatalogUoW {
	args := m.Called()
	return args.Get(0).(commands.CatalogUoW)
}

type MockNotifier struct{ mock.Mock }

func (m *MockNotifier) Publish(event ports.Event) {
	m.Called(event)
}

// Fixtures shared by the handler tests in this package.

func newTestTable(t *testing.T, number int) *dining.Table {
	t.Helper()
	table, err := dining.NewTable(kernel.NewUUID(), number)
	require.NoError(t, err)
	return table
}

func newTestProduct(t *testing.T, name string, price float64) *product.Product {
	t.Helper()
	prod, err := product.NewProduct(kernel.NewUUID(), name, price, "")
	require.NoError(t, err)
	return prod
}

func newTestOrder(t *testing.T, tableID kernel.UUID) *order.Order {
	t.Helper()
	o, err := order.NewOrder(kernel.NewUUID(), tableID, time.Now().UTC())
	require.NoError(t, err)
	return o
}

func productMap(products ...*product.Product) map[kernel.UUID]*product.Product {
	result := make(map[kernel.UUID]*product.Product, len(products))
	for _, p := range products {
		result[p.ID()] = p
	}
	return result
}
