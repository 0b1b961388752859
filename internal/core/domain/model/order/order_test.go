package order_test

import (
	"testing"
	"time"

	"comanda/internal/core/domain/model/kernel"
	"comanda/internal/core/domain/model/order"
	"comanda/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestOrder(t *testing.T) *order.Order {
	t.Helper()
	o, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), time.Now().UTC())
	require.NoError(t, err)
	return o
}

func TestNewOrder(t *testing.T) {
	id := kernel.NewUUID()
	tableID := kernel.NewUUID()
	createdAt := time.Now().UTC()

	o, err := order.NewOrder(id, tableID, createdAt)

	require.NoError(t, err)
	require.NoError(t, o.Validate())
	assert.True(t, id.IsEqual(o.ID()))
	assert.True(t, tableID.IsEqual(o.TableID()))
	assert.Equal(t, createdAt, o.CreatedAt())
	assert.Equal(t, order.Pending, o.Status())
	assert.True(t, o.IsEmpty())
	assert.False(t, o.IsPaid())
}

func TestNewOrder_InvalidIDs(t *testing.T) {
	_, err := order.NewOrder(kernel.UUID{}, kernel.NewUUID(), time.Now())
	require.Error(t, err)

	_, err = order.NewOrder(kernel.NewUUID(), kernel.UUID{}, time.Now())
	require.Error(t, err)
}

func TestOrder_Merge_CreatesLines(t *testing.T) {
	o := newTestOrder(t)
	pizza := kernel.NewUUID()

	err := o.Merge([]order.Item{{ProductID: pizza, Quantity: 2}})

	require.NoError(t, err)
	require.Len(t, o.Lines(), 1)
	line, err := o.Line(pizza)
	require.NoError(t, err)
	assert.Equal(t, 2, line.Quantity())
	assert.Equal(t, 0, line.DeliveredCount())
	assert.Equal(t, order.Pending, o.Status())
}

func TestOrder_Merge_EmptyItems(t *testing.T) {
	o := newTestOrder(t)

	err := o.Merge(nil)

	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestOrder_Merge_InvalidItem(t *testing.T) {
	o := newTestOrder(t)

	err := o.Merge([]order.Item{{ProductID: kernel.NewUUID(), Quantity: 0}})
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)

	err = o.Merge([]order.Item{{ProductID: kernel.UUID{}, Quantity: 1}})
	require.Error(t, err)
}

func TestOrder_Merge_AddsQuantityToExistingLine(t *testing.T) {
	o := newTestOrder(t)
	pizza := kernel.NewUUID()

	require.NoError(t, o.Merge([]order.Item{{ProductID: pizza, Quantity: 2}}))
	require.NoError(t, o.Merge([]order.Item{{ProductID: pizza, Quantity: 3}}))

	require.Len(t, o.Lines(), 1)
	line, err := o.Line(pizza)
	require.NoError(t, err)
	assert.Equal(t, 5, line.Quantity())
}

func TestOrder_Merge_DoesNotTouchDeliveredCount(t *testing.T) {
	o := newTestOrder(t)
	pizza := kernel.NewUUID()
	require.NoError(t, o.Merge([]order.Item{{ProductID: pizza, Quantity: 2}}))
	require.NoError(t, o.SetLineDeliveredCount(pizza, 2))
	require.Equal(t, order.Delivered, o.Status())

	require.NoError(t, o.Merge([]order.Item{{ProductID: pizza, Quantity: 1}}))

	line, err := o.Line(pizza)
	require.NoError(t, err)
	assert.Equal(t, 3, line.Quantity())
	assert.Equal(t, 2, line.DeliveredCount())
	// added undelivered units pull the order back out of delivered
	assert.Equal(t, order.InProgress, o.Status())
}

func TestOrder_Merge_DeliveredOrderBecomesPendingWithNewProduct(t *testing.T) {
	o := newTestOrder(t)
	pizza := kernel.NewUUID()
	require.NoError(t, o.Merge([]order.Item{{ProductID: pizza, Quantity: 1}}))
	require.NoError(t, o.SetLineDelivered(pizza, true))
	require.Equal(t, order.Delivered, o.Status())

	burger := kernel.NewUUID()
	require.NoError(t, o.Merge([]order.Item{{ProductID: burger, Quantity: 1}}))

	assert.Equal(t, order.InProgress, o.Status())
	require.Len(t, o.Lines(), 2)
}

func TestOrder_Merge_PaidOrderRejected(t *testing.T) {
	o := newTestOrder(t)
	require.NoError(t, o.Merge([]order.Item{{ProductID: kernel.NewUUID(), Quantity: 1}}))
	o.MarkPaid()

	err := o.Merge([]order.Item{{ProductID: kernel.NewUUID(), Quantity: 1}})

	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrInvalidState)
}

func TestOrder_StatusDerivation(t *testing.T) {
	pizza := kernel.NewUUID()
	salad := kernel.NewUUID()

	tests := []struct {
		name       string
		pizzaCount int
		saladCount int
		expected   order.Status
	}{
		{"nothing delivered", 0, 0, order.Pending},
		{"one unit delivered", 1, 0, order.InProgress},
		{"one line fully delivered", 2, 0, order.InProgress},
		{"all but one unit", 2, 2, order.InProgress},
		{"everything delivered", 2, 3, order.Delivered},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o := newTestOrder(t)
			require.NoError(t, o.Merge([]order.Item{
				{ProductID: pizza, Quantity: 2},
				{ProductID: salad, Quantity: 3},
			}))

			require.NoError(t, o.SetLineDeliveredCount(pizza, tt.pizzaCount))
			require.NoError(t, o.SetLineDeliveredCount(salad, tt.saladCount))

			assert.Equal(t, tt.expected, o.Status())
		})
	}
}

func TestOrder_SetLineDelivered(t *testing.T) {
	o := newTestOrder(t)
	pizza := kernel.NewUUID()
	require.NoError(t, o.Merge([]order.Item{{ProductID: pizza, Quantity: 2}}))

	require.NoError(t, o.SetLineDelivered(pizza, true))
	line, err := o.Line(pizza)
	require.NoError(t, err)
	assert.Equal(t, 2, line.DeliveredCount())
	assert.Equal(t, order.Delivered, o.Status())

	require.NoError(t, o.SetLineDelivered(pizza, false))
	assert.Equal(t, 0, line.DeliveredCount())
	assert.Equal(t, order.Pending, o.Status())
}

func TestOrder_SetLineDelivered_UnknownLine(t *testing.T) {
	o := newTestOrder(t)
	require.NoError(t, o.Merge([]order.Item{{ProductID: kernel.NewUUID(), Quantity: 1}}))

	err := o.SetLineDelivered(kernel.NewUUID(), true)

	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrObjectNotFound)
}

func TestOrder_SetLineDeliveredCount_Clamps(t *testing.T) {
	o := newTestOrder(t)
	pizza := kernel.NewUUID()
	require.NoError(t, o.Merge([]order.Item{{ProductID: pizza, Quantity: 2}}))
	line, err := o.Line(pizza)
	require.NoError(t, err)

	require.NoError(t, o.SetLineDeliveredCount(pizza, 99))
	assert.Equal(t, 2, line.DeliveredCount())
	assert.Equal(t, order.Delivered, o.Status())

	require.NoError(t, o.SetLineDeliveredCount(pizza, -4))
	assert.Equal(t, 0, line.DeliveredCount())
	assert.Equal(t, order.Pending, o.Status())
}

func TestOrder_ChangeStatus(t *testing.T) {
	o := newTestOrder(t)

	require.NoError(t, o.ChangeStatus(order.InProgress))
	assert.Equal(t, order.InProgress, o.Status())

	err := o.ChangeStatus(order.Unknown)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestOrder_EnsureChargeable(t *testing.T) {
	o := newTestOrder(t)
	pizza := kernel.NewUUID()
	require.NoError(t, o.Merge([]order.Item{{ProductID: pizza, Quantity: 2}}))

	t.Run("pending order is not chargeable", func(t *testing.T) {
		err := o.EnsureChargeable()
		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrInvalidState)
	})

	t.Run("partially delivered order is not chargeable", func(t *testing.T) {
		require.NoError(t, o.SetLineDeliveredCount(pizza, 1))
		err := o.EnsureChargeable()
		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrInvalidState)
	})

	t.Run("delivered order is chargeable", func(t *testing.T) {
		require.NoError(t, o.SetLineDeliveredCount(pizza, 2))
		require.NoError(t, o.EnsureChargeable())
	})

	t.Run("paid order conflicts", func(t *testing.T) {
		o.MarkPaid()
		err := o.EnsureChargeable()
		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrConflict)
	})
}

func TestRestoreOrder(t *testing.T) {
	id := kernel.NewUUID()
	tableID := kernel.NewUUID()
	createdAt := time.Now().UTC()
	pizza := kernel.NewUUID()
	line, err := order.RestoreLine(pizza, 2, 1)
	require.NoError(t, err)

	o, err := order.RestoreOrder(id, tableID, createdAt, order.InProgress, []*order.Line{line}, true)

	require.NoError(t, err)
	assert.Equal(t, order.InProgress, o.Status())
	assert.True(t, o.IsPaid())
	require.Len(t, o.Lines(), 1)
}

func TestRestoreOrder_InvalidStatus(t *testing.T) {
	_, err := order.RestoreOrder(
		kernel.NewUUID(), kernel.NewUUID(), time.Now(), order.Unknown, nil, false)

	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestOrder_Validate_ZeroValue(t *testing.T) {
	o := &order.Order{}

	assert.ErrorIs(t, o.Validate(), order.ErrOrderIsNotConstructed)
}
