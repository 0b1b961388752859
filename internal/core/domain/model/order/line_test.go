package order_test

import (
	"testing"

	"comanda/internal/core/domain/model/kernel"
	"comanda/internal/core/domain/model/order"
	"comanda/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLine(t *testing.T) {
	productID := kernel.NewUUID()

	line, err := order.NewLine(productID, 2)

	require.NoError(t, err)
	require.NoError(t, line.Validate())
	assert.True(t, productID.IsEqual(line.ProductID()))
	assert.Equal(t, 2, line.Quantity())
	assert.Equal(t, 0, line.DeliveredCount())
	assert.False(t, line.IsDelivered())
}

func TestNewLine_InvalidQuantity(t *testing.T) {
	for _, qty := range []int{0, -3} {
		_, err := order.NewLine(kernel.NewUUID(), qty)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	}
}

func TestRestoreLine(t *testing.T) {
	productID := kernel.NewUUID()

	line, err := order.RestoreLine(productID, 3, 2)

	require.NoError(t, err)
	assert.Equal(t, 3, line.Quantity())
	assert.Equal(t, 2, line.DeliveredCount())
	assert.False(t, line.IsDelivered())
}

func TestRestoreLine_DeliveredCountOutOfRange(t *testing.T) {
	tests := []struct {
		name           string
		deliveredCount int
	}{
		{"negative", -1},
		{"above quantity", 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := order.RestoreLine(kernel.NewUUID(), 3, tt.deliveredCount)

			require.Error(t, err)
			assert.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
		})
	}
}

func TestRestoreLine_FullyDelivered(t *testing.T) {
	line, err := order.RestoreLine(kernel.NewUUID(), 2, 2)

	require.NoError(t, err)
	assert.True(t, line.IsDelivered())
}
