package product_test

import (
	"testing"

	"comanda/internal/core/domain/model/kernel"
	"comanda/internal/core/domain/model/product"
	"comanda/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewProduct(t *testing.T) {
	id := kernel.NewUUID()

	p, err := product.NewProduct(id, "Pizza Margherita", 8.99, "https://img.example/pizza")

	require.NoError(t, err)
	require.NoError(t, p.Validate())
	assert.True(t, id.IsEqual(p.ID()))
	assert.Equal(t, "Pizza Margherita", p.Name())
	assert.InDelta(t, 8.99, p.Price(), 0.0001)
	assert.Equal(t, "https://img.example/pizza", p.ImageURL())
}

func TestNewProduct_Invalid(t *testing.T) {
	tests := []struct {
		name     string
		prodName string
		price    float64
		sentinel error
	}{
		{"empty name", "", 1.0, errs.ErrValueIsRequired},
		{"negative price", "Burger", -0.01, errs.ErrValueIsInvalid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := product.NewProduct(kernel.NewUUID(), tt.prodName, tt.price, "")

			require.Error(t, err)
			assert.ErrorIs(t, err, tt.sentinel)
		})
	}
}

func TestProduct_ChangePrice(t *testing.T) {
	p, err := product.NewProduct(kernel.NewUUID(), "Salad", 7.25, "")
	require.NoError(t, err)

	require.NoError(t, p.ChangePrice(7.75))
	assert.InDelta(t, 7.75, p.Price(), 0.0001)

	require.Error(t, p.ChangePrice(-1))
	assert.InDelta(t, 7.75, p.Price(), 0.0001)
}

func TestProduct_Rename(t *testing.T) {
	p, err := product.NewProduct(kernel.NewUUID(), "Salad", 7.25, "")
	require.NoError(t, err)

	require.NoError(t, p.Rename("Caesar Salad"))
	assert.Equal(t, "Caesar Salad", p.Name())

	require.Error(t, p.Rename(""))
}

func TestProduct_Validate_ZeroValue(t *testing.T) {
	p := &product.Product{}

	assert.ErrorIs(t, p.Validate(), product.ErrProductIsNotConstructed)
}
