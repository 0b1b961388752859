package dining_test

import (
	"testing"

	"comanda/internal/core/domain/model/dining"
	"comanda/internal/core/domain/model/kernel"
	"comanda/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTable(t *testing.T) {
	id := kernel.NewUUID()

	table, err := dining.NewTable(id, 3)

	require.NoError(t, err)
	require.NoError(t, table.Validate())
	assert.True(t, id.IsEqual(table.ID()))
	assert.Equal(t, 3, table.Number())
}

func TestNewTable_InvalidNumber(t *testing.T) {
	tests := []struct {
		name   string
		number int
	}{
		{"zero", 0},
		{"negative", -5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := dining.NewTable(kernel.NewUUID(), tt.number)

			require.Error(t, err)
			assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
		})
	}
}

func TestNewTable_ZeroID(t *testing.T) {
	_, err := dining.NewTable(kernel.UUID{}, 1)

	require.Error(t, err)
}

func TestTable_Validate_ZeroValue(t *testing.T) {
	table := &dining.Table{}

	assert.ErrorIs(t, table.Validate(), dining.ErrTableIsNotConstructed)
}
