package guard_test

import (
	"errors"
	"testing"

	"comanda/internal/pkg/guard"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConstructorGuard_Constructed(t *testing.T) {
	g := guard.NewConstructorGuard()

	require.NoError(t, g.Validate(errors.New("should not fire")))
}

func TestConstructorGuard_ZeroValue(t *testing.T) {
	var g guard.ConstructorGuard
	sentinel := errors.New("object not constructed")

	err := g.Validate(sentinel)

	require.Error(t, err)
	assert.Equal(t, sentinel, err)
}

func TestConstructorGuard_ZeroValue_NilError(t *testing.T) {
	var g guard.ConstructorGuard

	err := g.Validate(nil)

	require.Error(t, err)
	assert.Equal(t, guard.ErrDefaultConstructorGuard, err)
}
