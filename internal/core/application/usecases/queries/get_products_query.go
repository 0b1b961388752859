package queries

import (
	"errors"

	"comanda/internal/pkg/guard"
)

var ErrGetProductsQueryIsNotConstructed = errors.New(
	"GetProductsQuery must be created via NewGetProductsQuery constructor",
)

// GetProductsQuery retrieves the full catalog, sorted by name.
type GetProductsQuery struct {
	guard guard.ConstructorGuard
}

// NewGetProductsQuery creates a catalog listing query.
func NewGetProductsQuery() GetProductsQuery {
	return GetProductsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetProductsQuery) Validate() error {
	return q.guard.Validate(ErrGetProductsQueryIsNotConstructed)
}
