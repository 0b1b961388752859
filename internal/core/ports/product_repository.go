package ports

import (
	"context"

	"comanda/internal/core/domain/model/kernel"
	"comanda/internal/core/domain/model/product"
)

// ProductRepository is the persistence contract for catalog items.
type ProductRepository interface {
	// Add persists a new product.
	Add(ctx context.Context, p *product.Product) error

	// Update persists changes to an existing product.
	Update(ctx context.Context, p *product.Product) error

	// Delete removes a product. The caller is responsible for checking
	// that no order line still references it.
	Delete(ctx context.Context, id kernel.UUID) error

	// Get retrieves a product by id.
	Get(ctx context.Context, id kernel.UUID) (*product.Product, error)

	// GetByIDs retrieves the products for the given ids, keyed by id.
	// Missing ids are simply absent from the result; callers decide
	// whether that is an error.
	GetByIDs(ctx context.Context, ids []kernel.UUID) (map[kernel.UUID]*product.Product, error)
}
