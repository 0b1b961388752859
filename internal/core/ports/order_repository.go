package ports

import (
	"context"

	"comanda/internal/core/domain/model/kernel"
	"comanda/internal/core/domain/model/order"
)

// OrderRepository is the persistence contract for order aggregates.
// Orders are stored with their lines; the paid flag is reconstructed from
// payment presence, no status or paid field is trusted independently.
type OrderRepository interface {
	// Add persists a new order with its lines.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order and upserts its lines.
	// Lines are never removed by an update; merges only add.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order with its lines and payment presence.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetOpenByTable retrieves the most recent order for the table that
	// has no payment, the merge target for new submissions. Returns an
	// ObjectNotFoundError when every order of the table is settled.
	GetOpenByTable(ctx context.Context, tableID kernel.UUID) (*order.Order, error)

	// HasLinesForProduct reports whether any order line references the
	// product, which blocks catalog deletion.
	HasLinesForProduct(ctx context.Context, productID kernel.UUID) (bool, error)
}
