// Package ports defines the contracts between the core and the adapters:
// repositories, the unit of work, and the order notifier used to push
// changes to connected staff displays.
package ports

import (
	"context"

	"comanda/internal/core/domain/model/dining"
	"comanda/internal/core/domain/model/kernel"
)

// TableRepository is the persistence contract for tables.
type TableRepository interface {
	// ObtainByNumber resolves the table with the given number, creating it
	// if absent, and locks its row for the remainder of the transaction.
	// The lock is what serializes concurrent submissions for one table:
	// two writers cannot both conclude "no open order exists" and create
	// divergent open orders. Submissions for different tables do not
	// contend with each other.
	ObtainByNumber(ctx context.Context, number int) (*dining.Table, error)

	// Get retrieves a table by its internal identifier.
	Get(ctx context.Context, id kernel.UUID) (*dining.Table, error)
}
