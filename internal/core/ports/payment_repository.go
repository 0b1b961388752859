package ports

import (
	"context"

	"comanda/internal/core/domain/model/kernel"
	"comanda/internal/core/domain/model/payment"
)

// PaymentRepository is the persistence contract for payments.
type PaymentRepository interface {
	// Add persists a payment. The store enforces one payment per order;
	// inserting a second one for the same order fails with a
	// ConflictError regardless of what the caller checked beforehand.
	Add(ctx context.Context, p *payment.Payment) error

	// GetByOrderID retrieves the payment settling the given order, or an
	// ObjectNotFoundError when the order is still open.
	GetByOrderID(ctx context.Context, orderID kernel.UUID) (*payment.Payment, error)
}
