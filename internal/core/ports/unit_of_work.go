package ports

import (
	"context"
)

// UnitOfWorkFactory creates a fresh UnitOfWork per request so concurrent
// operations stay isolated from each other.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork is the transaction boundary for one write operation. Every
// inbound write (submit, delivery update, charge) runs as a single
// read-modify-write inside one transaction; repositories obtained from the
// unit of work are bound to that transaction.
type UnitOfWork interface {
	// Begin starts a database transaction.
	Begin(ctx context.Context) error

	// Commit commits the current transaction.
	Commit(ctx context.Context) error

	// Rollback rolls back the current transaction. Returns an error when
	// no transaction is active, so a deferred rollback after a successful
	// commit fails harmlessly.
	Rollback(ctx context.Context) error

	// TableRepository returns a TableRepository bound to the transaction.
	TableRepository() TableRepository

	// ProductRepository returns a ProductRepository bound to the transaction.
	ProductRepository() ProductRepository

	// OrderRepository returns an OrderRepository bound to the transaction.
	OrderRepository() OrderRepository

	// PaymentRepository returns a PaymentRepository bound to the transaction.
	PaymentRepository() PaymentRepository
}
