// Package commands contains the write operations of the system. Each
// operation is a command object (validated at construction) plus a handler
// that runs the mutation inside a unit of work and publishes the resulting
// change to connected displays after commit.
package commands

import (
	"context"

	"comanda/internal/core/ports"
)

// Unit of Work interfaces scoped to what each command actually touches.
type (
	// TxManager handles the transaction lifecycle of one command.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// TableRepoFactory provides the table repository bound to the transaction.
	TableRepoFactory interface {
		TableRepository() ports.TableRepository
	}

	// ProductRepoFactory provides the product repository bound to the transaction.
	ProductRepoFactory interface {
		ProductRepository() ports.ProductRepository
	}

	// OrderRepoFactory provides the order repository bound to the transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// PaymentRepoFactory provides the payment repository bound to the transaction.
	PaymentRepoFactory interface {
		PaymentRepository() ports.PaymentRepository
	}

	// OrderingUoW serves the submit and delivery commands, which read and
	// mutate orders and resolve products and tables for snapshots.
	OrderingUoW interface {
		TxManager
		TableRepoFactory
		ProductRepoFactory
		OrderRepoFactory
	}

	// OrderingUoWFactory creates ordering unit of work instances.
	OrderingUoWFactory interface {
		Create() OrderingUoW
	}

	// ChargingUoW serves the charge command, which additionally records
	// the payment.
	ChargingUoW interface {
		TxManager
		TableRepoFactory
		ProductRepoFactory
		OrderRepoFactory
		PaymentRepoFactory
	}

	// ChargingUoWFactory creates charging unit of work instances.
	ChargingUoWFactory interface {
		Create() ChargingUoW
	}

	// CatalogUoW serves the product CRUD commands; the order repository is
	// needed to block deletion of referenced products.
	CatalogUoW interface {
		TxManager
		ProductRepoFactory
		OrderRepoFactory
	}

	// CatalogUoWFactory creates catalog unit of work instances.
	CatalogUoWFactory interface {
		Create() CatalogUoW
	}
)
