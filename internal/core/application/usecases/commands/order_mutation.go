package commands

import (
	"context"

	"comanda/internal/core/domain/model/kernel"
	"comanda/internal/core/domain/model/order"
	"comanda/internal/core/ports"
)

// mutateOrder loads the order, applies the mutation, persists it and
// assembles the fresh snapshot, all inside one unit of work. The caller
// decides what to publish.
func mutateOrder(ctx context.Context, uow OrderingUoW, orderID kernel.UUID,
	mutate func(o *order.Order) error) (ports.OrderView, error) {
	if err := uow.Begin(ctx); err != nil {
		return ports.OrderView{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	target, err := orderRepo.Get(ctx, orderID)
	if err != nil {
		return ports.OrderView{}, err
	}

	if err = mutate(target); err != nil {
		return ports.OrderView{}, err
	}

	if err = orderRepo.Update(ctx, target); err != nil {
		return ports.OrderView{}, err
	}

	table, err := uow.TableRepository().Get(ctx, target.TableID())
	if err != nil {
		return ports.OrderView{}, err
	}

	products, err := loadOrderProducts(ctx, uow.ProductRepository(), target)
	if err != nil {
		return ports.OrderView{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return ports.OrderView{}, err
	}

	return newOrderView(target, table.Number(), products)
}
