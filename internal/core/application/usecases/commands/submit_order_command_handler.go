package commands

import (
	"context"
	"errors"
	"fmt"
	"time"

	"comanda/internal/core/domain/model/kernel"
	"comanda/internal/core/domain/model/order"
	"comanda/internal/core/ports"
	"comanda/internal/pkg/errs"
)

// SubmitOrderCommandHandler merges submitted items into the table's open
// order. The table row is locked for the duration of the transaction, so
// two concurrent submissions for the same table cannot both open a new
// order.
//
// Example:
//
//	handler := NewSubmitOrderCommandHandler(uowFactory, notifier)
//	cmd, _ := NewSubmitOrderCommand(5, items)
//
//	view, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("order submission failed: %w", err)
//	}
//	// view is the snapshot already broadcast to kitchen displays
type SubmitOrderCommandHandler struct {
	uowFactory OrderingUoWFactory
	notifier   ports.OrderNotifier
}

// NewSubmitOrderCommandHandler creates a handler for order submissions.
func NewSubmitOrderCommandHandler(uowFactory OrderingUoWFactory,
	notifier ports.OrderNotifier) SubmitOrderCommandHandler {
	return SubmitOrderCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
	}
}

// Handle resolves the table (creating it on first use), finds its open
// order or starts one, merges the items and persists the result. The
// snapshot is broadcast after commit: new_order when a fresh order was
// opened, update_order when items were merged into an existing one.
func (h *SubmitOrderCommandHandler) Handle(ctx context.Context,
	cmd SubmitOrderCommand) (ports.OrderView, error) {
	if err := cmd.Validate(); err != nil {
		return ports.OrderView{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return ports.OrderView{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	table, err := uow.TableRepository().ObtainByNumber(ctx, cmd.TableNumber())
	if err != nil {
		return ports.OrderView{}, err
	}

	products, err := uow.ProductRepository().GetByIDs(ctx, cmd.ProductIDs())
	if err != nil {
		return ports.OrderView{}, err
	}
	for _, id := range cmd.ProductIDs() {
		if _, ok := products[id]; !ok {
			return ports.OrderView{}, errs.NewValueIsInvalidErrorWithCause("items",
				fmt.Errorf("product %s does not exist", id))
		}
	}

	orderRepo := uow.OrderRepository()
	target, err := orderRepo.GetOpenByTable(ctx, table.ID())
	opened := false
	if err != nil {
		if !errors.Is(err, errs.ErrObjectNotFound) {
			return ports.OrderView{}, err
		}
		target, err = order.NewOrder(kernel.NewUUID(), table.ID(), time.Now().UTC())
		if err != nil {
			return ports.OrderView{}, err
		}
		opened = true
	}

	if err = target.Merge(cmd.Items()); err != nil {
		return ports.OrderView{}, err
	}

	if opened {
		err = orderRepo.Add(ctx, target)
	} else {
		err = orderRepo.Update(ctx, target)
	}
	if err != nil {
		return ports.OrderView{}, err
	}

	// An order merged into may hold lines for products outside this
	// submission, so resolve the full set for the snapshot.
	if !opened {
		products, err = loadOrderProducts(ctx, uow.ProductRepository(), target)
		if err != nil {
			return ports.OrderView{}, err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return ports.OrderView{}, err
	}

	view, err := newOrderView(target, table.Number(), products)
	if err != nil {
		return ports.OrderView{}, err
	}

	if opened {
		h.notifier.Publish(ports.NewOrderCreatedEvent(view))
	} else {
		h.notifier.Publish(ports.NewOrderUpdatedEvent(view))
	}

	return view, nil
}
