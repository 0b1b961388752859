package commands

import (
	"context"

	"comanda/internal/core/domain/model/order"
	"comanda/internal/core/ports"
)

// SetLineDeliveredCountCommandHandler records a per-unit delivery count
// and broadcasts the refreshed snapshot.
type SetLineDeliveredCountCommandHandler struct {
	uowFactory OrderingUoWFactory
	notifier   ports.OrderNotifier
}

// NewSetLineDeliveredCountCommandHandler creates a handler for per-unit
// delivery counts.
func NewSetLineDeliveredCountCommandHandler(uowFactory OrderingUoWFactory,
	notifier ports.OrderNotifier) SetLineDeliveredCountCommandHandler {
	return SetLineDeliveredCountCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
	}
}

func (h *SetLineDeliveredCountCommandHandler) Handle(ctx context.Context,
	cmd SetLineDeliveredCountCommand) (ports.OrderView, error) {
	if err := cmd.Validate(); err != nil {
		return ports.OrderView{}, err
	}

	view, err := mutateOrder(ctx, h.uowFactory.Create(), cmd.OrderID(),
		func(o *order.Order) error {
			return o.SetLineDeliveredCount(cmd.ProductID(), cmd.Count())
		})
	if err != nil {
		return ports.OrderView{}, err
	}

	h.notifier.Publish(ports.NewOrderUpdatedEvent(view))

	return view, nil
}
