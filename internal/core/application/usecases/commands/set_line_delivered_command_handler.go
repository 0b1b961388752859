package commands

import (
	"context"

	"comanda/internal/core/domain/model/order"
	"comanda/internal/core/ports"
)

// SetLineDeliveredCommandHandler toggles delivery of one order line and
// broadcasts the refreshed snapshot.
type SetLineDeliveredCommandHandler struct {
	uowFactory OrderingUoWFactory
	notifier   ports.OrderNotifier
}

// NewSetLineDeliveredCommandHandler creates a handler for the delivery toggle.
func NewSetLineDeliveredCommandHandler(uowFactory OrderingUoWFactory,
	notifier ports.OrderNotifier) SetLineDeliveredCommandHandler {
	return SetLineDeliveredCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
	}
}

func (h *SetLineDeliveredCommandHandler) Handle(ctx context.Context,
	cmd SetLineDeliveredCommand) (ports.OrderView, error) {
	if err := cmd.Validate(); err != nil {
		return ports.OrderView{}, err
	}

	view, err := mutateOrder(ctx, h.uowFactory.Create(), cmd.OrderID(),
		func(o *order.Order) error {
			return o.SetLineDelivered(cmd.ProductID(), cmd.Delivered())
		})
	if err != nil {
		return ports.OrderView{}, err
	}

	h.notifier.Publish(ports.NewOrderUpdatedEvent(view))

	return view, nil
}
