package commands

import (
	"context"

	"comanda/internal/core/domain/model/order"
	"comanda/internal/core/ports"
)

// SetOrderStatusCommandHandler applies a manual status override and
// broadcasts the change as an update_status event.
type SetOrderStatusCommandHandler struct {
	uowFactory OrderingUoWFactory
	notifier   ports.OrderNotifier
}

// NewSetOrderStatusCommandHandler creates a handler for status overrides.
func NewSetOrderStatusCommandHandler(uowFactory OrderingUoWFactory,
	notifier ports.OrderNotifier) SetOrderStatusCommandHandler {
	return SetOrderStatusCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
	}
}

func (h *SetOrderStatusCommandHandler) Handle(ctx context.Context,
	cmd SetOrderStatusCommand) (ports.OrderView, error) {
	if err := cmd.Validate(); err != nil {
		return ports.OrderView{}, err
	}

	view, err := mutateOrder(ctx, h.uowFactory.Create(), cmd.OrderID(),
		func(o *order.Order) error {
			return o.ChangeStatus(cmd.Status())
		})
	if err != nil {
		return ports.OrderView{}, err
	}

	h.notifier.Publish(ports.NewStatusChangedEvent(view.ID, view.Status))

	return view, nil
}
