package commands

import (
	"comanda/internal/core/domain/model/kernel"
	"comanda/internal/core/domain/model/order"
	"comanda/internal/pkg/errs"
	"comanda/internal/pkg/guard"
)

// SetOrderStatusCommand overrides the status of an order, for displays
// that move orders between columns by hand.
type SetOrderStatusCommand struct {
	orderID kernel.UUID
	status  order.Status

	guard guard.ConstructorGuard
}

func NewSetOrderStatusCommand(orderID kernel.UUID, status order.Status) (SetOrderStatusCommand, error) {
	if err := orderID.Validate(); err != nil {
		return SetOrderStatusCommand{}, errs.NewValueIsRequiredErrorWithCause("orderID", err)
	}
	if err := status.Validate(); err != nil {
		return SetOrderStatusCommand{}, err
	}

	return SetOrderStatusCommand{
		orderID: orderID,
		status:  status,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (c SetOrderStatusCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c SetOrderStatusCommand) Status() order.Status {
	return c.status
}

func (c SetOrderStatusCommand) Validate() error {
	return c.guard.Validate(errs.NewValueIsInvalidError("SetOrderStatusCommand"))
}
