package commands

import (
	"comanda/internal/core/domain/model/kernel"
	"comanda/internal/pkg/errs"
	"comanda/internal/pkg/guard"
)

// SetLineDeliveredCommand marks a whole order line delivered or not
// delivered, the coarse toggle used by waiter displays.
type SetLineDeliveredCommand struct {
	orderID   kernel.UUID
	productID kernel.UUID
	delivered bool

	guard guard.ConstructorGuard
}

func NewSetLineDeliveredCommand(orderID kernel.UUID, productID kernel.UUID,
	delivered bool) (SetLineDeliveredCommand, error) {
	if err := orderID.Validate(); err != nil {
		return SetLineDeliveredCommand{}, errs.NewValueIsRequiredErrorWithCause("orderID", err)
	}
	if err := productID.Validate(); err != nil {
		return SetLineDeliveredCommand{}, errs.NewValueIsRequiredErrorWithCause("productID", err)
	}

	return SetLineDeliveredCommand{
		orderID:   orderID,
		productID: productID,
		delivered: delivered,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (c SetLineDeliveredCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c SetLineDeliveredCommand) ProductID() kernel.UUID {
	return c.productID
}

func (c SetLineDeliveredCommand) Delivered() bool {
	return c.delivered
}

func (c SetLineDeliveredCommand) Validate() error {
	return c.guard.Validate(errs.NewValueIsInvalidError("SetLineDeliveredCommand"))
}
