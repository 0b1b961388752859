package commands

import (
	"comanda/internal/core/domain/model/kernel"
	"comanda/internal/pkg/errs"
	"comanda/internal/pkg/guard"
)

// SetLineDeliveredCountCommand records how many units of a line have been
// brought to the table. The count is clamped into the line's valid range,
// so out-of-range input is never an error.
type SetLineDeliveredCountCommand struct {
	orderID   kernel.UUID
	productID kernel.UUID
	count     int

	guard guard.ConstructorGuard
}

func NewSetLineDeliveredCountCommand(orderID kernel.UUID, productID kernel.UUID,
	count int) (SetLineDeliveredCountCommand, error) {
	if err := orderID.Validate(); err != nil {
		return SetLineDeliveredCountCommand{}, errs.NewValueIsRequiredErrorWithCause("orderID", err)
	}
	if err := productID.Validate(); err != nil {
		return SetLineDeliveredCountCommand{}, errs.NewValueIsRequiredErrorWithCause("productID", err)
	}

	return SetLineDeliveredCountCommand{
		orderID:   orderID,
		productID: productID,
		count:     count,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (c SetLineDeliveredCountCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c SetLineDeliveredCountCommand) ProductID() kernel.UUID {
	return c.productID
}

func (c SetLineDeliveredCountCommand) Count() int {
	return c.count
}

func (c SetLineDeliveredCountCommand) Validate() error {
	return c.guard.Validate(errs.NewValueIsInvalidError("SetLineDeliveredCountCommand"))
}
