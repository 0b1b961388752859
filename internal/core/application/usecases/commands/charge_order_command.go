package commands

import (
	"comanda/internal/core/domain/model/kernel"
	"comanda/internal/core/domain/model/payment"
	"comanda/internal/pkg/errs"
	"comanda/internal/pkg/guard"
)

// ChargeOrderCommand closes an order by recording its payment. The total
// is computed from current catalog prices at charge time, never stored on
// the order.
type ChargeOrderCommand struct {
	orderID kernel.UUID
	method  payment.Method
	tip     float64

	guard guard.ConstructorGuard
}

func NewChargeOrderCommand(orderID kernel.UUID, method payment.Method,
	tip float64) (ChargeOrderCommand, error) {
	if err := orderID.Validate(); err != nil {
		return ChargeOrderCommand{}, errs.NewValueIsRequiredErrorWithCause("orderID", err)
	}
	if err := method.Validate(); err != nil {
		return ChargeOrderCommand{}, err
	}
	if tip < 0 {
		return ChargeOrderCommand{}, errs.NewValueIsInvalidError("tip")
	}

	return ChargeOrderCommand{
		orderID: orderID,
		method:  method,
		tip:     tip,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (c ChargeOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c ChargeOrderCommand) Method() payment.Method {
	return c.method
}

func (c ChargeOrderCommand) Tip() float64 {
	return c.tip
}

func (c ChargeOrderCommand) Validate() error {
	return c.guard.Validate(errs.NewValueIsInvalidError("ChargeOrderCommand"))
}
