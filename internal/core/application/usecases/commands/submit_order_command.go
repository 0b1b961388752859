package commands

import (
	"comanda/internal/core/domain/model/kernel"
	"comanda/internal/core/domain/model/order"
	"comanda/internal/pkg/errs"
	"comanda/internal/pkg/guard"
)

// SubmitOrderCommand requests that a set of items be added to the open
// order of a table, opening a new order when the table has none.
type SubmitOrderCommand struct {
	tableNumber int
	items       []order.Item

	guard guard.ConstructorGuard
}

func NewSubmitOrderCommand(tableNumber int, items []order.Item) (SubmitOrderCommand, error) {
	if tableNumber <= 0 {
		return SubmitOrderCommand{}, errs.NewValueIsInvalidError("tableNumber")
	}
	if len(items) == 0 {
		return SubmitOrderCommand{}, errs.NewValueIsRequiredError("items")
	}
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return SubmitOrderCommand{}, err
		}
	}

	return SubmitOrderCommand{
		tableNumber: tableNumber,
		items:       items,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

func (c SubmitOrderCommand) TableNumber() int {
	return c.tableNumber
}

func (c SubmitOrderCommand) Items() []order.Item {
	return c.items
}

// ProductIDs lists the distinct products referenced by the command.
func (c SubmitOrderCommand) ProductIDs() []kernel.UUID {
	seen := make(map[kernel.UUID]struct{}, len(c.items))
	ids := make([]kernel.UUID, 0, len(c.items))
	for _, item := range c.items {
		if _, ok := seen[item.ProductID]; ok {
			continue
		}
		seen[item.ProductID] = struct{}{}
		ids = append(ids, item.ProductID)
	}
	return ids
}

func (c SubmitOrderCommand) Validate() error {
	return c.guard.Validate(errs.NewValueIsInvalidError("SubmitOrderCommand"))
}
