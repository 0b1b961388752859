package order

import (
	"errors"
	"fmt"

	"comanda/internal/core/domain/model/kernel"
	"comanda/internal/pkg/errs"
	"comanda/internal/pkg/guard"
)

// ErrLineIsNotConstructed is returned when a Line instance was not created
// through NewLine or RestoreLine.
var ErrLineIsNotConstructed = errors.New("Line must be created via NewLine or RestoreLine")

// Line is one item entry within an order. It accumulates the total
// requested quantity across all merged submissions for the same product,
// and tracks how many units have been brought to the table.
//
// Invariant: 0 <= deliveredCount <= quantity. A line is delivered when
// deliveredCount has reached quantity.
type Line struct {
	productID      kernel.UUID
	quantity       int
	deliveredCount int

	guard guard.ConstructorGuard
}

// NewLine creates a line for a freshly submitted item. Quantity must be
// positive; delivery starts at zero.
func NewLine(productID kernel.UUID, quantity int) (*Line, error) {
	if err := productID.Validate(); err != nil {
		return nil, err
	}
	if quantity <= 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%d is not greater than 0", quantity))
	}

	return &Line{
		productID: productID,
		quantity:  quantity,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// RestoreLine reconstructs a line from persistence, re-checking the
// delivered-count invariant.
func RestoreLine(productID kernel.UUID, quantity int, deliveredCount int) (*Line, error) {
	l, err := NewLine(productID, quantity)
	if err != nil {
		return nil, err
	}
	if deliveredCount < 0 || deliveredCount > quantity {
		return nil, errs.NewValueIsOutOfRangeError("delivered count", deliveredCount, 0, quantity)
	}
	l.deliveredCount = deliveredCount
	return l, nil
}

// Validate ensures the line was built through a constructor.
func (l *Line) Validate() error {
	if l == nil {
		return ErrLineIsNotConstructed
	}
	return l.guard.Validate(ErrLineIsNotConstructed)
}

// ProductID returns the catalog item this line refers to.
func (l *Line) ProductID() kernel.UUID {
	return l.productID
}

// Quantity returns the total requested quantity.
func (l *Line) Quantity() int {
	return l.quantity
}

// DeliveredCount returns how many units have been delivered so far.
func (l *Line) DeliveredCount() int {
	return l.deliveredCount
}

// IsDelivered reports whether every requested unit has been delivered.
func (l *Line) IsDelivered() bool {
	return l.deliveredCount >= l.quantity
}

// addQuantity grows the requested quantity by a merged submission. The
// delivered count is deliberately left untouched: the added units are
// undelivered, which the derived order status reflects.
func (l *Line) addQuantity(amount int) error {
	if amount <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%d is not greater than 0", amount))
	}
	l.quantity += amount
	return nil
}

// setDelivered marks the whole line delivered or undelivered.
func (l *Line) setDelivered(delivered bool) {
	if delivered {
		l.deliveredCount = l.quantity
	} else {
		l.deliveredCount = 0
	}
}

// setDeliveredCount assigns a delivered count, clamping out-of-range input
// into [0, quantity]. Clamping, not failing, is intentional: displays send
// raw counter values.
func (l *Line) setDeliveredCount(count int) {
	if count < 0 {
		count = 0
	}
	if count > l.quantity {
		count = l.quantity
	}
	l.deliveredCount = count
}
