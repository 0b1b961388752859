package order

import (
	"errors"
	"time"

	"comanda/internal/core/domain/model/kernel"
	"comanda/internal/pkg/errs"
	"comanda/internal/pkg/guard"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not
	// created through NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder")

	// ErrNoItems is returned when a submission carries an empty item list.
	ErrNoItems = errs.NewValueIsRequiredError("items")
)

// Item is one entry of a submission: a catalog item and how many units of
// it the guest wants added to the table's order.
type Item struct {
	ProductID kernel.UUID
	Quantity  int
}

// Validate checks that the item references a constructed product id and a
// positive quantity.
func (i Item) Validate() error {
	if err := i.ProductID.Validate(); err != nil {
		return err
	}
	if i.Quantity <= 0 {
		return errs.NewValueIsInvalidError("quantity")
	}
	return nil
}

// Order is the aggregate root for one table visit. It collects lines as
// guests keep ordering, tracks per-line delivery, and derives its status
// from the lines. An order stays open until a payment is recorded for it;
// a paid order is closed and never mutated again.
//
// Invariants:
//   - line product ids are unique within the order
//   - status equals deriveStatus(lines) except immediately after an
//     explicit ChangeStatus call
//   - a paid order rejects merges and delivery updates
type Order struct {
	id        kernel.UUID
	tableID   kernel.UUID
	createdAt time.Time
	status    Status
	lines     []*Line
	paid      bool

	guard guard.ConstructorGuard
}

// NewOrder creates an open order for a table with no lines yet, in
// pending status.
func NewOrder(id kernel.UUID, tableID kernel.UUID, createdAt time.Time) (*Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if err := tableID.Validate(); err != nil {
		return nil, err
	}

	return &Order{
		id:        id,
		tableID:   tableID,
		createdAt: createdAt,
		status:    Pending,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// RestoreOrder reconstructs an order from persistence, including whether a
// payment exists for it.
func RestoreOrder(
	id kernel.UUID,
	tableID kernel.UUID,
	createdAt time.Time,
	status Status,
	lines []*Line,
	paid bool,
) (*Order, error) {
	o, err := NewOrder(id, tableID, createdAt)
	if err != nil {
		return nil, err
	}
	if err = status.Validate(); err != nil {
		return nil, err
	}
	for _, l := range lines {
		if err = l.Validate(); err != nil {
			return nil, err
		}
	}

	o.status = status
	o.lines = lines
	o.paid = paid
	return o, nil
}

// Validate ensures the order was built through a constructor.
func (o *Order) Validate() error {
	if o == nil {
		return ErrOrderIsNotConstructed
	}
	return o.guard.Validate(ErrOrderIsNotConstructed)
}

// ID returns the order identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// TableID returns the identifier of the table the order belongs to.
func (o *Order) TableID() kernel.UUID {
	return o.tableID
}

// CreatedAt returns when the order was opened.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// Status returns the current order status.
func (o *Order) Status() Status {
	return o.status
}

// Lines returns the order's lines in insertion order.
func (o *Order) Lines() []*Line {
	return o.lines
}

// IsPaid reports whether a payment has been recorded for the order.
func (o *Order) IsPaid() bool {
	return o.paid
}

// IsEmpty reports whether the order has no lines yet.
func (o *Order) IsEmpty() bool {
	return len(o.lines) == 0
}

// Line returns the line for the given product, or an ObjectNotFoundError.
func (o *Order) Line(productID kernel.UUID) (*Line, error) {
	for _, l := range o.lines {
		if l.ProductID().IsEqual(productID) {
			return l, nil
		}
	}
	return nil, errs.NewObjectNotFoundError("order line", productID.String())
}

// Merge folds a submission into the order. Quantities of already-present
// products add up, new products get fresh lines with nothing delivered.
// The status is recomputed afterwards, so an order that was delivered
// drops back once undelivered units exist.
func (o *Order) Merge(items []Item) error {
	if o.paid {
		return errs.NewInvalidStateError("merge items", "paid")
	}
	if len(items) == 0 {
		return ErrNoItems
	}
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
	}

	for _, item := range items {
		existing, err := o.Line(item.ProductID)
		if err == nil {
			if err = existing.addQuantity(item.Quantity); err != nil {
				return err
			}
			continue
		}

		line, err := NewLine(item.ProductID, item.Quantity)
		if err != nil {
			return err
		}
		o.lines = append(o.lines, line)
	}

	o.recompute()
	return nil
}

// SetLineDelivered marks the line for the given product fully delivered or
// fully undelivered and recomputes the order status.
func (o *Order) SetLineDelivered(productID kernel.UUID, delivered bool) error {
	if o.paid {
		return errs.NewInvalidStateError("set line delivered", "paid")
	}

	line, err := o.Line(productID)
	if err != nil {
		return err
	}

	line.setDelivered(delivered)
	o.recompute()
	return nil
}

// SetLineDeliveredCount assigns the delivered count of the line for the
// given product, clamping into [0, quantity], and recomputes the status.
// Out-of-range counts never fail.
func (o *Order) SetLineDeliveredCount(productID kernel.UUID, count int) error {
	if o.paid {
		return errs.NewInvalidStateError("set delivered count", "paid")
	}

	line, err := o.Line(productID)
	if err != nil {
		return err
	}

	line.setDeliveredCount(count)
	o.recompute()
	return nil
}

// ChangeStatus sets the status explicitly. This is the staff-facing
// override; the next line mutation derives the status from counts again.
func (o *Order) ChangeStatus(status Status) error {
	if o.paid {
		return errs.NewInvalidStateError("change status", "paid")
	}
	if err := status.Validate(); err != nil {
		return err
	}

	o.status = status
	return nil
}

// EnsureChargeable checks the payment preconditions: the order must not
// already be paid (Conflict) and must be fully delivered (InvalidState).
func (o *Order) EnsureChargeable() error {
	if o.paid {
		return errs.NewConflictError("payment", "order already charged")
	}
	if o.status != Delivered {
		return errs.NewInvalidStateError("charge", o.status.String())
	}
	return nil
}

// MarkPaid records that a payment now exists for the order. Called by the
// payment flow after the payment was persisted.
func (o *Order) MarkPaid() {
	o.paid = true
}

func (o *Order) recompute() {
	o.status = deriveStatus(o.lines)
}
