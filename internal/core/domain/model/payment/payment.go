package payment

import (
	"errors"
	"fmt"
	"time"

	"comanda/internal/core/domain/model/kernel"
	"comanda/internal/pkg/errs"
	"comanda/internal/pkg/guard"
)

// ErrPaymentIsNotConstructed is returned when a Payment instance was not
// created through NewPayment or RestorePayment.
var ErrPaymentIsNotConstructed = errors.New("Payment must be created via NewPayment or RestorePayment")

// Payment records the settlement of exactly one order. Its existence is
// what closes the order: closed orders disappear from the active view and
// are never merged into again. At most one payment may exist per order,
// which the store enforces with a unique index as well.
//
// The total is computed at charge time from current catalog prices, so
// price changes between ordering and paying are reflected in the amount.
type Payment struct {
	id        kernel.UUID
	orderID   kernel.UUID
	method    Method
	total     float64
	tip       float64
	createdAt time.Time

	guard guard.ConstructorGuard
}

// NewPayment creates a payment for an order. Total and tip must be
// non-negative and the method must be valid.
func NewPayment(
	id kernel.UUID,
	orderID kernel.UUID,
	method Method,
	total float64,
	tip float64,
	createdAt time.Time,
) (*Payment, error) {
	p := &Payment{
		createdAt: createdAt,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		p.setID(id),
		p.setOrderID(orderID),
		p.setMethod(method),
		p.setTotal(total),
		p.setTip(tip),
	); err != nil {
		return nil, err
	}

	return p, nil
}

// RestorePayment reconstructs a payment from persistence.
func RestorePayment(
	id kernel.UUID,
	orderID kernel.UUID,
	method Method,
	total float64,
	tip float64,
	createdAt time.Time,
) (*Payment, error) {
	return NewPayment(id, orderID, method, total, tip, createdAt)
}

// Validate ensures the payment was built through a constructor.
func (p *Payment) Validate() error {
	if p == nil {
		return ErrPaymentIsNotConstructed
	}
	return p.guard.Validate(ErrPaymentIsNotConstructed)
}

// ID returns the payment identifier.
func (p *Payment) ID() kernel.UUID {
	return p.id
}

// OrderID returns the identifier of the order this payment settles.
func (p *Payment) OrderID() kernel.UUID {
	return p.orderID
}

// Method returns how the order was paid.
func (p *Payment) Method() Method {
	return p.method
}

// Total returns the charged amount excluding tip.
func (p *Payment) Total() float64 {
	return p.total
}

// Tip returns the tip amount.
func (p *Payment) Tip() float64 {
	return p.tip
}

// CreatedAt returns when the payment was recorded.
func (p *Payment) CreatedAt() time.Time {
	return p.createdAt
}

func (p *Payment) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.id = id
	return nil
}

func (p *Payment) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	p.orderID = orderID
	return nil
}

func (p *Payment) setMethod(method Method) error {
	if err := method.Validate(); err != nil {
		return err
	}
	p.method = method
	return nil
}

func (p *Payment) setTotal(total float64) error {
	if total < 0 {
		return errs.NewValueIsInvalidErrorWithCause("total",
			fmt.Errorf("%v is negative", total))
	}
	p.total = total
	return nil
}

func (p *Payment) setTip(tip float64) error {
	if tip < 0 {
		return errs.NewValueIsInvalidErrorWithCause("tip",
			fmt.Errorf("%v is negative", tip))
	}
	p.tip = tip
	return nil
}
