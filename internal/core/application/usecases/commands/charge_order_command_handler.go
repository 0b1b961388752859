package commands

import (
	"context"
	"time"

	"comanda/internal/core/domain/model/kernel"
	"comanda/internal/core/domain/model/payment"
	"comanda/internal/core/domain/services"
	"comanda/internal/core/ports"
)

// ChargeOrderCommandHandler settles an order. The order must be fully
// delivered and not yet charged; total is priced from the current catalog
// and the recorded payment is broadcast as order_paid.
//
// Example:
//
//	handler := NewChargeOrderCommandHandler(uowFactory, bill, notifier)
//	cmd, _ := NewChargeOrderCommand(orderID, payment.Card, 2.50)
//
//	receipt, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("charge failed: %w", err)
//	}
type ChargeOrderCommandHandler struct {
	uowFactory ChargingUoWFactory
	bill       services.OrderBill
	notifier   ports.OrderNotifier
}

// NewChargeOrderCommandHandler creates a handler for order settlement.
func NewChargeOrderCommandHandler(uowFactory ChargingUoWFactory,
	bill services.OrderBill, notifier ports.OrderNotifier) ChargeOrderCommandHandler {
	return ChargeOrderCommandHandler{
		uowFactory: uowFactory,
		bill:       bill,
		notifier:   notifier,
	}
}

func (h *ChargeOrderCommandHandler) Handle(ctx context.Context,
	cmd ChargeOrderCommand) (ports.PaymentView, error) {
	if err := cmd.Validate(); err != nil {
		return ports.PaymentView{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return ports.PaymentView{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	target, err := uow.OrderRepository().Get(ctx, cmd.OrderID())
	if err != nil {
		return ports.PaymentView{}, err
	}

	if err = target.EnsureChargeable(); err != nil {
		return ports.PaymentView{}, err
	}

	products, err := loadOrderProducts(ctx, uow.ProductRepository(), target)
	if err != nil {
		return ports.PaymentView{}, err
	}

	total, err := h.bill.Total(target, products)
	if err != nil {
		return ports.PaymentView{}, err
	}

	pay, err := payment.NewPayment(kernel.NewUUID(), target.ID(), cmd.Method(),
		total, cmd.Tip(), time.Now().UTC())
	if err != nil {
		return ports.PaymentView{}, err
	}

	if err = uow.PaymentRepository().Add(ctx, pay); err != nil {
		return ports.PaymentView{}, err
	}
	target.MarkPaid()

	if err = uow.Commit(ctx); err != nil {
		return ports.PaymentView{}, err
	}

	h.notifier.Publish(ports.NewOrderPaidEvent(target.ID().String()))

	return newPaymentView(pay), nil
}
