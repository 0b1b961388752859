package services

import (
	"comanda/internal/core/domain/model/kernel"
	"comanda/internal/core/domain/model/order"
	"comanda/internal/core/domain/model/product"
	"comanda/internal/pkg/errs"
)

// OrderBill is a domain service that prices an order at charge time.
//
// The total is Σ(line quantity × current catalog price). Current prices
// are used deliberately, not prices cached when the line was created: a
// price change between ordering and paying is captured by the payment.
type OrderBill struct{}

// NewOrderBill creates an OrderBill instance.
func NewOrderBill() OrderBill {
	return OrderBill{}
}

// Total computes the chargeable amount for the order from the supplied
// catalog products, keyed by product id. Every line must resolve to a
// product; a missing product means the catalog and the order diverged and
// is reported as not found.
func (OrderBill) Total(o *order.Order, products map[kernel.UUID]*product.Product) (float64, error) {
	if err := o.Validate(); err != nil {
		return 0, err
	}

	var total float64
	for _, line := range o.Lines() {
		p, ok := products[line.ProductID()]
		if !ok {
			return 0, errs.NewObjectNotFoundError("product", line.ProductID().String())
		}
		total += float64(line.Quantity()) * p.Price()
	}

	return total, nil
}
