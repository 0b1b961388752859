package commands

import (
	"context"

	"comanda/internal/core/domain/model/kernel"
	"comanda/internal/core/domain/model/order"
	"comanda/internal/core/domain/model/payment"
	"comanda/internal/core/domain/model/product"
	"comanda/internal/core/ports"
	"comanda/internal/pkg/errs"
)

// loadOrderProducts fetches the products referenced by the order's lines.
func loadOrderProducts(ctx context.Context,
	products ports.ProductRepository, o *order.Order) (map[kernel.UUID]*product.Product, error) {
	ids := make([]kernel.UUID, 0, len(o.Lines()))
	for _, line := range o.Lines() {
		ids = append(ids, line.ProductID())
	}
	return products.GetByIDs(ctx, ids)
}

// newOrderView assembles the snapshot sent to clients and displays.
func newOrderView(o *order.Order, tableNumber int,
	products map[kernel.UUID]*product.Product) (ports.OrderView, error) {
	items := make([]ports.OrderItemView, 0, len(o.Lines()))
	for _, line := range o.Lines() {
		prod, ok := products[line.ProductID()]
		if !ok {
			return ports.OrderView{}, errs.NewObjectNotFoundError("product", line.ProductID().String())
		}
		items = append(items, ports.OrderItemView{
			ProductID:      line.ProductID().String(),
			Name:           prod.Name(),
			Price:          prod.Price(),
			Quantity:       line.Quantity(),
			Delivered:      line.IsDelivered(),
			DeliveredCount: line.DeliveredCount(),
		})
	}

	return ports.OrderView{
		ID:          o.ID().String(),
		TableNumber: tableNumber,
		CreatedAt:   o.CreatedAt(),
		Status:      o.Status().String(),
		Items:       items,
		Paid:        o.IsPaid(),
	}, nil
}

func newPaymentView(p *payment.Payment) ports.PaymentView {
	return ports.PaymentView{
		ID:        p.ID().String(),
		OrderID:   p.OrderID().String(),
		Method:    p.Method().String(),
		Total:     p.Total(),
		Tip:       p.Tip(),
		CreatedAt: p.CreatedAt(),
	}
}

func newProductView(p *product.Product) ports.ProductView {
	return ports.ProductView{
		ID:       p.ID().String(),
		Name:     p.Name(),
		Price:    p.Price(),
		ImageURL: p.ImageURL(),
	}
}
