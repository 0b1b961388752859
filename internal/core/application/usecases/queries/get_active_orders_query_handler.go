package queries

import (
	"context"
	"time"

	"comanda/internal/core/domain/model/order"
	"comanda/internal/core/ports"

	"gorm.io/gorm"
)

// GetActiveOrdersQueryHandler reads the unpaid orders with their lines in
// one round trip. An order is active while no payment row references it.
//
// Example:
//
//	handler := NewGetActiveOrdersQueryHandler(db)
//	query := NewGetActiveOrdersQuery()
//
//	board, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to load order board: %w", err)
//	}
type GetActiveOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetActiveOrdersQueryHandler creates a handler for the active order board.
func NewGetActiveOrdersQueryHandler(db *gorm.DB) GetActiveOrdersQueryHandler {
	return GetActiveOrdersQueryHandler{db: db}
}

// Handle returns the active orders oldest first, each with its full line
// detail so displays can render without further lookups.
func (h GetActiveOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetActiveOrdersQuery,
) ([]ports.OrderView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			o.id,
			t.number,
			o.created_at,
			o.status,
			l.product_id,
			l.quantity,
			l.delivered_count,
			p.name,
			p.price
		FROM orders o
		JOIN tables t ON t.id = o.table_id
		JOIN order_lines l ON l.order_id = o.id
		JOIN products p ON p.id = l.product_id
		WHERE NOT EXISTS (
			SELECT 1 FROM payments pay WHERE pay.order_id = o.id
		)
		ORDER BY o.created_at, o.id, p.name
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	views := make([]ports.OrderView, 0)
	index := make(map[string]int)

	for rows.Next() {
		var (
			orderID        string
			tableNumber    int
			createdAt      time.Time
			status         int
			productID      string
			quantity       int
			deliveredCount int
			name           string
			price          float64
		)

		err = rows.Scan(
			&orderID,
			&tableNumber,
			&createdAt,
			&status,
			&productID,
			&quantity,
			&deliveredCount,
			&name,
			&price,
		)
		if err != nil {
			return nil, err
		}

		pos, ok := index[orderID]
		if !ok {
			pos = len(views)
			index[orderID] = pos
			views = append(views, ports.OrderView{
				ID:          orderID,
				TableNumber: tableNumber,
				CreatedAt:   createdAt,
				Status:      order.Status(status).String(),
				Items:       make([]ports.OrderItemView, 0, 4),
			})
		}

		views[pos].Items = append(views[pos].Items, ports.OrderItemView{
			ProductID:      productID,
			Name:           name,
			Price:          price,
			Quantity:       quantity,
			Delivered:      deliveredCount >= quantity,
			DeliveredCount: deliveredCount,
		})
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return views, nil
}
