package queries

import (
	"context"
	"strings"
	"time"

	"comanda/internal/core/ports"

	"gorm.io/gorm"
)

// GetPaymentsQueryHandler lists recorded payments newest first for the
// finance screens.
type GetPaymentsQueryHandler struct {
	db *gorm.DB
}

// NewGetPaymentsQueryHandler creates a handler for payment listings.
func NewGetPaymentsQueryHandler(db *gorm.DB) GetPaymentsQueryHandler {
	return GetPaymentsQueryHandler{db: db}
}

func (h GetPaymentsQueryHandler) Handle(
	ctx context.Context,
	query GetPaymentsQuery,
) ([]ports.PaymentView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	sql, args := paymentsWindowSQL(`
		SELECT id, order_id, method, total, tip, created_at
		FROM payments
	`, query.From(), query.To())
	sql += " ORDER BY created_at DESC"

	rows, err := h.db.WithContext(ctx).Raw(sql, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	payments := make([]ports.PaymentView, 0)
	for rows.Next() {
		var view ports.PaymentView
		var createdAt time.Time

		err = rows.Scan(
			&view.ID,
			&view.OrderID,
			&view.Method,
			&view.Total,
			&view.Tip,
			&createdAt,
		)
		if err != nil {
			return nil, err
		}

		view.CreatedAt = createdAt
		payments = append(payments, view)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return payments, nil
}

// paymentsWindowSQL appends the optional created_at bounds shared by the
// payment listing and summary queries.
func paymentsWindowSQL(base string, from, to *time.Time) (string, []any) {
	conditions := make([]string, 0, 2)
	args := make([]any, 0, 2)

	if from != nil {
		conditions = append(conditions, "created_at >= ?")
		args = append(args, *from)
	}
	if to != nil {
		conditions = append(conditions, "created_at <= ?")
		args = append(args, *to)
	}
	if len(conditions) > 0 {
		base += " WHERE " + strings.Join(conditions, " AND ")
	}

	return base, args
}
