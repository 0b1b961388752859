package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetPaymentsSummaryQueryHandler computes the payment aggregate in the
// database so the dashboard never pages through rows.
type GetPaymentsSummaryQueryHandler struct {
	db *gorm.DB
}

// NewGetPaymentsSummaryQueryHandler creates a handler for payment summaries.
func NewGetPaymentsSummaryQueryHandler(db *gorm.DB) GetPaymentsSummaryQueryHandler {
	return GetPaymentsSummaryQueryHandler{db: db}
}

func (h GetPaymentsSummaryQueryHandler) Handle(
	ctx context.Context,
	query GetPaymentsSummaryQuery,
) (GetPaymentsSummaryQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetPaymentsSummaryQueryResponse{}, err
	}

	sql, args := paymentsWindowSQL(`
		SELECT COUNT(*), COALESCE(SUM(total), 0), COALESCE(SUM(tip), 0)
		FROM payments
	`, query.From(), query.To())

	var response GetPaymentsSummaryQueryResponse
	row := h.db.WithContext(ctx).Raw(sql, args...).Row()
	if err := row.Scan(&response.Count, &response.Total, &response.Tip); err != nil {
		return GetPaymentsSummaryQueryResponse{}, err
	}

	return response, nil
}
