package queries

import (
	"errors"
	"time"

	"comanda/internal/pkg/errs"
	"comanda/internal/pkg/guard"
)

var ErrGetPaymentsSummaryQueryIsNotConstructed = errors.New(
	"GetPaymentsSummaryQuery must be created via NewGetPaymentsSummaryQuery constructor",
)

// GetPaymentsSummaryQuery aggregates payment totals over an optional time
// window for the finance dashboard.
type GetPaymentsSummaryQuery struct {
	from *time.Time
	to   *time.Time

	guard guard.ConstructorGuard
}

// NewGetPaymentsSummaryQuery creates a summary query over the given window.
func NewGetPaymentsSummaryQuery(from, to *time.Time) (GetPaymentsSummaryQuery, error) {
	if from != nil && to != nil && from.After(*to) {
		return GetPaymentsSummaryQuery{}, errs.NewValueIsInvalidError("from")
	}

	return GetPaymentsSummaryQuery{
		from:  from,
		to:    to,
		guard: guard.NewConstructorGuard(),
	}, nil
}

func (q GetPaymentsSummaryQuery) From() *time.Time {
	return q.from
}

func (q GetPaymentsSummaryQuery) To() *time.Time {
	return q.to
}

// Validate ensures the query was created through the constructor.
func (q GetPaymentsSummaryQuery) Validate() error {
	return q.guard.Validate(ErrGetPaymentsSummaryQueryIsNotConstructed)
}

// GetPaymentsSummaryQueryResponse is the aggregate over the window: number
// of payments and the summed totals and tips.
type GetPaymentsSummaryQueryResponse struct {
	Count int64   `json:"count"`
	Total float64 `json:"total"`
	Tip   float64 `json:"tip"`
}
