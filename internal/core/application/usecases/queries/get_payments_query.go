package queries

import (
	"errors"
	"time"

	"comanda/internal/pkg/errs"
	"comanda/internal/pkg/guard"
)

var ErrGetPaymentsQueryIsNotConstructed = errors.New(
	"GetPaymentsQuery must be created via NewGetPaymentsQuery constructor",
)

// GetPaymentsQuery retrieves recorded payments, optionally restricted to a
// time window. Nil bounds leave that side of the window open.
type GetPaymentsQuery struct {
	from *time.Time
	to   *time.Time

	guard guard.ConstructorGuard
}

// NewGetPaymentsQuery creates a payments listing query. The bounds are
// inclusive; a from after to is rejected.
func NewGetPaymentsQuery(from, to *time.Time) (GetPaymentsQuery, error) {
	if from != nil && to != nil && from.After(*to) {
		return GetPaymentsQuery{}, errs.NewValueIsInvalidError("from")
	}

	return GetPaymentsQuery{
		from:  from,
		to:    to,
		guard: guard.NewConstructorGuard(),
	}, nil
}

func (q GetPaymentsQuery) From() *time.Time {
	return q.from
}

func (q GetPaymentsQuery) To() *time.Time {
	return q.to
}

// Validate ensures the query was created through the constructor.
func (q GetPaymentsQuery) Validate() error {
	return q.guard.Validate(ErrGetPaymentsQueryIsNotConstructed)
}
