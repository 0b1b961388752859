package dining

import (
	"errors"
	"fmt"

	"comanda/internal/core/domain/model/kernel"
	"comanda/internal/pkg/errs"
	"comanda/internal/pkg/guard"
)

// ErrTableIsNotConstructed is returned when a Table instance was not created
// through NewTable or RestoreTable.
var ErrTableIsNotConstructed = errors.New("Table must be created via NewTable or RestoreTable")

// Table represents a physical restaurant table identified by its number.
// The number is the stable external identity printed on the table; the UUID
// is the internal identity used for references. Tables are created lazily
// on the first order submitted for an unknown number.
type Table struct {
	id     kernel.UUID
	number int

	guard guard.ConstructorGuard
}

// NewTable creates a table with the given number. The number must be
// positive; it is what guests and staff use to address the table.
func NewTable(id kernel.UUID, number int) (*Table, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if number <= 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause("table number",
			fmt.Errorf("%d is not greater than 0", number))
	}

	return &Table{
		id:     id,
		number: number,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// RestoreTable reconstructs a table from persistence.
func RestoreTable(id kernel.UUID, number int) (*Table, error) {
	return NewTable(id, number)
}

// Validate ensures the table was built through a constructor.
func (t *Table) Validate() error {
	if t == nil {
		return ErrTableIsNotConstructed
	}
	return t.guard.Validate(ErrTableIsNotConstructed)
}

// ID returns the internal identifier of the table.
func (t *Table) ID() kernel.UUID {
	return t.id
}

// Number returns the external table number.
func (t *Table) Number() int {
	return t.number
}
