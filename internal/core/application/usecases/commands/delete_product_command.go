package commands

import (
	"comanda/internal/core/domain/model/kernel"
	"comanda/internal/pkg/errs"
	"comanda/internal/pkg/guard"
)

// DeleteProductCommand removes a product from the catalog. Products still
// referenced by order lines cannot be removed.
type DeleteProductCommand struct {
	productID kernel.UUID

	guard guard.ConstructorGuard
}

func NewDeleteProductCommand(productID kernel.UUID) (DeleteProductCommand, error) {
	if err := productID.Validate(); err != nil {
		return DeleteProductCommand{}, errs.NewValueIsRequiredErrorWithCause("productID", err)
	}

	return DeleteProductCommand{
		productID: productID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (c DeleteProductCommand) ProductID() kernel.UUID {
	return c.productID
}

func (c DeleteProductCommand) Validate() error {
	return c.guard.Validate(errs.NewValueIsInvalidError("DeleteProductCommand"))
}
