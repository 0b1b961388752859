package commands

import (
	"comanda/internal/core/domain/model/kernel"
	"comanda/internal/pkg/errs"
	"comanda/internal/pkg/guard"
)

// UpdateProductCommand changes catalog fields of an existing product.
// Nil fields are left untouched, matching PATCH semantics.
type UpdateProductCommand struct {
	productID kernel.UUID
	name      *string
	price     *float64
	imageURL  *string

	guard guard.ConstructorGuard
}

func NewUpdateProductCommand(productID kernel.UUID, name *string, price *float64,
	imageURL *string) (UpdateProductCommand, error) {
	if err := productID.Validate(); err != nil {
		return UpdateProductCommand{}, errs.NewValueIsRequiredErrorWithCause("productID", err)
	}
	if name != nil && *name == "" {
		return UpdateProductCommand{}, errs.NewValueIsRequiredError("name")
	}
	if price != nil && *price < 0 {
		return UpdateProductCommand{}, errs.NewValueIsInvalidError("price")
	}

	return UpdateProductCommand{
		productID: productID,
		name:      name,
		price:     price,
		imageURL:  imageURL,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (c UpdateProductCommand) ProductID() kernel.UUID {
	return c.productID
}

func (c UpdateProductCommand) Name() *string {
	return c.name
}

func (c UpdateProductCommand) Price() *float64 {
	return c.price
}

func (c UpdateProductCommand) ImageURL() *string {
	return c.imageURL
}

func (c UpdateProductCommand) Validate() error {
	return c.guard.Validate(errs.NewValueIsInvalidError("UpdateProductCommand"))
}
