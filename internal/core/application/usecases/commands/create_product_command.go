package commands

import (
	"comanda/internal/pkg/errs"
	"comanda/internal/pkg/guard"
)

// CreateProductCommand adds a new item to the catalog.
type CreateProductCommand struct {
	name     string
	price    float64
	imageURL string

	guard guard.ConstructorGuard
}

func NewCreateProductCommand(name string, price float64, imageURL string) (CreateProductCommand, error) {
	if name == "" {
		return CreateProductCommand{}, errs.NewValueIsRequiredError("name")
	}
	if price < 0 {
		return CreateProductCommand{}, errs.NewValueIsInvalidError("price")
	}

	return CreateProductCommand{
		name:     name,
		price:    price,
		imageURL: imageURL,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

func (c CreateProductCommand) Name() string {
	return c.name
}

func (c CreateProductCommand) Price() float64 {
	return c.price
}

func (c CreateProductCommand) ImageURL() string {
	return c.imageURL
}

func (c CreateProductCommand) Validate() error {
	return c.guard.Validate(errs.NewValueIsInvalidError("CreateProductCommand"))
}
