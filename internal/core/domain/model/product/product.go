package product

import (
	"errors"
	"fmt"

	"comanda/internal/core/domain/model/kernel"
	"comanda/internal/pkg/errs"
	"comanda/internal/pkg/guard"
)

// ErrProductIsNotConstructed is returned when a Product instance was not
// created through NewProduct or RestoreProduct.
var ErrProductIsNotConstructed = errors.New("Product must be created via NewProduct or RestoreProduct")

// Product is a catalog item: something guests can order, with the price it
// is currently sold at. Prices are read at payment time, so changing a
// price here affects open orders when they are charged.
type Product struct {
	id       kernel.UUID
	name     string
	price    float64
	imageURL string

	guard guard.ConstructorGuard
}

// NewProduct creates a catalog item. Name must be non-empty and price
// non-negative; the image URL is optional.
func NewProduct(id kernel.UUID, name string, price float64, imageURL string) (*Product, error) {
	p := &Product{
		imageURL: imageURL,
		guard:    guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		p.setID(id),
		p.setName(name),
		p.setPrice(price),
	); err != nil {
		return nil, err
	}

	return p, nil
}

// RestoreProduct reconstructs a catalog item from persistence.
func RestoreProduct(id kernel.UUID, name string, price float64, imageURL string) (*Product, error) {
	return NewProduct(id, name, price, imageURL)
}

// Validate ensures the product was built through a constructor.
func (p *Product) Validate() error {
	if p == nil {
		return ErrProductIsNotConstructed
	}
	return p.guard.Validate(ErrProductIsNotConstructed)
}

// ID returns the product identifier.
func (p *Product) ID() kernel.UUID {
	return p.id
}

// Name returns the display name of the product.
func (p *Product) Name() string {
	return p.name
}

// Price returns the current selling price.
func (p *Product) Price() float64 {
	return p.price
}

// ImageURL returns the optional image location, empty when unset.
func (p *Product) ImageURL() string {
	return p.imageURL
}

// Rename changes the display name.
func (p *Product) Rename(name string) error {
	return p.setName(name)
}

// ChangePrice sets a new selling price. Open orders pick the new price up
// when they are charged.
func (p *Product) ChangePrice(price float64) error {
	return p.setPrice(price)
}

// ChangeImageURL replaces the image location.
func (p *Product) ChangeImageURL(imageURL string) {
	p.imageURL = imageURL
}

func (p *Product) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.id = id
	return nil
}

func (p *Product) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("product name")
	}
	p.name = name
	return nil
}

func (p *Product) setPrice(price float64) error {
	if price < 0 {
		return errs.NewValueIsInvalidErrorWithCause("product price",
			fmt.Errorf("%v is negative", price))
	}
	p.price = price
	return nil
}
