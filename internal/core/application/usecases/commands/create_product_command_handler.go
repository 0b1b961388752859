package commands

import (
	"context"

	"comanda/internal/core/domain/model/kernel"
	"comanda/internal/core/domain/model/product"
	"comanda/internal/core/ports"
)

// CreateProductCommandHandler persists new catalog items.
type CreateProductCommandHandler struct {
	uowFactory CatalogUoWFactory
}

// NewCreateProductCommandHandler creates a handler for catalog additions.
func NewCreateProductCommandHandler(uowFactory CatalogUoWFactory) CreateProductCommandHandler {
	return CreateProductCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h *CreateProductCommandHandler) Handle(ctx context.Context,
	cmd CreateProductCommand) (ports.ProductView, error) {
	if err := cmd.Validate(); err != nil {
		return ports.ProductView{}, err
	}

	prod, err := product.NewProduct(kernel.NewUUID(), cmd.Name(), cmd.Price(), cmd.ImageURL())
	if err != nil {
		return ports.ProductView{}, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return ports.ProductView{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.ProductRepository().Add(ctx, prod); err != nil {
		return ports.ProductView{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return ports.ProductView{}, err
	}

	return newProductView(prod), nil
}
