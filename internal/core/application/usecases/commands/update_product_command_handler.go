package commands

import (
	"context"

	"comanda/internal/core/ports"
)

// UpdateProductCommandHandler applies partial catalog updates.
type UpdateProductCommandHandler struct {
	uowFactory CatalogUoWFactory
}

// NewUpdateProductCommandHandler creates a handler for catalog updates.
func NewUpdateProductCommandHandler(uowFactory CatalogUoWFactory) UpdateProductCommandHandler {
	return UpdateProductCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h *UpdateProductCommandHandler) Handle(ctx context.Context,
	cmd UpdateProductCommand) (ports.ProductView, error) {
	if err := cmd.Validate(); err != nil {
		return ports.ProductView{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return ports.ProductView{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	productRepo := uow.ProductRepository()
	prod, err := productRepo.Get(ctx, cmd.ProductID())
	if err != nil {
		return ports.ProductView{}, err
	}

	if name := cmd.Name(); name != nil {
		if err = prod.Rename(*name); err != nil {
			return ports.ProductView{}, err
		}
	}
	if price := cmd.Price(); price != nil {
		if err = prod.ChangePrice(*price); err != nil {
			return ports.ProductView{}, err
		}
	}
	if imageURL := cmd.ImageURL(); imageURL != nil {
		prod.ChangeImageURL(*imageURL)
	}

	if err = productRepo.Update(ctx, prod); err != nil {
		return ports.ProductView{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return ports.ProductView{}, err
	}

	return newProductView(prod), nil
}
