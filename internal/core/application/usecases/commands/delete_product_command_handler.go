package commands

import (
	"context"

	"comanda/internal/pkg/errs"
)

// DeleteProductCommandHandler removes catalog items that no order line
// references.
type DeleteProductCommandHandler struct {
	uowFactory CatalogUoWFactory
}

// NewDeleteProductCommandHandler creates a handler for catalog deletions.
func NewDeleteProductCommandHandler(uowFactory CatalogUoWFactory) DeleteProductCommandHandler {
	return DeleteProductCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h *DeleteProductCommandHandler) Handle(ctx context.Context, cmd DeleteProductCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	productRepo := uow.ProductRepository()
	prod, err := productRepo.Get(ctx, cmd.ProductID())
	if err != nil {
		return err
	}

	referenced, err := uow.OrderRepository().HasLinesForProduct(ctx, prod.ID())
	if err != nil {
		return err
	}
	if referenced {
		return errs.NewConflictError("product", "product is referenced by existing orders")
	}

	if err = productRepo.Delete(ctx, prod.ID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
