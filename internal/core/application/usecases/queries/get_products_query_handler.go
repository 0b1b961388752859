package queries

import (
	"context"

	"comanda/internal/core/ports"

	"gorm.io/gorm"
)

// GetProductsQueryHandler lists the catalog for menus and admin screens.
type GetProductsQueryHandler struct {
	db *gorm.DB
}

// NewGetProductsQueryHandler creates a handler for catalog listings.
func NewGetProductsQueryHandler(db *gorm.DB) GetProductsQueryHandler {
	return GetProductsQueryHandler{db: db}
}

func (h GetProductsQueryHandler) Handle(
	ctx context.Context,
	query GetProductsQuery,
) ([]ports.ProductView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT id, name, price, image_url
		FROM products
		ORDER BY name
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	products := make([]ports.ProductView, 0)
	for rows.Next() {
		var view ports.ProductView
		if err = rows.Scan(&view.ID, &view.Name, &view.Price, &view.ImageURL); err != nil {
			return nil, err
		}
		products = append(products, view)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return products, nil
}
