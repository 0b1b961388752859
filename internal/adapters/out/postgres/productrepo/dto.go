// Package productrepo persists the product catalog.
package productrepo

import (
	"comanda/internal/core/domain/model/kernel"
	"comanda/internal/core/domain/model/product"

	"github.com/google/uuid"
)

// ProductDTO represents the database structure for catalog items.
type ProductDTO struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name     string
	Price    float64
	ImageURL string
}

// TableName overrides GORM's default naming to use "products".
func (ProductDTO) TableName() string {
	return "products"
}

func fromDomain(p *product.Product) ProductDTO {
	return ProductDTO{
		ID:       p.ID().Bytes(),
		Name:     p.Name(),
		Price:    p.Price(),
		ImageURL: p.ImageURL(),
	}
}

func toDomain(dto ProductDTO) (*product.Product, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return product.RestoreProduct(id, dto.Name, dto.Price, dto.ImageURL)
}
