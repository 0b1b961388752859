// Package orderrepo persists order aggregates. An order maps to one row in
// "orders" plus one row per line in "order_lines"; whether it is paid is
// derived from the presence of a payment row, never stored on the order.
package orderrepo

import (
	"time"

	"comanda/internal/core/domain/model/kernel"
	"comanda/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for order aggregates.
type OrderDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	TableID   uuid.UUID `gorm:"type:uuid;index"`
	CreatedAt time.Time `gorm:"index"`
	Status    int

	Lines []OrderLineDTO `gorm:"foreignKey:OrderID;references:ID"`
}

// TableName overrides GORM's default naming to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// OrderLineDTO is one product line of an order. A product appears at most
// once per order, enforced by the composite primary key.
type OrderLineDTO struct {
	OrderID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	ProductID      uuid.UUID `gorm:"type:uuid;primaryKey;index"`
	Quantity       int
	DeliveredCount int
}

// TableName overrides GORM's default naming to use "order_lines".
func (OrderLineDTO) TableName() string {
	return "order_lines"
}

func fromDomain(o *order.Order) OrderDTO {
	lines := make([]OrderLineDTO, 0, len(o.Lines()))
	for _, line := range o.Lines() {
		lines = append(lines, OrderLineDTO{
			OrderID:        o.ID().Bytes(),
			ProductID:      line.ProductID().Bytes(),
			Quantity:       line.Quantity(),
			DeliveredCount: line.DeliveredCount(),
		})
	}

	return OrderDTO{
		ID:        o.ID().Bytes(),
		TableID:   o.TableID().Bytes(),
		CreatedAt: o.CreatedAt(),
		Status:    int(o.Status()),
		Lines:     lines,
	}
}

func toDomain(dto OrderDTO, paid bool) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	tableID, err := kernel.UUIDFromBytes(dto.TableID[:])
	if err != nil {
		return nil, err
	}

	lines := make([]*order.Line, 0, len(dto.Lines))
	for _, lineDTO := range dto.Lines {
		productID, lineErr := kernel.UUIDFromBytes(lineDTO.ProductID[:])
		if lineErr != nil {
			return nil, lineErr
		}

		line, lineErr := order.RestoreLine(productID, lineDTO.Quantity, lineDTO.DeliveredCount)
		if lineErr != nil {
			return nil, lineErr
		}
		lines = append(lines, line)
	}

	return order.RestoreOrder(id, tableID, dto.CreatedAt, order.Status(dto.Status), lines, paid)
}
