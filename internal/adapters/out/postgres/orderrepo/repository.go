package orderrepo

import (
	"context"
	"errors"

	"comanda/internal/core/domain/model/kernel"
	"comanda/internal/core/domain/model/order"
	"comanda/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormOrderRepository implements OrderRepository using GORM.
type GormOrderRepository struct {
	db *gorm.DB
}

// NewGormOrderRepository creates a new GORM order repository.
func NewGormOrderRepository(db *gorm.DB) *GormOrderRepository {
	return &GormOrderRepository{db: db}
}

// Add saves a new order and its lines to the database.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// Update saves an existing order. Lines are upserted on the (order,
// product) key; merging only ever adds lines or raises quantities, so rows
// are never removed here.
func (r *GormOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&OrderDTO{}).
		Where("id = ?", dto.ID).
		Update("status", dto.Status)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("order", aggregate.ID().String())
	}

	if len(dto.Lines) == 0 {
		return nil
	}

	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "order_id"}, {Name: "product_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"quantity", "delivered_count"}),
		}).
		Create(&dto.Lines).Error
}

// Get retrieves an order by ID with its lines. The paid flag comes from
// the payments table.
func (r *GormOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto OrderDTO
	err := r.db.WithContext(ctx).
		Preload("Lines").
		First(&dto, "id = ?", id.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", id.String())
		}
		return nil, err
	}

	paid, err := r.isPaid(ctx, dto)
	if err != nil {
		return nil, err
	}

	return toDomain(dto, paid)
}

// GetOpenByTable retrieves the most recent unpaid order for a table.
// Returns ObjectNotFound when the table has no open order.
func (r *GormOrderRepository) GetOpenByTable(ctx context.Context,
	tableID kernel.UUID) (*order.Order, error) {
	if err := tableID.Validate(); err != nil {
		return nil, err
	}

	var dto OrderDTO
	err := r.db.WithContext(ctx).
		Preload("Lines").
		Where("table_id = ?", tableID.Bytes()).
		Where("NOT EXISTS (SELECT 1 FROM payments p WHERE p.order_id = orders.id)").
		Order("created_at DESC").
		First(&dto).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("open order for table", tableID.String())
		}
		return nil, err
	}

	return toDomain(dto, false)
}

// HasLinesForProduct reports whether any order line references the product.
func (r *GormOrderRepository) HasLinesForProduct(ctx context.Context,
	productID kernel.UUID) (bool, error) {
	if err := productID.Validate(); err != nil {
		return false, err
	}

	var count int64
	err := r.db.WithContext(ctx).Model(&OrderLineDTO{}).
		Where("product_id = ?", productID.Bytes()).
		Count(&count).Error
	if err != nil {
		return false, err
	}

	return count > 0, nil
}

func (r *GormOrderRepository) isPaid(ctx context.Context, dto OrderDTO) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Table("payments").
		Where("order_id = ?", dto.ID).
		Count(&count).Error
	if err != nil {
		return false, err
	}

	return count > 0, nil
}
