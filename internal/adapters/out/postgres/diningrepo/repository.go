package diningrepo

import (
	"context"
	"errors"

	"comanda/internal/core/domain/model/dining"
	"comanda/internal/core/domain/model/kernel"
	"comanda/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormTableRepository implements TableRepository using GORM.
type GormTableRepository struct {
	db *gorm.DB
}

// NewGormTableRepository creates a new GORM table repository.
func NewGormTableRepository(db *gorm.DB) *GormTableRepository {
	return &GormTableRepository{db: db}
}

// ObtainByNumber returns the table with the given number, inserting it
// when absent, and locks its row until the surrounding transaction ends.
// The lock serializes concurrent submissions for the same table, so only
// one of them can open a new order.
func (r *GormTableRepository) ObtainByNumber(ctx context.Context, number int) (*dining.Table, error) {
	if number <= 0 {
		return nil, errs.NewValueIsInvalidError("number")
	}

	dto := TableDTO{
		ID:     kernel.NewUUID().Bytes(),
		Number: number,
	}
	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "number"}},
			DoNothing: true,
		}).
		Create(&dto).Error
	if err != nil {
		return nil, err
	}

	var found TableDTO
	err = r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&found, "number = ?", number).Error
	if err != nil {
		return nil, err
	}

	return toDomain(found)
}

// Get retrieves a table by ID.
func (r *GormTableRepository) Get(ctx context.Context, id kernel.UUID) (*dining.Table, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto TableDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("table", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}
