// Package diningrepo persists dining tables. Tables are created lazily the
// first time a number is used in a submission, and the row doubles as the
// serialization point for concurrent submissions to the same table.
package diningrepo

import (
	"comanda/internal/core/domain/model/dining"
	"comanda/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// TableDTO represents the database structure for dining tables.
type TableDTO struct {
	ID     uuid.UUID `gorm:"type:uuid;primaryKey"`
	Number int       `gorm:"uniqueIndex"`
}

// TableName overrides GORM's default naming to use "tables".
func (TableDTO) TableName() string {
	return "tables"
}

func fromDomain(table *dining.Table) TableDTO {
	return TableDTO{
		ID:     table.ID().Bytes(),
		Number: table.Number(),
	}
}

func toDomain(dto TableDTO) (*dining.Table, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return dining.RestoreTable(id, dto.Number)
}
