// Package paymentrepo persists payments. The unique index on order_id is
// the hard backstop against double charging an order.
package paymentrepo

import (
	"time"

	"comanda/internal/core/domain/model/kernel"
	"comanda/internal/core/domain/model/payment"

	"github.com/google/uuid"
)

// PaymentDTO represents the database structure for payments.
type PaymentDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID   uuid.UUID `gorm:"type:uuid;uniqueIndex"`
	Method    string
	Total     float64
	Tip       float64
	CreatedAt time.Time `gorm:"index"`
}

// TableName overrides GORM's default naming to use "payments".
func (PaymentDTO) TableName() string {
	return "payments"
}

func fromDomain(p *payment.Payment) PaymentDTO {
	return PaymentDTO{
		ID:        p.ID().Bytes(),
		OrderID:   p.OrderID().Bytes(),
		Method:    p.Method().String(),
		Total:     p.Total(),
		Tip:       p.Tip(),
		CreatedAt: p.CreatedAt(),
	}
}

func toDomain(dto PaymentDTO) (*payment.Payment, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return nil, err
	}

	method, err := payment.MethodFromString(dto.Method)
	if err != nil {
		return nil, err
	}

	return payment.RestorePayment(id, orderID, method, dto.Total, dto.Tip, dto.CreatedAt)
}
