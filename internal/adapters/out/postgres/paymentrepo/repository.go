package paymentrepo

import (
	"context"
	"errors"

	"comanda/internal/core/domain/model/kernel"
	"comanda/internal/core/domain/model/payment"
	"comanda/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormPaymentRepository implements PaymentRepository using GORM.
type GormPaymentRepository struct {
	db *gorm.DB
}

// NewGormPaymentRepository creates a new GORM payment repository.
func NewGormPaymentRepository(db *gorm.DB) *GormPaymentRepository {
	return &GormPaymentRepository{db: db}
}

// Add records a payment. A second payment for the same order trips the
// unique index and surfaces as a Conflict error. Requires the connection
// to be opened with TranslateError so duplicate keys map to
// gorm.ErrDuplicatedKey.
func (r *GormPaymentRepository) Add(ctx context.Context, p *payment.Payment) error {
	if err := p.Validate(); err != nil {
		return err
	}

	dto := fromDomain(p)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return errs.NewConflictErrorWithCause("payment", "order already charged", err)
		}
		return err
	}

	return nil
}

// GetByOrderID retrieves the payment recorded for an order.
func (r *GormPaymentRepository) GetByOrderID(ctx context.Context,
	orderID kernel.UUID) (*payment.Payment, error) {
	if err := orderID.Validate(); err != nil {
		return nil, err
	}

	var dto PaymentDTO
	if err := r.db.WithContext(ctx).First(&dto, "order_id = ?", orderID.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("payment for order", orderID.String())
		}
		return nil, err
	}

	return toDomain(dto)
}
