package customerrepo

import (
	"context"
	"errors"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormContactDirectory implements ContactDirectory using GORM.
type GormContactDirectory struct {
	db *gorm.DB
}

// NewGormContactDirectory creates a new GORM contact directory.
func NewGormContactDirectory(db *gorm.DB) *GormContactDirectory {
	return &GormContactDirectory{db: db}
}

// GetPhone returns the customer's phone number. A row with a malformed
// number fails here rather than producing an undeliverable job downstream.
func (d *GormContactDirectory) GetPhone(ctx context.Context, ownerID kernel.UUID) (kernel.Phone, error) {
	if err := ownerID.Validate(); err != nil {
		return kernel.Phone{}, err
	}

	var dto CustomerDTO
	err := d.db.WithContext(ctx).First(&dto, "id = ?", ownerID.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return kernel.Phone{}, errs.NewObjectNotFoundError("customer", ownerID.String())
		}
		return kernel.Phone{}, err
	}

	return kernel.NewPhone(dto.Phone)
}

// Add inserts a customer contact. Used by seeding and tests.
func (d *GormContactDirectory) Add(ctx context.Context, ownerID kernel.UUID, phone kernel.Phone) error {
	if err := errors.Join(ownerID.Validate(), phone.Validate()); err != nil {
		return err
	}

	dto := CustomerDTO{
		ID:    ownerID.Bytes(),
		Phone: phone.String(),
	}
	return d.db.WithContext(ctx).Create(&dto).Error
}
