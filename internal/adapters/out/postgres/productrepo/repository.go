package productrepo

import (
	"context"
	"errors"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormCatalogGateway implements CatalogGateway using GORM.
// Price reads run outside any order transaction: the price is snapshotted
// onto the line at add time, so a torn read cannot corrupt an order.
type GormCatalogGateway struct {
	db *gorm.DB
}

// NewGormCatalogGateway creates a new GORM catalog gateway.
func NewGormCatalogGateway(db *gorm.DB) *GormCatalogGateway {
	return &GormCatalogGateway{db: db}
}

// GetUnitPrice resolves the current unit price of a product.
func (g *GormCatalogGateway) GetUnitPrice(ctx context.Context, productID kernel.UUID) (kernel.Price, error) {
	if err := productID.Validate(); err != nil {
		return kernel.Price{}, err
	}

	var dto ProductDTO
	err := g.db.WithContext(ctx).First(&dto, "id = ?", productID.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return kernel.Price{}, errs.NewObjectNotFoundError("product", productID.String())
		}
		return kernel.Price{}, err
	}

	return kernel.RestorePrice(dto.UnitPrice)
}

// Add inserts a product. Used by seeding and tests; the order core never
// writes to the catalog.
func (g *GormCatalogGateway) Add(ctx context.Context, productID kernel.UUID, name string, unitPrice kernel.Price) error {
	if err := productID.Validate(); err != nil {
		return err
	}
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}

	dto := ProductDTO{
		ID:        productID.Bytes(),
		Name:      name,
		UnitPrice: unitPrice.Decimal(),
	}
	return g.db.WithContext(ctx).Create(&dto).Error
}
