// Package productrepo implements the catalog gateway over the products
// table. The order core only ever asks it for a unit price; catalog
// management itself belongs to another system and only the columns needed
// here are mapped.
package productrepo

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ProductDTO represents the database structure for catalog products.
type ProductDTO struct {
	ID        uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Name      string          `gorm:"not null"`
	UnitPrice decimal.Decimal `gorm:"type:numeric(14,2)"`
}

// TableName specifies the database table name for product entities.
func (ProductDTO) TableName() string {
	return "products"
}
