// Package customerrepo implements the contact directory over the customers
// table. The user subsystem owns customer records; this adapter only reads
// the phone number the notifier needs.
package customerrepo

import (
	"github.com/google/uuid"
)

// CustomerDTO represents the database structure for customer contacts.
type CustomerDTO struct {
	ID    uuid.UUID `gorm:"type:uuid;primaryKey"`
	Phone string    `gorm:"not null"`
}

// TableName specifies the database table name for customer entities.
func (CustomerDTO) TableName() string {
	return "customers"
}
