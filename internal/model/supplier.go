package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Supplier is a sourcing contact. Its catalog is an ordered price list used
// only as a cost hint when recording stock entries.
type Supplier struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	AccountID   uuid.UUID `gorm:"type:uuid;index;not null"`
	Name        string    `gorm:"not null"`
	ContactName *string
	Phone       *string
	Email       *string
	Address     *string
	CreatedAt   time.Time
	UpdatedAt   time.Time

	Catalog []SupplierCatalogItem `gorm:"foreignKey:SupplierID"`
}

// SupplierCatalogItem is one {model, price} line of a supplier's catalog.
// Position preserves the order the seller entered them in.
type SupplierCatalogItem struct {
	ID         uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	SupplierID uuid.UUID       `gorm:"type:uuid;index;not null"`
	Model      string          `gorm:"not null"`
	Price      decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	Position   int             `gorm:"not null;default:0"`
}
