package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Product is a catalog entry (a sneaker model). StockQuantity is the
// denormalized total across variations; the sale and variation paths keep it
// in sync inside the same transaction that mutates variation stock.
type Product struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	AccountID    uuid.UUID `gorm:"type:uuid;index;not null"`
	Name         string    `gorm:"index;not null"`
	StandardCost decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	// Per-unit packaging costs: caixinha, saquinho, etiqueta
	CostBox        decimal.Decimal  `gorm:"type:decimal(10,2);not null;default:0"`
	CostBag        decimal.Decimal  `gorm:"type:decimal(10,2);not null;default:0"`
	CostLabel      decimal.Decimal  `gorm:"type:decimal(10,2);not null;default:0"`
	SuggestedPrice *decimal.Decimal `gorm:"type:decimal(10,2)"`
	ImageURL       *string
	StockQuantity  int        `gorm:"not null;default:0"`
	MinStockLevel  int        `gorm:"not null;default:5"`
	SupplierID     *uuid.UUID `gorm:"type:uuid;index"`
	CreatedAt      time.Time
	UpdatedAt      time.Time

	Supplier   *Supplier          `gorm:"foreignKey:SupplierID"`
	Variations []ProductVariation `gorm:"foreignKey:ProductID"`
}

// ProductVariation is a color/size unit of a Product with its own stock.
type ProductVariation struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	AccountID     uuid.UUID `gorm:"type:uuid;index;not null"`
	ProductID     uuid.UUID `gorm:"type:uuid;index;not null"`
	Color         string    `gorm:"not null"`
	Size          string    `gorm:"not null"`
	StockQuantity int       `gorm:"not null;default:0"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
