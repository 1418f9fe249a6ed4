package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Sale statuses follow the fulfillment flow of a marketplace order.
const (
	SaleStatusPending   = "Pendente"
	SaleStatusShipped   = "Enviado"
	SaleStatusDelivered = "Entregue"
	SaleStatusReturned  = "Devolvido"
)

// Sale records one unit sold. Cost columns are a snapshot taken at sale time;
// they are historical record and are never recalculated from the product,
// no matter how its costs change later. ProfitFinal is computed by the
// service from the snapshot and ValueReceived — never taken from the caller.
type Sale struct {
	ID          uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	AccountID   uuid.UUID  `gorm:"type:uuid;index;not null"`
	ProductID   uuid.UUID  `gorm:"type:uuid;index;not null"`
	PlatformID  uuid.UUID  `gorm:"type:uuid;index;not null"`
	VariationID *uuid.UUID `gorm:"type:uuid;index"`
	// Variation attributes frozen at sale time, kept even if the variation row
	// is later deleted.
	Color *string
	Size  *string

	CostProductSnapshot decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	CostBox             decimal.Decimal `gorm:"type:decimal(10,2);not null;default:0"`
	CostBag             decimal.Decimal `gorm:"type:decimal(10,2);not null;default:0"`
	CostLabel           decimal.Decimal `gorm:"type:decimal(10,2);not null;default:0"`
	CostOther           decimal.Decimal `gorm:"type:decimal(10,2);not null;default:0"`

	ValueGross    decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	ValueReceived decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	ProfitFinal   decimal.Decimal `gorm:"type:decimal(10,2);not null"`

	DateSale  time.Time `gorm:"index;not null"`
	Status    string    `gorm:"type:varchar(20);not null;default:'Pendente'"`
	CreatedAt time.Time
	UpdatedAt time.Time

	Product   *Product  `gorm:"foreignKey:ProductID"`
	Platform  *Platform `gorm:"foreignKey:PlatformID"`
	Variation *ProductVariation `gorm:"foreignKey:VariationID"`
}

// SnapshotCosts returns the sale's frozen cost breakdown.
func (s *Sale) SnapshotCosts() CostBreakdown {
	return CostBreakdown{
		Product: s.CostProductSnapshot,
		Box:     s.CostBox,
		Bag:     s.CostBag,
		Label:   s.CostLabel,
		Other:   s.CostOther,
	}
}
