package model

import (
	"time"

	"github.com/google/uuid"
)

// Movement types. Sale and restore movements are written in the same
// transaction as the sale insert/delete, manual entry/withdrawal by the
// stock endpoints.
const (
	MovementSale       = "venda"
	MovementRestore    = "estorno_venda"
	MovementEntry      = "entrada"
	MovementWithdrawal = "retirada"
	MovementVariation  = "ajuste_variacao"
)

// StockMovement is the audit ledger for every stock mutation: what moved,
// by how much, and what the aggregate looked like before and after. A sale
// with a variation produces two rows (variation and parent aggregate) under
// the same SaleID.
type StockMovement struct {
	ID          uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	AccountID   uuid.UUID  `gorm:"type:uuid;index;not null"`
	ProductID   uuid.UUID  `gorm:"type:uuid;index;not null"`
	VariationID *uuid.UUID `gorm:"type:uuid;index"`
	Type        string     `gorm:"type:varchar(20);not null"`
	Quantity    int        `gorm:"not null"` // signed delta
	StockBefore int        `gorm:"not null"`
	StockAfter  int        `gorm:"not null"`
	Reason      string
	SaleID      *uuid.UUID `gorm:"type:uuid;index"`
	CreatedAt   time.Time
}
