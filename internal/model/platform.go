package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Platform is a sales channel (Shopee, TikTok Shop, …) with its standard fee.
// The (account_id, name) unique index is what makes the default seed safe
// under a concurrent first call: the losing insert fails, the winner's rows
// are returned.
type Platform struct {
	ID         uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	AccountID  uuid.UUID       `gorm:"type:uuid;uniqueIndex:idx_account_platform;not null"`
	Name       string          `gorm:"uniqueIndex:idx_account_platform;not null"`
	FeePercent decimal.Decimal `gorm:"type:decimal(5,2);not null;default:0"`
	Color      string          `gorm:"not null;default:'#ccc'"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
