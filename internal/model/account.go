package model

import (
	"time"

	"github.com/google/uuid"
)

// Account is a login identity. Every domain row carries an AccountID owner
// column and queries are always scoped to it — accounts never see each
// other's data.
type Account struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Email        string    `gorm:"uniqueIndex;not null"`
	PasswordHash string    `gorm:"not null"`
	Active       bool      `gorm:"not null;default:true"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
