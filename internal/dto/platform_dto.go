package dto

import "github.com/shopspring/decimal"

// PlatformRequest creates a custom sales channel.
type PlatformRequest struct {
	Name       string          `json:"name" validate:"required"`
	FeePercent decimal.Decimal `json:"fee_percent" validate:"min=0,max=100"`
	Color      string          `json:"color"`
}

// PlatformResponse mirrors a platform row.
type PlatformResponse struct {
	ID         string          `json:"id"`
	Name       string          `json:"name"`
	FeePercent decimal.Decimal `json:"fee_percent"`
	Color      string          `json:"color"`
}
