package dto

import "github.com/shopspring/decimal"

// RecordSaleRequest registers one sold unit. The cost fields are the caller's
// snapshot of the product costs at sale time; profit is NOT accepted here —
// the service computes it from the snapshot and value_received.
type RecordSaleRequest struct {
	ProductID   string  `json:"product_id" validate:"required,uuid"`
	PlatformID  string  `json:"platform_id" validate:"required,uuid"`
	VariationID *string `json:"variation_id" validate:"omitempty,uuid"`

	CostProductSnapshot decimal.Decimal `json:"cost_product_snapshot" validate:"min=0"`
	CostBox             decimal.Decimal `json:"cost_box" validate:"min=0"`
	CostBag             decimal.Decimal `json:"cost_bag" validate:"min=0"`
	CostLabel           decimal.Decimal `json:"cost_label" validate:"min=0"`
	CostOther           decimal.Decimal `json:"cost_other" validate:"min=0"`

	ValueGross    decimal.Decimal `json:"value_gross" validate:"min=0"`
	ValueReceived decimal.Decimal `json:"value_received" validate:"min=0"`

	DateSale string `json:"date_sale"` // RFC 3339; defaults to now
	Status   string `json:"status" validate:"omitempty,oneof=Pendente Enviado Entregue Devolvido"`
}

// UpdateSaleStatusRequest moves a sale along the fulfillment flow.
type UpdateSaleStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=Pendente Enviado Entregue Devolvido"`
}

// SaleResponse is the decorated sale view.
type SaleResponse struct {
	ID          string  `json:"id"`
	ProductID   string  `json:"product_id"`
	PlatformID  string  `json:"platform_id"`
	VariationID *string `json:"variation_id,omitempty"`
	Color       *string `json:"color,omitempty"`
	Size        *string `json:"size,omitempty"`

	CostProductSnapshot decimal.Decimal `json:"cost_product_snapshot"`
	CostBox             decimal.Decimal `json:"cost_box"`
	CostBag             decimal.Decimal `json:"cost_bag"`
	CostLabel           decimal.Decimal `json:"cost_label"`
	CostOther           decimal.Decimal `json:"cost_other"`

	ValueGross    decimal.Decimal `json:"value_gross"`
	ValueReceived decimal.Decimal `json:"value_received"`
	ProfitFinal   decimal.Decimal `json:"profit_final"`

	DateSale string `json:"date_sale"`
	Status   string `json:"status"`

	ProductName   string `json:"product_name"`
	PlatformName  string `json:"platform_name"`
	PlatformColor string `json:"platform_color"`
}

// SaleFilter narrows the sales listing.
type SaleFilter struct {
	PlatformID string `form:"platform_id"`
	ProductID  string `form:"product_id"`
	Status     string `form:"status"`
	From       string `form:"from"`
	To         string `form:"to"`
	Limit      int    `form:"limit"`
}
