package dto

import "github.com/shopspring/decimal"

// SimulationRequest feeds the profit simulator. Defaults mirror the sale
// form: box 1.50, bag 0.50, label 0.20, Shopee's 14% fee.
type SimulationRequest struct {
	CostProduct    decimal.Decimal `json:"cost_product" validate:"min=0"`
	CostBox        decimal.Decimal `json:"cost_box" validate:"min=0"`
	CostBag        decimal.Decimal `json:"cost_bag" validate:"min=0"`
	CostLabel      decimal.Decimal `json:"cost_label" validate:"min=0"`
	CostExtra      decimal.Decimal `json:"cost_extra" validate:"min=0"`
	SalePrice      decimal.Decimal `json:"sale_price" validate:"min=0"`
	PlatformFeePct decimal.Decimal `json:"platform_fee_percent" validate:"min=0,max=100"`
	TaxPct         decimal.Decimal `json:"tax_percent" validate:"min=0,max=100"`
	ShippingCost   decimal.Decimal `json:"shipping_cost" validate:"min=0"`
}

// SimulationResponse is the simulator output.
type SimulationResponse struct {
	FeeAmount  decimal.Decimal `json:"fee_amount"`
	TaxAmount  decimal.Decimal `json:"tax_amount"`
	Deductions decimal.Decimal `json:"deductions"`
	NetRevenue decimal.Decimal `json:"net_revenue"`
	TotalCost  decimal.Decimal `json:"total_cost"`
	Profit     decimal.Decimal `json:"profit"`
	MarginPct  decimal.Decimal `json:"margin_percent"`
}
