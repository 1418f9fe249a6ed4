package model

import "github.com/shopspring/decimal"

// finance.go — pure derived-value formulas. No I/O, no state; everything the
// dashboard, the sale form and the profit simulator display is computed here
// so the numbers agree everywhere.

// CostBreakdown is the per-unit cost of getting one pair out the door.
type CostBreakdown struct {
	Product decimal.Decimal
	Box     decimal.Decimal
	Bag     decimal.Decimal
	Label   decimal.Decimal
	Other   decimal.Decimal
}

// Total sums every cost component.
func (c CostBreakdown) Total() decimal.Decimal {
	return c.Product.Add(c.Box).Add(c.Bag).Add(c.Label).Add(c.Other)
}

// Profit is what remains of the received value after the unit costs.
func Profit(received decimal.Decimal, costs CostBreakdown) decimal.Decimal {
	return received.Sub(costs.Total())
}

// Margin returns the profit margin as a percentage of the received value.
// Zero received means zero margin, never a division by zero.
func Margin(received decimal.Decimal, costs CostBreakdown) decimal.Decimal {
	if received.IsZero() {
		return decimal.Zero
	}
	return Profit(received, costs).Div(received).Mul(decimal.NewFromInt(100)).Round(2)
}

// NetFromGross deducts the platform's standard fee from a gross sale value.
func NetFromGross(gross, feePercent decimal.Decimal) decimal.Decimal {
	fee := gross.Mul(feePercent).Div(decimal.NewFromInt(100))
	return gross.Sub(fee).Round(2)
}

// EstimatedProfit projects the profit of a product at its suggested price
// (treated as zero when unset). CostOther is not part of catalog costs.
func EstimatedProfit(p *Product) decimal.Decimal {
	price := decimal.Zero
	if p.SuggestedPrice != nil {
		price = *p.SuggestedPrice
	}
	costs := CostBreakdown{Product: p.StandardCost, Box: p.CostBox, Bag: p.CostBag, Label: p.CostLabel}
	return Profit(price, costs)
}

// EstimatedMargin is the margin counterpart of EstimatedProfit.
func EstimatedMargin(p *Product) decimal.Decimal {
	price := decimal.Zero
	if p.SuggestedPrice != nil {
		price = *p.SuggestedPrice
	}
	costs := CostBreakdown{Product: p.StandardCost, Box: p.CostBox, Bag: p.CostBag, Label: p.CostLabel}
	return Margin(price, costs)
}

// SimulationInput drives the standalone profit simulator: unit costs plus the
// channel deductions (platform fee, tax, fixed shipping) applied to a
// hypothetical sale price.
type SimulationInput struct {
	Costs           CostBreakdown
	SalePrice       decimal.Decimal
	PlatformFeePct  decimal.Decimal
	TaxPct          decimal.Decimal
	ShippingCost    decimal.Decimal
}

// SimulationResult is everything the simulator screen shows.
type SimulationResult struct {
	FeeAmount  decimal.Decimal
	TaxAmount  decimal.Decimal
	Deductions decimal.Decimal
	NetRevenue decimal.Decimal
	TotalCost  decimal.Decimal
	Profit     decimal.Decimal
	MarginPct  decimal.Decimal
}

// Simulate runs the simulator math: deductions come off the sale price, unit
// costs come off the net, margin is computed over the sale price.
func Simulate(in SimulationInput) SimulationResult {
	hundred := decimal.NewFromInt(100)
	fee := in.SalePrice.Mul(in.PlatformFeePct).Div(hundred)
	tax := in.SalePrice.Mul(in.TaxPct).Div(hundred)
	deductions := fee.Add(tax).Add(in.ShippingCost)
	net := in.SalePrice.Sub(deductions)
	totalCost := in.Costs.Total()
	profit := net.Sub(totalCost)

	margin := decimal.Zero
	if !in.SalePrice.IsZero() {
		margin = profit.Div(in.SalePrice).Mul(hundred).Round(2)
	}

	return SimulationResult{
		FeeAmount:  fee.Round(2),
		TaxAmount:  tax.Round(2),
		Deductions: deductions.Round(2),
		NetRevenue: net.Round(2),
		TotalCost:  totalCost.Round(2),
		Profit:     profit.Round(2),
		MarginPct:  margin,
	}
}
