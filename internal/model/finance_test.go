package model

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func dec(s string) decimal.Decimal {
	d, _ := decimal.NewFromString(s)
	return d
}

func TestCostBreakdownTotal(t *testing.T) {
	costs := CostBreakdown{
		Product: dec("9.50"),
		Box:     dec("1.50"),
		Bag:     dec("0.50"),
		Label:   dec("0.20"),
		Other:   dec("2.00"),
	}
	assert.True(t, dec("13.70").Equal(costs.Total()))
}

func TestProfitAndMargin(t *testing.T) {
	costs := CostBreakdown{Product: dec("9.50"), Box: dec("1.50"), Bag: dec("0.50"), Label: dec("0.20")}

	profit := Profit(dec("50.00"), costs)
	assert.True(t, dec("38.30").Equal(profit), "got %s", profit)

	margin := Margin(dec("50.00"), costs)
	assert.True(t, dec("76.60").Equal(margin), "got %s", margin)
}

func TestMarginZeroReceived(t *testing.T) {
	costs := CostBreakdown{Product: dec("10.00")}
	assert.True(t, Margin(decimal.Zero, costs).IsZero())
}

func TestNegativeProfitAllowed(t *testing.T) {
	costs := CostBreakdown{Product: dec("60.00")}
	profit := Profit(dec("50.00"), costs)
	assert.True(t, dec("-10.00").Equal(profit))
}

func TestNetFromGross(t *testing.T) {
	net := NetFromGross(dec("100.00"), dec("14"))
	assert.True(t, dec("86.00").Equal(net), "got %s", net)

	full := NetFromGross(dec("100.00"), decimal.Zero)
	assert.True(t, dec("100.00").Equal(full))
}

func TestEstimatedProfitWithoutSuggestedPrice(t *testing.T) {
	p := &Product{StandardCost: dec("150.00"), CostBox: dec("1.50")}
	// No suggested price means the projection is pure cost.
	assert.True(t, dec("-151.50").Equal(EstimatedProfit(p)))
	assert.True(t, EstimatedMargin(p).IsZero())
}

func TestSimulateDeductionsComeOffSalePrice(t *testing.T) {
	out := Simulate(SimulationInput{
		Costs:          CostBreakdown{Product: dec("100.00")},
		SalePrice:      dec("200.00"),
		PlatformFeePct: dec("10"),
		TaxPct:         dec("5"),
		ShippingCost:   dec("15.00"),
	})
	assert.True(t, dec("20.00").Equal(out.FeeAmount))
	assert.True(t, dec("10.00").Equal(out.TaxAmount))
	assert.True(t, dec("45.00").Equal(out.Deductions))
	assert.True(t, dec("155.00").Equal(out.NetRevenue))
	assert.True(t, dec("55.00").Equal(out.Profit))
	assert.True(t, dec("27.50").Equal(out.MarginPct))
}
