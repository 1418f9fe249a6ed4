package dto

import "github.com/shopspring/decimal"

// LowStockItem is a product at or below its minimum stock level.
type LowStockItem struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	StockQuantity int    `json:"stock_quantity"`
	MinStockLevel int    `json:"min_stock_level"`
}

// DashboardStatsResponse aggregates the account's sales and stock health.
// AverageMargin is total profit over total revenue, zero when there is no
// revenue.
type DashboardStatsResponse struct {
	TotalRevenue  decimal.Decimal `json:"total_revenue"`
	TotalProfit   decimal.Decimal `json:"total_profit"`
	TotalExpenses decimal.Decimal `json:"total_expenses"`
	TotalSales    int             `json:"total_sales"`
	AverageMargin decimal.Decimal `json:"average_margin"`
	LowStockCount int             `json:"low_stock_count"`
	LowStock      []LowStockItem  `json:"low_stock"`
}

// InsightResponse carries the generated sales analysis (or a fixed fallback).
type InsightResponse struct {
	Insight string `json:"insight"`
}
