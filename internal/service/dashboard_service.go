package service

import (
	"context"

	"github.com/vinnxoficialai-cyber/vinnxaiecoo/internal/dto"
	"github.com/vinnxoficialai-cyber/vinnxaiecoo/internal/infra"
	"github.com/vinnxoficialai-cyber/vinnxaiecoo/internal/model"
	"github.com/vinnxoficialai-cyber/vinnxaiecoo/internal/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DashboardService derives the analytics screens from sales and stock. All
// math lives in the model package; this service only aggregates.
type DashboardService interface {
	Stats(ctx context.Context, accountID uuid.UUID, filter dto.SaleFilter) (*dto.DashboardStatsResponse, error)
	// SalesReport renders the filtered sales as a PDF and returns its path.
	SalesReport(ctx context.Context, accountID uuid.UUID, filter dto.SaleFilter) (string, error)
	Simulate(req dto.SimulationRequest) *dto.SimulationResponse
}

type dashboardService struct {
	sales       SaleService
	productRepo repository.ProductRepository
	reportPath  string
}

func NewDashboardService(sales SaleService, productRepo repository.ProductRepository, reportPath string) DashboardService {
	return &dashboardService{sales: sales, productRepo: productRepo, reportPath: reportPath}
}

func (s *dashboardService) Stats(ctx context.Context, accountID uuid.UUID, filter dto.SaleFilter) (*dto.DashboardStatsResponse, error) {
	if accountID == uuid.Nil {
		return nil, ErrUnauthenticated
	}

	sales, err := s.sales.SalesWithDetails(ctx, accountID, filter)
	if err != nil {
		return nil, err
	}

	var revenue, profit decimal.Decimal
	for i := range sales {
		revenue = revenue.Add(sales[i].ValueReceived)
		profit = profit.Add(sales[i].ProfitFinal)
	}
	expenses := revenue.Sub(profit)

	margin := decimal.Zero
	if !revenue.IsZero() {
		margin = profit.Div(revenue).Mul(decimal.NewFromInt(100)).Round(2)
	}

	products, err := s.productRepo.List(ctx, accountID)
	if err != nil {
		return nil, err
	}
	lowStock := []dto.LowStockItem{}
	for i := range products {
		p := &products[i]
		if p.StockQuantity <= p.MinStockLevel {
			lowStock = append(lowStock, dto.LowStockItem{
				ID:            p.ID.String(),
				Name:          p.Name,
				StockQuantity: p.StockQuantity,
				MinStockLevel: p.MinStockLevel,
			})
		}
	}

	return &dto.DashboardStatsResponse{
		TotalRevenue:  revenue.Round(2),
		TotalProfit:   profit.Round(2),
		TotalExpenses: expenses.Round(2),
		TotalSales:    len(sales),
		AverageMargin: margin,
		LowStockCount: len(lowStock),
		LowStock:      lowStock,
	}, nil
}

func (s *dashboardService) SalesReport(ctx context.Context, accountID uuid.UUID, filter dto.SaleFilter) (string, error) {
	if accountID == uuid.Nil {
		return "", ErrUnauthenticated
	}

	sales, err := s.sales.SalesWithDetails(ctx, accountID, filter)
	if err != nil {
		return "", err
	}

	var revenue, profit decimal.Decimal
	for i := range sales {
		revenue = revenue.Add(sales[i].ValueReceived)
		profit = profit.Add(sales[i].ProfitFinal)
	}
	margin := decimal.Zero
	if !revenue.IsZero() {
		margin = profit.Div(revenue).Mul(decimal.NewFromInt(100)).Round(2)
	}

	return infra.GenerateSalesReportPDF(sales, infra.ReportTotals{
		Revenue:   revenue.Round(2),
		Profit:    profit.Round(2),
		SaleCount: len(sales),
		MarginPct: margin,
	}, s.reportPath)
}

func (s *dashboardService) Simulate(req dto.SimulationRequest) *dto.SimulationResponse {
	result := model.Simulate(model.SimulationInput{
		Costs: model.CostBreakdown{
			Product: req.CostProduct,
			Box:     req.CostBox,
			Bag:     req.CostBag,
			Label:   req.CostLabel,
			Other:   req.CostExtra,
		},
		SalePrice:      req.SalePrice,
		PlatformFeePct: req.PlatformFeePct,
		TaxPct:         req.TaxPct,
		ShippingCost:   req.ShippingCost,
	})
	return &dto.SimulationResponse{
		FeeAmount:  result.FeeAmount,
		TaxAmount:  result.TaxAmount,
		Deductions: result.Deductions,
		NetRevenue: result.NetRevenue,
		TotalCost:  result.TotalCost,
		Profit:     result.Profit,
		MarginPct:  result.MarginPct,
	}
}
