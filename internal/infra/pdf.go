package infra

// pdf.go — sales report generation using go-pdf/fpdf.
// Renders an A4 report with the period totals and a table of recent sales
// (date, product, platform, received value, profit).

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/vinnxoficialai-cyber/vinnxaiecoo/internal/model"

	"github.com/go-pdf/fpdf"
	"github.com/shopspring/decimal"
)

// ReportTotals carries the aggregates printed in the report header.
type ReportTotals struct {
	Revenue   decimal.Decimal
	Profit    decimal.Decimal
	SaleCount int
	MarginPct decimal.Decimal
}

// GenerateSalesReportPDF writes the report to storagePath and returns the
// file path. sales should come most recent first.
func GenerateSalesReportPDF(sales []model.SaleWithDetails, totals ReportTotals, storagePath string) (string, error) {
	if err := os.MkdirAll(storagePath, 0o755); err != nil {
		return "", fmt.Errorf("pdf: create storage dir: %w", err)
	}

	fileName := fmt.Sprintf("vendas_%s.pdf", time.Now().Format("20060102_150405"))
	filePath := filepath.Join(storagePath, fileName)

	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(15, 15, 15)
	pdf.AddPage()

	pageW, _ := pdf.GetPageSize()
	contentW := pageW - 30

	// ── Header ───────────────────────────────────────────────────────────────
	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(contentW, 9, "Relatório de Vendas", "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 9)
	pdf.CellFormat(contentW, 5, "Gerado em "+time.Now().Format("02/01/2006 15:04"), "", 1, "L", false, 0, "")
	pdf.Ln(4)

	// ── Totals ───────────────────────────────────────────────────────────────
	pdf.SetFont("Helvetica", "B", 10)
	pdf.CellFormat(contentW/2, 6, "Faturamento: R$ "+totals.Revenue.StringFixed(2), "", 0, "L", false, 0, "")
	pdf.CellFormat(contentW/2, 6, "Lucro: R$ "+totals.Profit.StringFixed(2), "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(contentW/2, 6, fmt.Sprintf("Vendas: %d", totals.SaleCount), "", 0, "L", false, 0, "")
	pdf.CellFormat(contentW/2, 6, "Margem média: "+totals.MarginPct.StringFixed(1)+"%", "", 1, "L", false, 0, "")
	pdf.Ln(4)

	pdf.Line(15, pdf.GetY(), pageW-15, pdf.GetY())
	pdf.Ln(3)

	// ── Table header ─────────────────────────────────────────────────────────
	colDate := contentW * 0.14
	colProduct := contentW * 0.36
	colPlatform := contentW * 0.20
	colValue := contentW * 0.15
	colProfit := contentW * 0.15

	pdf.SetFont("Helvetica", "B", 9)
	pdf.CellFormat(colDate, 6, "Data", "B", 0, "L", false, 0, "")
	pdf.CellFormat(colProduct, 6, "Produto", "B", 0, "L", false, 0, "")
	pdf.CellFormat(colPlatform, 6, "Plataforma", "B", 0, "L", false, 0, "")
	pdf.CellFormat(colValue, 6, "Recebido", "B", 0, "R", false, 0, "")
	pdf.CellFormat(colProfit, 6, "Lucro", "B", 1, "R", false, 0, "")

	// ── Rows ─────────────────────────────────────────────────────────────────
	pdf.SetFont("Helvetica", "", 8)
	for _, sale := range sales {
		name := sale.ProductName
		if len(name) > 38 {
			name = name[:37] + "…"
		}
		pdf.CellFormat(colDate, 5, sale.DateSale.Format("02/01/06"), "", 0, "L", false, 0, "")
		pdf.CellFormat(colProduct, 5, name, "", 0, "L", false, 0, "")
		pdf.CellFormat(colPlatform, 5, sale.PlatformName, "", 0, "L", false, 0, "")
		pdf.CellFormat(colValue, 5, "R$ "+sale.ValueReceived.StringFixed(2), "", 0, "R", false, 0, "")
		pdf.CellFormat(colProfit, 5, "R$ "+sale.ProfitFinal.StringFixed(2), "", 1, "R", false, 0, "")
	}

	if len(sales) == 0 {
		pdf.Ln(2)
		pdf.SetFont("Helvetica", "I", 9)
		pdf.CellFormat(contentW, 6, "Nenhuma venda no período.", "", 1, "C", false, 0, "")
	}

	if err := pdf.OutputFileAndClose(filePath); err != nil {
		return "", fmt.Errorf("pdf: write file: %w", err)
	}

	return filePath, nil
}
