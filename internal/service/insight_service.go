package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/vinnxoficialai-cyber/vinnxaiecoo/internal/dto"
	"github.com/vinnxoficialai-cyber/vinnxaiecoo/internal/infra"
	"github.com/vinnxoficialai-cyber/vinnxaiecoo/internal/model"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// Fixed fallback texts shown instead of an error screen.
const (
	InsightNoKey       = "Chave de API não configurada."
	InsightUpstreamErr = "Erro ao conectar com a IA. Verifique sua chave de API."
	InsightEmpty       = "Não foi possível gerar análise no momento."
)

// insightSnapshotLimit caps how many recent sales feed the prompt.
const insightSnapshotLimit = 30

// insightGenerator is the slice of the AI client the service needs.
// Satisfied by infra.GeminiClient.
type insightGenerator interface {
	Configured() bool
	GenerateContent(ctx context.Context, prompt string) (string, error)
}

// InsightService turns the recent sales history into a short written analysis.
// The upstream call sits behind a circuit breaker; every failure mode maps to
// a fixed Portuguese fallback, never an error page.
type InsightService interface {
	SalesInsight(ctx context.Context, accountID uuid.UUID) (*dto.InsightResponse, error)
}

type insightService struct {
	sales   SaleService
	client  insightGenerator
	breaker *infra.CircuitBreaker
}

func NewInsightService(sales SaleService, client insightGenerator, breaker *infra.CircuitBreaker) InsightService {
	return &insightService{sales: sales, client: client, breaker: breaker}
}

func (s *insightService) SalesInsight(ctx context.Context, accountID uuid.UUID) (*dto.InsightResponse, error) {
	if accountID == uuid.Nil {
		return nil, ErrUnauthenticated
	}
	if !s.client.Configured() {
		return &dto.InsightResponse{Insight: InsightNoKey}, nil
	}

	sales, err := s.sales.SalesWithDetails(ctx, accountID, dto.SaleFilter{Limit: insightSnapshotLimit})
	if err != nil {
		return nil, err
	}
	if len(sales) > insightSnapshotLimit {
		sales = sales[:insightSnapshotLimit]
	}

	prompt := buildInsightPrompt(sales)

	var text string
	execErr := s.breaker.Execute(func() error {
		var genErr error
		text, genErr = s.client.GenerateContent(ctx, prompt)
		return genErr
	})
	if execErr != nil {
		log.Warn().Err(execErr).Msg("sales insight generation failed")
		return &dto.InsightResponse{Insight: InsightUpstreamErr}, nil
	}
	if strings.TrimSpace(text) == "" {
		return &dto.InsightResponse{Insight: InsightEmpty}, nil
	}
	return &dto.InsightResponse{Insight: text}, nil
}

// buildInsightPrompt formats the sales snapshot the analysis is asked about.
func buildInsightPrompt(sales []model.SaleWithDetails) string {
	var b strings.Builder
	b.WriteString("Você é um analista de negócios especializado em revenda de tênis. ")
	b.WriteString("Analise as vendas recentes abaixo e escreva uma análise curta (máximo 3 parágrafos) ")
	b.WriteString("em português, destacando: produtos mais lucrativos, plataformas com melhor desempenho ")
	b.WriteString("e uma sugestão prática para aumentar o lucro.\n\nVendas recentes:\n")

	for i := range sales {
		sale := &sales[i]
		fmt.Fprintf(&b, "- %s | %s | recebido R$ %s | lucro R$ %s | %s\n",
			sale.ProductName,
			sale.PlatformName,
			sale.ValueReceived.StringFixed(2),
			sale.ProfitFinal.StringFixed(2),
			sale.DateSale.Format("02/01/2006"),
		)
	}
	if len(sales) == 0 {
		b.WriteString("(nenhuma venda registrada ainda)\n")
	}
	return b.String()
}
