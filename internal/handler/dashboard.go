package handler

import (
	"net/http"

	"github.com/vinnxoficialai-cyber/vinnxaiecoo/internal/apierror"
	"github.com/vinnxoficialai-cyber/vinnxaiecoo/internal/dto"
	"github.com/vinnxoficialai-cyber/vinnxaiecoo/internal/middleware"
	"github.com/vinnxoficialai-cyber/vinnxaiecoo/internal/service"

	"github.com/gin-gonic/gin"
)

type DashboardHandler struct {
	svc      service.DashboardService
	insights service.InsightService
}

func NewDashboardHandler(svc service.DashboardService, insights service.InsightService) *DashboardHandler {
	return &DashboardHandler{svc: svc, insights: insights}
}

// Stats godoc
// @Summary      Estatísticas do painel
// @Description  Receita, lucro, despesas, margem média e produtos com estoque baixo.
// @Tags         dashboard
// @Produce      json
// @Security     BearerAuth
// @Param        from query string false "Data inicial (RFC 3339)"
// @Param        to   query string false "Data final (RFC 3339)"
// @Success      200 {object} dto.DashboardStatsResponse
// @Router       /v1/dashboard/stats [get]
func (h *DashboardHandler) Stats(c *gin.Context) {
	var filter dto.SaleFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	resp, err := h.svc.Stats(c.Request.Context(), middleware.AccountID(c), filter)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Insight godoc
// @Summary      Análise de vendas gerada por IA
// @Description  Gera uma análise textual das vendas recentes. Falhas do serviço externo degradam para um texto fixo.
// @Tags         dashboard
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} dto.InsightResponse
// @Router       /v1/dashboard/insight [get]
func (h *DashboardHandler) Insight(c *gin.Context) {
	resp, err := h.insights.SalesInsight(c.Request.Context(), middleware.AccountID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Report godoc
// @Summary      Relatório de vendas em PDF
// @Tags         dashboard
// @Produce      application/pdf
// @Security     BearerAuth
// @Param        from query string false "Data inicial (RFC 3339)"
// @Param        to   query string false "Data final (RFC 3339)"
// @Success      200 {file} binary
// @Router       /v1/dashboard/report [get]
func (h *DashboardHandler) Report(c *gin.Context) {
	var filter dto.SaleFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	path, err := h.svc.SalesReport(c.Request.Context(), middleware.AccountID(c), filter)
	if err != nil {
		respondError(c, err)
		return
	}
	c.FileAttachment(path, "relatorio_vendas.pdf")
}

// Simulate godoc
// @Summary      Simulador de lucro
// @Description  Calcula lucro e margem de uma venda hipotética a partir de custos, taxa da plataforma, imposto e frete.
// @Tags         dashboard
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body body dto.SimulationRequest true "Parâmetros da simulação"
// @Success      200 {object} dto.SimulationResponse
// @Failure      422 {object} apierror.ValidationError
// @Router       /v1/simulate [post]
func (h *DashboardHandler) Simulate(c *gin.Context) {
	var req dto.SimulationRequest
	if !bindAndValidate(c, &req) {
		return
	}
	c.JSON(http.StatusOK, h.svc.Simulate(req))
}
