package handler

import (
	"net/http"

	"github.com/vinnxoficialai-cyber/vinnxaiecoo/internal/apierror"
	"github.com/vinnxoficialai-cyber/vinnxaiecoo/internal/dto"
	"github.com/vinnxoficialai-cyber/vinnxaiecoo/internal/middleware"
	"github.com/vinnxoficialai-cyber/vinnxaiecoo/internal/service"

	"github.com/gin-gonic/gin"
)

type SalesHandler struct{ svc service.SaleService }

func NewSalesHandler(svc service.SaleService) *SalesHandler { return &SalesHandler{svc: svc} }

// Record godoc
// @Summary      Registrar venda
// @Description  Grava a venda com snapshot de custos e baixa o estoque da variação e do produto na mesma transação.
// @Tags         sales
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body body dto.RecordSaleRequest true "Venda"
// @Success      201 {object} dto.SaleResponse
// @Failure      400 {object} apierror.APIError
// @Failure      404 {object} apierror.APIError
// @Router       /v1/sales [post]
func (h *SalesHandler) Record(c *gin.Context) {
	var req dto.RecordSaleRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.RecordSale(c.Request.Context(), middleware.AccountID(c), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// List godoc
// @Summary      Listar vendas decoradas
// @Tags         sales
// @Produce      json
// @Security     BearerAuth
// @Param        platform_id query string false "Filtrar por plataforma"
// @Param        product_id  query string false "Filtrar por produto"
// @Param        status      query string false "Pendente | Enviado | Entregue | Devolvido"
// @Param        from        query string false "Data inicial (RFC 3339)"
// @Param        to          query string false "Data final (RFC 3339)"
// @Param        limit       query int    false "Máximo de registros"
// @Success      200 {array} dto.SaleResponse
// @Router       /v1/sales [get]
func (h *SalesHandler) List(c *gin.Context) {
	var filter dto.SaleFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	resp, err := h.svc.ListSales(c.Request.Context(), middleware.AccountID(c), filter)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Delete godoc
// @Summary      Excluir venda
// @Description  Remove a venda e devolve uma unidade ao estoque da variação e do produto.
// @Tags         sales
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "UUID da venda"
// @Success      204
// @Failure      404 {object} apierror.APIError
// @Router       /v1/sales/{id} [delete]
func (h *SalesHandler) Delete(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	if err := h.svc.DeleteSale(c.Request.Context(), middleware.AccountID(c), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *SalesHandler) UpdateStatus(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req dto.UpdateSaleStatusRequest
	if !bindAndValidate(c, &req) {
		return
	}
	if err := h.svc.UpdateStatus(c.Request.Context(), middleware.AccountID(c), id, req.Status); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
