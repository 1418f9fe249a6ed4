package handler

import (
	"io"
	"net/http"
	"strconv"

	"github.com/vinnxoficialai-cyber/vinnxaiecoo/internal/apierror"
	"github.com/vinnxoficialai-cyber/vinnxaiecoo/internal/dto"
	"github.com/vinnxoficialai-cyber/vinnxaiecoo/internal/middleware"
	"github.com/vinnxoficialai-cyber/vinnxaiecoo/internal/service"

	"github.com/gin-gonic/gin"
)

type ProductsHandler struct {
	svc    service.ProductService
	assets service.AssetService
}

func NewProductsHandler(svc service.ProductService, assets service.AssetService) *ProductsHandler {
	return &ProductsHandler{svc: svc, assets: assets}
}

// Create godoc
// @Summary      Criar produto
// @Tags         products
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body body dto.ProductRequest true "Produto"
// @Success      201 {object} dto.ProductResponse
// @Failure      400 {object} apierror.APIError
// @Router       /v1/products [post]
func (h *ProductsHandler) Create(c *gin.Context) {
	var req dto.ProductRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Create(c.Request.Context(), middleware.AccountID(c), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// List godoc
// @Summary      Listar produtos com variações e nome do fornecedor
// @Tags         products
// @Produce      json
// @Security     BearerAuth
// @Success      200 {array} dto.ProductResponse
// @Router       /v1/products [get]
func (h *ProductsHandler) List(c *gin.Context) {
	resp, err := h.svc.List(c.Request.Context(), middleware.AccountID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *ProductsHandler) Get(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	resp, err := h.svc.Get(c.Request.Context(), middleware.AccountID(c), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *ProductsHandler) Update(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req dto.ProductRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Update(c.Request.Context(), middleware.AccountID(c), id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *ProductsHandler) Delete(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	if err := h.svc.Delete(c.Request.Context(), middleware.AccountID(c), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// CreateVariation godoc
// @Summary      Criar variação (cor/tamanho) de um produto
// @Tags         products
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id   path string               true "UUID do produto"
// @Param        body body dto.VariationRequest true "Variação"
// @Success      201 {object} dto.VariationResponse
// @Failure      404 {object} apierror.APIError
// @Router       /v1/products/{id}/variations [post]
func (h *ProductsHandler) CreateVariation(c *gin.Context) {
	productID, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req dto.VariationRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.CreateVariation(c.Request.Context(), middleware.AccountID(c), productID, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *ProductsHandler) DeleteVariation(c *gin.Context) {
	productID, ok := parseID(c, "id")
	if !ok {
		return
	}
	variationID, ok := parseID(c, "variation_id")
	if !ok {
		return
	}
	if err := h.svc.DeleteVariation(c.Request.Context(), middleware.AccountID(c), productID, variationID); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// StockEntry godoc
// @Summary      Registrar entrada ou retirada manual de estoque
// @Tags         products
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id   path string                true "UUID do produto"
// @Param        body body dto.StockEntryRequest true "Movimentação"
// @Success      200 {object} dto.ProductResponse
// @Failure      404 {object} apierror.APIError
// @Router       /v1/products/{id}/stock [post]
func (h *ProductsHandler) StockEntry(c *gin.Context) {
	productID, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req dto.StockEntryRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.StockEntry(c.Request.Context(), middleware.AccountID(c), productID, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *ProductsHandler) ListMovements(c *gin.Context) {
	productID, ok := parseID(c, "id")
	if !ok {
		return
	}
	limit, _ := strconv.Atoi(c.Query("limit"))
	resp, err := h.svc.ListMovements(c.Request.Context(), middleware.AccountID(c), productID, limit)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// UploadImage godoc
// @Summary      Enviar imagem do produto
// @Description  Aceita multipart form com o campo "image". Apenas imagens, até 5MB.
// @Tags         products
// @Accept       mpfd
// @Produce      json
// @Security     BearerAuth
// @Param        id    path string true "UUID do produto"
// @Param        image formData file true "Arquivo de imagem"
// @Success      200 {object} dto.UploadImageResponse
// @Failure      400 {object} apierror.APIError
// @Router       /v1/products/{id}/image [post]
func (h *ProductsHandler) UploadImage(c *gin.Context) {
	productID, ok := parseID(c, "id")
	if !ok {
		return
	}
	fileHeader, err := c.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("Arquivo de imagem ausente"))
		return
	}
	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("Não foi possível ler o arquivo"))
		return
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, service.MaxImageSize+1))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("Não foi possível ler o arquivo"))
		return
	}

	resp, err := h.assets.UploadProductImage(
		c.Request.Context(),
		middleware.AccountID(c),
		productID,
		fileHeader.Filename,
		fileHeader.Header.Get("Content-Type"),
		data,
	)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *ProductsHandler) DeleteImage(c *gin.Context) {
	productID, ok := parseID(c, "id")
	if !ok {
		return
	}
	if err := h.assets.DeleteProductImage(c.Request.Context(), middleware.AccountID(c), productID); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
