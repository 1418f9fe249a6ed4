package handler

import (
	"net/http"

	"github.com/vinnxoficialai-cyber/vinnxaiecoo/internal/dto"
	"github.com/vinnxoficialai-cyber/vinnxaiecoo/internal/middleware"
	"github.com/vinnxoficialai-cyber/vinnxaiecoo/internal/service"

	"github.com/gin-gonic/gin"
)

type PlatformsHandler struct{ svc service.PlatformService }

func NewPlatformsHandler(svc service.PlatformService) *PlatformsHandler {
	return &PlatformsHandler{svc: svc}
}

// List godoc
// @Summary      Listar plataformas de venda
// @Description  A primeira listagem de uma conta nova cria o conjunto padrão de plataformas.
// @Tags         platforms
// @Produce      json
// @Security     BearerAuth
// @Success      200 {array} dto.PlatformResponse
// @Router       /v1/platforms [get]
func (h *PlatformsHandler) List(c *gin.Context) {
	resp, err := h.svc.List(c.Request.Context(), middleware.AccountID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *PlatformsHandler) Create(c *gin.Context) {
	var req dto.PlatformRequest
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
