package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hackflow/hackflow-api/internal/models"
	"github.com/hackflow/hackflow-api/internal/services"
)

type SustainabilityHandler struct {
	service services.SustainabilityServiceInterface
}

func NewSustainabilityHandler(service services.SustainabilityServiceInterface) *SustainabilityHandler {
	return &SustainabilityHandler{service: service}
}

// Analyze handles POST /api/sustainability/analyze
func (h *SustainabilityHandler) Analyze(c *gin.Context) {
	var req models.SustainabilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	report, err := h.service.Analyze(c.Request.Context(), &req)
	if err != nil {
		respondServiceError(c, err, "Failed to analyze sustainability")
		return
	}

	c.JSON(http.StatusOK, report)
}

// Data handles GET /api/sustainability/data?type=
func (h *SustainabilityHandler) Data(c *gin.Context) {
	data, err := h.service.Dataset(c.DefaultQuery("type", models.DatasetGlobal))
	if err != nil {
		respondServiceError(c, err, "Failed to load dataset")
		return
	}

	c.Header("Cache-Control", "public, max-age=3600")
	c.Data(http.StatusOK, "application/json; charset=utf-8", data)
}
