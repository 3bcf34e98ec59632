package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hackflow/hackflow-api/internal/models"
	"github.com/hackflow/hackflow-api/internal/services"
)

type ResearchHandler struct {
	service services.ResearchServiceInterface
}

func NewResearchHandler(service services.ResearchServiceInterface) *ResearchHandler {
	return &ResearchHandler{service: service}
}

// AnalyzeProject handles POST /api/analyzeProject
func (h *ResearchHandler) AnalyzeProject(c *gin.Context) {
	var req models.AnalyzeProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	analysis, err := h.service.AnalyzeProject(c.Request.Context(), &req)
	if err != nil {
		respondServiceError(c, err, "Failed to analyze project")
		return
	}

	c.JSON(http.StatusOK, analysis)
}

// FindHackathons handles POST /api/findHackathons
func (h *ResearchHandler) FindHackathons(c *gin.Context) {
	var req models.FindHackathonsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	resp, err := h.service.FindHackathons(c.Request.Context(), &req)
	if err != nil {
		respondServiceError(c, err, "Failed to find hackathons")
		return
	}

	c.JSON(http.StatusOK, resp)
}
