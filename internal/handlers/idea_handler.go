package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hackflow/hackflow-api/internal/middleware"
	"github.com/hackflow/hackflow-api/internal/models"
	"github.com/hackflow/hackflow-api/internal/services"
)

type IdeaHandler struct {
	service services.IdeaServiceInterface
}

func NewIdeaHandler(service services.IdeaServiceInterface) *IdeaHandler {
	return &IdeaHandler{service: service}
}

// GenerateIdea handles POST /api/perplexity
func (h *IdeaHandler) GenerateIdea(c *gin.Context) {
	var req models.GenerateIdeaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	resp, err := h.service.Generate(c.Request.Context(), &req)
	if err != nil {
		respondServiceError(c, err, "Failed to generate idea")
		return
	}

	c.JSON(http.StatusOK, resp)
}

// ListIdeas handles GET /api/ideas
func (h *IdeaHandler) ListIdeas(c *gin.Context) {
	session, err := middleware.GetSession(c)
	if err != nil {
		respondError(c, http.StatusUnauthorized, "Unauthorized", err)
		return
	}

	ideas, err := h.service.List(c.Request.Context(), session.UserID)
	if err != nil {
		respondServiceError(c, err, "Failed to fetch ideas")
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": ideas})
}

// CreateIdea handles POST /api/ideas
func (h *IdeaHandler) CreateIdea(c *gin.Context) {
	session, err := middleware.GetSession(c)
	if err != nil {
		respondError(c, http.StatusUnauthorized, "Unauthorized", err)
		return
	}

	var req models.CreateIdeaRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		respondBindError(c, bindErr)
		return
	}

	idea, err := h.service.Save(c.Request.Context(), session.UserID, &req)
	if err != nil {
		respondServiceError(c, err, "Failed to save idea")
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": idea})
}
