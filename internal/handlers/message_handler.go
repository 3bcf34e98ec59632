package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hackflow/hackflow-api/internal/middleware"
	"github.com/hackflow/hackflow-api/internal/models"
	"github.com/hackflow/hackflow-api/internal/services"
)

type MessageHandler struct {
	service services.MessageServiceInterface
}

func NewMessageHandler(service services.MessageServiceInterface) *MessageHandler {
	return &MessageHandler{service: service}
}

// ListMessages handles GET /api/messages?teamId=
func (h *MessageHandler) ListMessages(c *gin.Context) {
	teamID := c.Query("teamId")
	if teamID == "" {
		respondError(c, http.StatusBadRequest, "teamId is required", nil)
		return
	}

	messages, err := h.service.List(c.Request.Context(), teamID)
	if err != nil {
		respondServiceError(c, err, "Failed to fetch messages")
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": messages})
}

// CreateMessage handles POST /api/messages
func (h *MessageHandler) CreateMessage(c *gin.Context) {
	session, err := middleware.GetSession(c)
	if err != nil {
		respondError(c, http.StatusUnauthorized, "Unauthorized", err)
		return
	}

	var req models.CreateMessageRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		respondBindError(c, bindErr)
		return
	}

	msg, err := h.service.Create(c.Request.Context(), session.UserID, &req)
	if err != nil {
		respondServiceError(c, err, "Failed to save message")
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": msg})
}
