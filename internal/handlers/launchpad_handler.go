package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hackflow/hackflow-api/internal/models"
	"github.com/hackflow/hackflow-api/internal/services"
)

type LaunchpadHandler struct {
	service services.LaunchpadServiceInterface
}

func NewLaunchpadHandler(service services.LaunchpadServiceInterface) *LaunchpadHandler {
	return &LaunchpadHandler{service: service}
}

// Pitch handles POST /api/launchpad/pitch
func (h *LaunchpadHandler) Pitch(c *gin.Context) {
	var req models.StartupBrief
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	pitch, err := h.service.Pitch(c.Request.Context(), &req)
	if err != nil {
		respondServiceError(c, err, "Failed to generate pitch")
		return
	}

	c.JSON(http.StatusOK, pitch)
}

// Video handles POST /api/launchpad/video
func (h *LaunchpadHandler) Video(c *gin.Context) {
	var req models.VideoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	resp, err := h.service.Video(c.Request.Context(), &req)
	if err != nil {
		respondServiceError(c, err, "Failed to generate video script")
		return
	}

	c.JSON(http.StatusOK, resp)
}

// Monetization handles POST /api/launchpad/monetization
func (h *LaunchpadHandler) Monetization(c *gin.Context) {
	var req models.StartupBrief
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	resp, err := h.service.Monetization(c.Request.Context(), &req)
	if err != nil {
		respondServiceError(c, err, "Failed to generate monetization strategy")
		return
	}

	c.JSON(http.StatusOK, resp)
}
