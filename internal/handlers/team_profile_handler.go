package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hackflow/hackflow-api/internal/middleware"
	"github.com/hackflow/hackflow-api/internal/models"
	"github.com/hackflow/hackflow-api/internal/services"
)

type TeamProfileHandler struct {
	service services.TeamProfileServiceInterface
}

func NewTeamProfileHandler(service services.TeamProfileServiceInterface) *TeamProfileHandler {
	return &TeamProfileHandler{service: service}
}

// ListProfiles handles GET /api/teamProfile?teamId=
func (h *TeamProfileHandler) ListProfiles(c *gin.Context) {
	teamID := c.Query("teamId")
	if teamID == "" {
		respondError(c, http.StatusBadRequest, "teamId is required", nil)
		return
	}

	profiles, err := h.service.List(c.Request.Context(), teamID)
	if err != nil {
		respondServiceError(c, err, "Failed to fetch team profiles")
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": profiles})
}

// CreateProfile handles POST /api/teamProfile
func (h *TeamProfileHandler) CreateProfile(c *gin.Context) {
	session, err := middleware.GetSession(c)
	if err != nil {
		respondError(c, http.StatusUnauthorized, "Unauthorized", err)
		return
	}

	var req models.CreateTeamProfileRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		respondBindError(c, bindErr)
		return
	}

	profile, err := h.service.Create(c.Request.Context(), session.UserID, &req)
	if err != nil {
		respondServiceError(c, err, "Failed to save team profile")
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": profile})
}
