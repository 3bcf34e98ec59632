package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hackflow/hackflow-api/internal/models"
	"github.com/hackflow/hackflow-api/internal/services"
)

type MatchingHandler struct {
	service services.MatchingServiceInterface
}

func NewMatchingHandler(service services.MatchingServiceInterface) *MatchingHandler {
	return &MatchingHandler{service: service}
}

// TeamMatching handles GET /api/teamMatching
func (h *MatchingHandler) TeamMatching(c *gin.Context) {
	var query models.TeamMatchingQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		respondBindError(c, err)
		return
	}

	resp, err := h.service.FindTeammates(c.Request.Context(), &query)
	if err != nil {
		respondServiceError(c, err, "Failed to match teammates")
		return
	}

	c.JSON(http.StatusOK, resp)
}

// Mentorship handles GET /api/mentorship?members=<json>
func (h *MatchingHandler) Mentorship(c *gin.Context) {
	resp, err := h.service.MatchMentors(c.Request.Context(), c.Query("members"))
	if err != nil {
		respondServiceError(c, err, "Failed to match mentors")
		return
	}

	c.JSON(http.StatusOK, resp)
}
