package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/hackflow/hackflow-api/internal/chat"
	"github.com/hackflow/hackflow-api/internal/middleware"
	"github.com/hackflow/hackflow-api/pkg/logger"
	"go.uber.org/zap"
)

// SocketHandler upgrades GET /api/socket to a team chat connection
type SocketHandler struct {
	hub      *chat.Hub
	upgrader *websocket.Upgrader
}

func NewSocketHandler(hub *chat.Hub, allowedOrigins []string) *SocketHandler {
	return &SocketHandler{
		hub:      hub,
		upgrader: chat.NewUpgrader(allowedOrigins),
	}
}

// Connect serves the socket until the client goes away. The user comes from
// the session when present, then the userId query parameter.
func (h *SocketHandler) Connect(c *gin.Context) {
	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		// Upgrade has already written the HTTP error
		attachError(c, err)
		logger.Warn("WebSocket upgrade failed", zap.String("client_ip", c.ClientIP()), zap.Error(err))
		return
	}

	h.hub.Serve(conn, socketUserID(c))
}

func socketUserID(c *gin.Context) string {
	if session, err := middleware.GetSession(c); err == nil && session.UserID != "" {
		return session.UserID
	}
	if id := c.Query("userId"); id != "" {
		return id
	}
	return "anonymous-" + uuid.NewString()[:8]
}
