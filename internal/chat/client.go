package chat

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/hackflow/hackflow-api/internal/models"
	"github.com/hackflow/hackflow-api/pkg/logger"
	"github.com/hackflow/hackflow-api/pkg/metrics"
	"go.uber.org/zap"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 64 * 1024
	sendBufferSize = 256
	maxMessageLen  = 5000
)

// Client is one socket connection. rooms and closed are guarded by the
// hub's mutex.
type Client struct {
	hub    *Hub
	conn   *websocket.Conn
	send   chan []byte
	userID string
	rooms  map[string]struct{}
	closed bool
}

func newClient(hub *Hub, conn *websocket.Conn, userID string) *Client {
	return &Client{
		hub:    hub,
		conn:   conn,
		send:   make(chan []byte, sendBufferSize),
		userID: userID,
		rooms:  make(map[string]struct{}),
	}
}

// NewUpgrader accepts browser connections from allowed origins only. A "*"
// entry allows any origin. Requests without an Origin header are not from
// browsers and are accepted.
func NewUpgrader(allowedOrigins []string) *websocket.Upgrader {
	allowAll := false
	allowed := make(map[string]struct{}, len(allowedOrigins))
	for _, o := range allowedOrigins {
		o = strings.TrimSuffix(strings.TrimSpace(o), "/")
		if o == "*" {
			allowAll = true
		}
		allowed[o] = struct{}{}
	}

	return &websocket.Upgrader{
		ReadBufferSize:  4096,
		WriteBufferSize: 4096,
		CheckOrigin: func(r *http.Request) bool {
			origin := r.Header.Get("Origin")
			if origin == "" || allowAll {
				return true
			}
			_, ok := allowed[strings.TrimSuffix(origin, "/")]
			return ok
		},
	}
}

// Serve runs the connection until the peer goes away. It blocks.
func (h *Hub) Serve(conn *websocket.Conn, userID string) {
	c := newClient(h, conn, userID)

	metrics.ChatConnections.Inc()
	defer metrics.ChatConnections.Dec()

	logger.Debug("Chat connection opened", zap.String("user_id", userID))

	go c.writePump()
	c.readPump()
}

func (c *Client) readPump() {
	defer func() {
		c.hub.Unregister(c)
		_ = c.conn.Close()
		logger.Debug("Chat connection closed", zap.String("user_id", c.userID))
	}()

	c.conn.SetReadLimit(maxMessageSize)
	_ = c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		_, data, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				logger.Warn("Chat connection read error", zap.String("user_id", c.userID), zap.Error(err))
			}
			return
		}
		c.handle(data)
	}
}

func (c *Client) handle(data []byte) {
	ctx := context.Background()

	var env Envelope
	if err := json.Unmarshal(data, &env); err != nil {
		c.reply(EventError, errorPayload{Message: "invalid frame"})
		return
	}

	switch env.Event {
	case EventJoinTeam:
		teamID := parseTeamID(env.Data)
		if !ValidTeamID(teamID) {
			c.reply(EventError, errorPayload{Message: "invalid teamId"})
			return
		}
		if err := c.hub.Join(ctx, c, teamID); err != nil {
			logger.Warn("Failed to join team room", zap.String("team_id", teamID), zap.Error(err))
		}

	case EventLeaveTeam:
		teamID := parseTeamID(env.Data)
		if err := c.hub.Leave(ctx, c, teamID); err != nil {
			logger.Warn("Failed to leave team room", zap.String("team_id", teamID), zap.Error(err))
		}

	case EventSendMessage:
		var msg models.TeamMessage
		if err := json.Unmarshal(env.Data, &msg); err != nil {
			c.reply(EventError, errorPayload{Message: "invalid message"})
			return
		}
		msg.TeamID = strings.TrimSpace(msg.TeamID)
		if !c.hub.IsMember(c, msg.TeamID) {
			metrics.ChatMessagesTotal.WithLabelValues("rejected").Inc()
			c.reply(EventError, errorPayload{Message: "join the team before sending messages"})
			return
		}
		if strings.TrimSpace(msg.Message) == "" || len(msg.Message) > maxMessageLen {
			metrics.ChatMessagesTotal.WithLabelValues("rejected").Inc()
			c.reply(EventError, errorPayload{Message: "message must be between 1 and 5000 characters"})
			return
		}
		if msg.ClientID == "" {
			msg.ClientID = msg.ID
		}
		msg.ID = uuid.NewString()
		msg.Sender = c.userID
		msg.CreatedAt = time.Now().UTC()
		if err := c.hub.SendMessage(ctx, &msg); err != nil {
			logger.Error("Failed to broadcast chat message", zap.String("team_id", msg.TeamID), zap.Error(err))
		}

	default:
		c.reply(EventError, errorPayload{Message: "unknown event " + env.Event})
	}
}

// reply sends a frame to this connection only
func (c *Client) reply(event string, data any) {
	frame, err := encode(event, data)
	if err != nil {
		return
	}

	c.hub.mu.RLock()
	defer c.hub.mu.RUnlock()
	if c.closed {
		return
	}
	select {
	case c.send <- frame:
	default:
	}
}

func (c *Client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		_ = c.conn.Close()
	}()

	for {
		select {
		case frame, ok := <-c.send:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				_ = c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, frame); err != nil {
				return
			}

		case <-ticker.C:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
