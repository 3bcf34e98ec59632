// Package chat relays team chat over WebSocket. Rooms are keyed by team ID
// and delivery is best effort.
package chat

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/hackflow/hackflow-api/internal/models"
	"github.com/hackflow/hackflow-api/pkg/logger"
	"github.com/hackflow/hackflow-api/pkg/metrics"
	"go.uber.org/zap"
)

const persistTimeout = 5 * time.Second

// MessageStore persists relayed messages
type MessageStore interface {
	Create(ctx context.Context, msg *models.TeamMessage) error
}

// Hub tracks which connections sit in which team rooms
type Hub struct {
	mu     sync.RWMutex
	rooms  map[string]map[*Client]struct{}
	broker Broker
	store  MessageStore

	persisting sync.WaitGroup
}

// NewHub subscribes to broker. store may be nil to skip persistence.
func NewHub(broker Broker, store MessageStore) (*Hub, error) {
	h := &Hub{
		rooms:  make(map[string]map[*Client]struct{}),
		broker: broker,
		store:  store,
	}
	if err := broker.Subscribe(h.deliver); err != nil {
		return nil, err
	}
	return h, nil
}

// Join adds c to the room and announces it to everyone there, c included
func (h *Hub) Join(ctx context.Context, c *Client, teamID string) error {
	h.mu.Lock()
	if c.closed {
		h.mu.Unlock()
		return fmt.Errorf("connection closed")
	}
	room, ok := h.rooms[teamID]
	if !ok {
		room = make(map[*Client]struct{})
		h.rooms[teamID] = room
	}
	room[c] = struct{}{}
	c.rooms[teamID] = struct{}{}
	h.mu.Unlock()

	return h.publish(ctx, teamID, EventMemberStatus, MemberStatus{TeamID: teamID, UserID: c.userID, Status: StatusOnline})
}

// Leave removes c from the room and tells the remaining members
func (h *Hub) Leave(ctx context.Context, c *Client, teamID string) error {
	h.mu.Lock()
	_, member := c.rooms[teamID]
	h.removeFromRoom(c, teamID)
	h.mu.Unlock()

	if !member {
		return nil
	}
	return h.publish(ctx, teamID, EventMemberStatus, MemberStatus{TeamID: teamID, UserID: c.userID, Status: StatusOffline})
}

// Unregister drops c from every room and closes its send buffer
func (h *Hub) Unregister(c *Client) {
	h.announceOffline(c, h.remove(c))
}

// IsMember reports whether c has joined teamID
func (h *Hub) IsMember(c *Client, teamID string) bool {
	h.mu.RLock()
	defer h.mu.RUnlock()
	_, ok := c.rooms[teamID]
	return ok
}

// RoomSize returns the number of local connections in a room
func (h *Hub) RoomSize(teamID string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.rooms[teamID])
}

// Broadcast stamps msg and sends it to the room without storing it
func (h *Hub) Broadcast(ctx context.Context, msg *models.TeamMessage) error {
	if msg.ID == "" {
		msg.ID = uuid.NewString()
	}
	if msg.CreatedAt.IsZero() {
		msg.CreatedAt = time.Now().UTC()
	}

	if err := h.publish(ctx, msg.TeamID, EventNewMessage, msg); err != nil {
		metrics.ChatMessagesTotal.WithLabelValues("error").Inc()
		return err
	}
	metrics.ChatMessagesTotal.WithLabelValues("broadcast").Inc()
	return nil
}

// SendMessage broadcasts msg and stores it in the background. Storage
// failures are only logged.
func (h *Hub) SendMessage(ctx context.Context, msg *models.TeamMessage) error {
	if err := h.Broadcast(ctx, msg); err != nil {
		return err
	}

	if h.store != nil {
		stored := *msg
		stored.ClientID = ""
		h.persisting.Add(1)
		go h.persist(&stored)
	}
	return nil
}

// Close waits for pending writes and detaches from the broker
func (h *Hub) Close() error {
	h.persisting.Wait()
	return h.broker.Close()
}

func (h *Hub) persist(msg *models.TeamMessage) {
	defer h.persisting.Done()

	ctx, cancel := context.WithTimeout(context.Background(), persistTimeout)
	defer cancel()

	if err := h.store.Create(ctx, msg); err != nil {
		metrics.ChatMessagesTotal.WithLabelValues("persist_failed").Inc()
		logger.Warn("Failed to persist chat message",
			zap.String("team_id", msg.TeamID),
			zap.String("message_id", msg.ID),
			zap.Error(err))
		return
	}
	metrics.ChatMessagesTotal.WithLabelValues("persisted").Inc()
}

func (h *Hub) publish(ctx context.Context, teamID, event string, data any) error {
	frame, err := encode(event, data)
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", event, err)
	}
	return h.broker.Publish(ctx, teamID, frame)
}

// deliver writes frame to every local member of the room. A member whose
// buffer is full is disconnected and announced offline in all its rooms.
func (h *Hub) deliver(teamID string, frame []byte) {
	var slow []*Client

	h.mu.RLock()
	for c := range h.rooms[teamID] {
		select {
		case c.send <- frame:
		default:
			slow = append(slow, c)
		}
	}
	h.mu.RUnlock()

	for _, c := range slow {
		metrics.ChatDroppedConnections.Inc()
		logger.Warn("Dropping slow chat connection",
			zap.String("team_id", teamID),
			zap.String("user_id", c.userID))
		h.announceOffline(c, h.remove(c))
	}
}

func (h *Hub) announceOffline(c *Client, rooms []string) {
	for _, teamID := range rooms {
		if err := h.publish(context.Background(), teamID, EventMemberStatus,
			MemberStatus{TeamID: teamID, UserID: c.userID, Status: StatusOffline}); err != nil {
			logger.Warn("Failed to announce member offline", zap.String("team_id", teamID), zap.Error(err))
		}
	}
}

// remove detaches c from all rooms and closes its buffer once. It returns
// the rooms c was in.
func (h *Hub) remove(c *Client) []string {
	h.mu.Lock()
	defer h.mu.Unlock()

	rooms := make([]string, 0, len(c.rooms))
	for teamID := range c.rooms {
		rooms = append(rooms, teamID)
		h.removeFromRoom(c, teamID)
	}

	if !c.closed {
		c.closed = true
		close(c.send)
	}
	return rooms
}

// removeFromRoom must be called with h.mu held
func (h *Hub) removeFromRoom(c *Client, teamID string) {
	delete(c.rooms, teamID)
	if room, ok := h.rooms[teamID]; ok {
		delete(room, c)
		if len(room) == 0 {
			delete(h.rooms, teamID)
		}
	}
}
