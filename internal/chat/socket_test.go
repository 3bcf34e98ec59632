package chat

import (
	"encoding/json"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/hackflow/hackflow-api/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSocketServer(t *testing.T, h *Hub, origins []string) *httptest.Server {
	t.Helper()
	upgrader := NewUpgrader(origins)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		h.Serve(conn, r.URL.Query().Get("userId"))
	}))
	t.Cleanup(server.Close)
	return server
}

func dial(t *testing.T, server *httptest.Server, userID string) *websocket.Conn {
	t.Helper()
	url := "ws" + strings.TrimPrefix(server.URL, "http") + "?userId=" + userID
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })
	return conn
}

func send(t *testing.T, conn *websocket.Conn, event string, data any) {
	t.Helper()
	raw, err := json.Marshal(data)
	require.NoError(t, err)
	require.NoError(t, conn.WriteJSON(Envelope{Event: event, Data: raw}))
}

// readUntil skips frames until one with the given event arrives
func readUntil(t *testing.T, conn *websocket.Conn, event string) Envelope {
	t.Helper()
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(5*time.Second)))
	for {
		var env Envelope
		require.NoError(t, conn.ReadJSON(&env))
		if env.Event == event {
			return env
		}
	}
}

func joinAndWait(t *testing.T, conn *websocket.Conn, teamID string) {
	t.Helper()
	send(t, conn, EventJoinTeam, teamID)
	readUntil(t, conn, EventMemberStatus)
}

func TestSocket_BroadcastIsRoomScoped(t *testing.T) {
	h, err := NewHub(NewLocalBroker(), nil)
	require.NoError(t, err)
	server := newSocketServer(t, h, []string{"*"})

	alice := dial(t, server, "alice")
	bob := dial(t, server, "bob")
	carol := dial(t, server, "carol")

	joinAndWait(t, alice, "team-1")
	joinAndWait(t, bob, "team-1")
	joinAndWait(t, carol, "team-2")

	send(t, alice, EventSendMessage, models.TeamMessage{TeamID: "team-1", SenderName: "Alice", Message: "ship it"})

	for _, conn := range []*websocket.Conn{alice, bob} {
		env := readUntil(t, conn, EventNewMessage)
		var msg models.TeamMessage
		require.NoError(t, json.Unmarshal(env.Data, &msg))
		assert.Equal(t, "ship it", msg.Message)
		assert.Equal(t, "alice", msg.Sender)
		assert.Equal(t, "team-1", msg.TeamID)
	}

	require.NoError(t, carol.SetReadDeadline(time.Now().Add(300*time.Millisecond)))
	var env Envelope
	err = carol.ReadJSON(&env)
	var netErr net.Error
	require.ErrorAs(t, err, &netErr, "carol received %q", env.Event)
	assert.True(t, netErr.Timeout())
}

func TestSocket_SendWithoutJoinIsRejected(t *testing.T) {
	h, err := NewHub(NewLocalBroker(), nil)
	require.NoError(t, err)
	server := newSocketServer(t, h, []string{"*"})

	conn := dial(t, server, "mallory")
	send(t, conn, EventSendMessage, models.TeamMessage{TeamID: "team-1", Message: "sneaky"})

	env := readUntil(t, conn, EventError)
	assert.Contains(t, string(env.Data), "join the team")
}

func TestSocket_RejectsForeignOrigin(t *testing.T) {
	h, err := NewHub(NewLocalBroker(), nil)
	require.NoError(t, err)
	server := newSocketServer(t, h, []string{"http://localhost:3000"})

	url := "ws" + strings.TrimPrefix(server.URL, "http")
	header := http.Header{"Origin": []string{"https://evil.example.com"}}
	_, resp, err := websocket.DefaultDialer.Dial(url, header)

	require.Error(t, err)
	require.NotNil(t, resp)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	conn, _, err := websocket.DefaultDialer.Dial(url, http.Header{"Origin": []string{"http://localhost:3000"}})
	require.NoError(t, err)
	_ = conn.Close()
}

func TestSocket_ServerStampsSenderAndID(t *testing.T) {
	store := &recordingStore{}
	h, err := NewHub(NewLocalBroker(), store)
	require.NoError(t, err)
	server := newSocketServer(t, h, []string{"*"})

	mallory := dial(t, server, "mallory")
	bob := dial(t, server, "bob")
	joinAndWait(t, mallory, "team-1")
	joinAndWait(t, bob, "team-1")

	forged := time.Date(2001, 1, 1, 0, 0, 0, 0, time.UTC)
	send(t, mallory, EventSendMessage, models.TeamMessage{
		ID:        "1700000000001",
		TeamID:    "team-1",
		Sender:    "bob",
		Message:   "I quit",
		CreatedAt: forged,
	})

	env := readUntil(t, bob, EventNewMessage)
	var msg models.TeamMessage
	require.NoError(t, json.Unmarshal(env.Data, &msg))
	assert.Equal(t, "mallory", msg.Sender)
	assert.Equal(t, "1700000000001", msg.ClientID)
	assert.NotEqual(t, "1700000000001", msg.ID)
	_, err = uuid.Parse(msg.ID)
	assert.NoError(t, err)
	assert.True(t, msg.CreatedAt.After(forged))

	require.Eventually(t, func() bool { return len(store.all()) == 1 }, 2*time.Second, 10*time.Millisecond)
	stored := store.all()
	assert.Equal(t, msg.ID, stored[0].ID)
	assert.Equal(t, "mallory", stored[0].Sender)
	assert.Empty(t, stored[0].ClientID)
}
