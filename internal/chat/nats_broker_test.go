package chat

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/hackflow/hackflow-api/internal/models"
	natsserver "github.com/nats-io/nats-server/v2/server"
	"github.com/nats-io/nats.go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func startTestNATSServer(t *testing.T) *natsserver.Server {
	t.Helper()

	opts := &natsserver.Options{
		Host:   "127.0.0.1",
		Port:   -1,
		NoLog:  true,
		NoSigs: true,
	}

	server, err := natsserver.NewServer(opts)
	require.NoError(t, err)

	go server.Start()

	if !server.ReadyForConnections(5 * time.Second) {
		t.Fatal("NATS server not ready")
	}

	t.Cleanup(func() {
		server.Shutdown()
		server.WaitForShutdown()
	})

	return server
}

func newNATSHub(t *testing.T, url string) *Hub {
	t.Helper()

	nc, err := nats.Connect(url)
	require.NoError(t, err)
	t.Cleanup(nc.Close)

	h, err := NewHub(NewNATSBroker(nc), nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = h.Close() })
	return h
}

func waitForEvent(t *testing.T, c *Client, event string) Envelope {
	t.Helper()
	timeout := time.After(5 * time.Second)
	for {
		select {
		case frame := <-c.send:
			var env Envelope
			require.NoError(t, json.Unmarshal(frame, &env))
			if env.Event == event {
				return env
			}
		case <-timeout:
			t.Fatalf("timed out waiting for %s", event)
		}
	}
}

func TestNATSBroker_SharesRoomsAcrossHubs(t *testing.T) {
	server := startTestNATSServer(t)
	ctx := context.Background()

	first := newNATSHub(t, server.ClientURL())
	second := newNATSHub(t, server.ClientURL())

	alice := newClient(first, nil, "alice")
	bob := newClient(second, nil, "bob")
	carol := newClient(second, nil, "carol")

	require.NoError(t, first.Join(ctx, alice, "team-1"))
	require.NoError(t, second.Join(ctx, bob, "team-1"))
	require.NoError(t, second.Join(ctx, carol, "team-2"))
	waitForEvent(t, carol, EventMemberStatus)

	require.NoError(t, first.SendMessage(ctx, &models.TeamMessage{TeamID: "team-1", Sender: "alice", Message: "across instances"}))

	for _, c := range []*Client{alice, bob} {
		env := waitForEvent(t, c, EventNewMessage)
		var msg models.TeamMessage
		require.NoError(t, json.Unmarshal(env.Data, &msg))
		assert.Equal(t, "across instances", msg.Message)
	}

	select {
	case frame := <-carol.send:
		var env Envelope
		require.NoError(t, json.Unmarshal(frame, &env))
		assert.NotEqual(t, EventNewMessage, env.Event)
	case <-time.After(200 * time.Millisecond):
	}
}
