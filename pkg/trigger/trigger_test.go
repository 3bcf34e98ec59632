package trigger

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/hackflow/hackflow-api/pkg/httpclient"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCallAsync_PostsEvent(t *testing.T) {
	received := make(chan Event, 1)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var ev Event
		_ = json.NewDecoder(r.Body).Decode(&ev)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		received <- ev
		w.WriteHeader(http.StatusAccepted)
	}))
	defer server.Close()

	done := CallAsync(server.URL, Event{Type: "idea.created", RecordID: "42", UserID: "user_1"}, httpclient.NewStandardClient())

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("trigger did not finish")
	}

	ev := <-received
	assert.Equal(t, "idea.created", ev.Type)
	assert.Equal(t, "42", ev.RecordID)
	assert.Equal(t, "user_1", ev.UserID)
}

func TestCallAsync_EmptyURLIsNoop(t *testing.T) {
	done := CallAsync("", Event{Type: "idea.created"}, httpclient.NewStandardClient())

	_, open := <-done
	require.False(t, open)
}

func TestCallAsync_FailureDoesNotPanic(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	done := CallAsync(server.URL, Event{Type: "idea.created", RecordID: "1"}, httpclient.NewStandardClient())
	<-done
}
