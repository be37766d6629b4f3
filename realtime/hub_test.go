package realtime

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dialTestHub(t *testing.T, hub *Hub) *websocket.Conn {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(hub.ServeWS))
	t.Cleanup(server.Close)

	wsURL := "ws" + strings.TrimPrefix(server.URL, "http")
	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	// registration happens on the hub goroutine
	time.Sleep(50 * time.Millisecond)
	return conn
}

func TestHubBroadcastReachesClient(t *testing.T) {
	hub := NewHub()
	go hub.Run()

	conn := dialTestHub(t, hub)

	hub.Notify(EventGalleryChanged, "project:7", "uploaded")

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	_, payload, err := conn.ReadMessage()
	require.NoError(t, err)

	var event Event
	require.NoError(t, json.Unmarshal(payload, &event))
	assert.Equal(t, EventGalleryChanged, event.Type)
	assert.Equal(t, "project:7", event.OwnerRef)
	assert.Equal(t, "uploaded", event.Detail)
	assert.NotZero(t, event.Timestamp)
}

func TestHubBroadcastFanOut(t *testing.T) {
	hub := NewHub()
	go hub.Run()

	first := dialTestHub(t, hub)
	second := dialTestHub(t, hub)

	hub.Notify(EventContactReceived, "", "Jane Doe")

	for _, conn := range []*websocket.Conn{first, second} {
		require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
		_, payload, err := conn.ReadMessage()
		require.NoError(t, err)

		var event Event
		require.NoError(t, json.Unmarshal(payload, &event))
		assert.Equal(t, EventContactReceived, event.Type)
	}
}

func TestBroadcastWithoutClientsDoesNotBlock(t *testing.T) {
	hub := NewHub()
	go hub.Run()

	done := make(chan struct{})
	go func() {
		for i := 0; i < 10; i++ {
			hub.Notify(EventProjectChanged, "project:1", "updated")
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Notify blocked with no connected clients")
	}
}
