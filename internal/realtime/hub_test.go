package realtime

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"staff-scheduler/internal/auth"
	"staff-scheduler/internal/logging"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func startHub(t *testing.T) *Hub {
	t.Helper()
	hub := NewHub(logging.Discard())
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	go hub.Run(ctx)
	return hub
}

func TestSendToUserReachesOnlyThatUser(t *testing.T) {
	hub := startHub(t)

	alice := &Client{ID: "a", UserID: 1, Send: make(chan []byte, 1)}
	bob := &Client{ID: "b", UserID: 2, Send: make(chan []byte, 1)}
	hub.Register(alice)
	hub.Register(bob)
	require.Equal(t, 2, hub.Connections())

	hub.SendToUser(1, "notification", map[string]string{"title": "hi"})

	select {
	case raw := <-alice.Send:
		var ev Event
		require.NoError(t, json.Unmarshal(raw, &ev))
		assert.Equal(t, "notification", ev.Type)
	case <-time.After(time.Second):
		t.Fatal("alice did not receive the event")
	}

	// Round trip through Run so the delivery above has been fully processed.
	hub.Connections()
	assert.Empty(t, bob.Send)
}

func TestSlowClientIsDropped(t *testing.T) {
	hub := startHub(t)

	c := &Client{ID: "slow", UserID: 1, Send: make(chan []byte)}
	hub.Register(c)
	hub.SendToUser(1, "ping", nil)

	assert.Eventually(t, func() bool { return hub.Connections() == 0 }, time.Second, 10*time.Millisecond)
	_, open := <-c.Send
	assert.False(t, open)
}

func TestServeWSRequiresToken(t *testing.T) {
	hub := startHub(t)
	tokens := auth.NewTokenService("secret", time.Hour)
	srv := httptest.NewServer(ServeWS(hub, tokens, "session", "http://localhost:5173"))
	defer srv.Close()

	url := "ws" + strings.TrimPrefix(srv.URL, "http")

	_, resp, err := websocket.DefaultDialer.Dial(url, nil)
	require.Error(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	token, _, err := tokens.Issue(5, "e@example.com", "employee")
	require.NoError(t, err)
	conn, _, err := websocket.DefaultDialer.Dial(url+"?token="+token, nil)
	require.NoError(t, err)
	defer conn.Close()

	require.Eventually(t, func() bool { return hub.Connections() == 1 }, time.Second, 10*time.Millisecond)
	hub.SendToUser(5, "message", "hello")

	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	var ev Event
	require.NoError(t, conn.ReadJSON(&ev))
	assert.Equal(t, "message", ev.Type)
	assert.Equal(t, "hello", ev.Data)
}

func TestServeWSRejectsForeignOrigin(t *testing.T) {
	hub := startHub(t)
	tokens := auth.NewTokenService("secret", time.Hour)
	srv := httptest.NewServer(ServeWS(hub, tokens, "session", "http://localhost:5173, https://app.example.com"))
	defer srv.Close()

	token, _, err := tokens.Issue(5, "e@example.com", "employee")
	require.NoError(t, err)
	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "?token=" + token

	_, resp, err := websocket.DefaultDialer.Dial(url, http.Header{"Origin": {"https://evil.example.org"}})
	require.Error(t, err)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	conn, _, err := websocket.DefaultDialer.Dial(url, http.Header{"Origin": {"https://app.example.com"}})
	require.NoError(t, err)
	conn.Close()
}

func TestHubCallsReturnAfterStop(t *testing.T) {
	hub := NewHub(logging.Discard())
	ctx, cancel := context.WithCancel(context.Background())
	stopped := make(chan struct{})
	go func() {
		hub.Run(ctx)
		close(stopped)
	}()

	live := &Client{ID: "live", UserID: 1, Send: make(chan []byte, 1)}
	require.True(t, hub.Register(live))
	cancel()
	<-stopped

	_, open := <-live.Send
	assert.False(t, open, "clients are closed on shutdown")

	done := make(chan struct{})
	go func() {
		late := &Client{ID: "late", UserID: 2, Send: make(chan []byte, 1)}
		assert.False(t, hub.Register(late))
		hub.Unregister(late)
		hub.Unregister(live)
		assert.Zero(t, hub.Connections())
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("hub calls blocked after Run returned")
	}
}
