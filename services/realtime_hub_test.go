package services

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
)

// hubConn dials a real websocket pair and registers the server side
// with the hub.
func hubConn(t *testing.T, hub *RealtimeHub, userID string) *websocket.Conn {
	t.Helper()

	upgrader := websocket.Upgrader{}
	registered := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			t.Errorf("upgrade: %v", err)
			return
		}
		hub.Register(&WSClient{UserID: userID, Conn: conn})
		close(registered)
	}))
	t.Cleanup(srv.Close)

	url := "ws" + strings.TrimPrefix(srv.URL, "http")
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	t.Cleanup(func() { _ = conn.Close() })

	select {
	case <-registered:
	case <-time.After(2 * time.Second):
		t.Fatal("client never registered")
	}
	return conn
}

func readEvent(t *testing.T, conn *websocket.Conn) map[string]any {
	t.Helper()
	_ = conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	_, msg, err := conn.ReadMessage()
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	var payload map[string]any
	if err := json.Unmarshal(msg, &payload); err != nil {
		t.Fatalf("unmarshal %q: %v", msg, err)
	}
	return payload
}

func TestHubBroadcastAlertTargetsUser(t *testing.T) {
	hub := NewRealtimeHub()
	conn := hubConn(t, hub, "u1")

	hub.BroadcastAlert("u1", map[string]any{"kind": "alert.created"})
	if got := readEvent(t, conn)["kind"]; got != "alert.created" {
		t.Errorf("kind = %v, want alert.created", got)
	}

	// An event for another user must not reach this connection.
	hub.BroadcastAlert("someone-else", map[string]any{"kind": "alert.created"})
	hub.BroadcastAlert("u1", map[string]any{"kind": "second"})
	if got := readEvent(t, conn)["kind"]; got != "second" {
		t.Errorf("kind = %v, want second (cross-user event leaked)", got)
	}
}

func TestHubBroadcastReachesAllUsers(t *testing.T) {
	hub := NewRealtimeHub()
	connA := hubConn(t, hub, "u1")
	connB := hubConn(t, hub, "u2")

	hub.Broadcast(map[string]any{"kind": "leaderboard.updated", "gameId": "g1"})

	for _, conn := range []*websocket.Conn{connA, connB} {
		got := readEvent(t, conn)
		if got["kind"] != "leaderboard.updated" {
			t.Errorf("kind = %v, want leaderboard.updated", got["kind"])
		}
		if got["gameId"] != "g1" {
			t.Errorf("gameId = %v, want g1", got["gameId"])
		}
	}
}
