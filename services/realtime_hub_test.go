package services

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gorilla/websocket"
)

func dialHub(t *testing.T, hub *RealtimeHub, userID uint) *websocket.Conn {
	t.Helper()

	upgrader := websocket.Upgrader{}
	registered := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			t.Errorf("upgrade: %v", err)
			return
		}
		hub.Register(NewWSClient(userID, conn))
		close(registered)
	}))
	t.Cleanup(srv.Close)

	url := "ws" + strings.TrimPrefix(srv.URL, "http")
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	t.Cleanup(func() { conn.Close() })

	select {
	case <-registered:
	case <-time.After(2 * time.Second):
		t.Fatal("registration timed out")
	}
	return conn
}

func TestHubBroadcastReachesOwnConnections(t *testing.T) {
	hub := NewRealtimeHub()
	conn := dialHub(t, hub, 7)

	hub.Broadcast(7, EventFoodCreated, map[string]string{"id": "srv-1"})

	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	_, raw, err := conn.ReadMessage()
	if err != nil {
		t.Fatalf("read: %v", err)
	}

	var msg struct {
		Kind    string          `json:"kind"`
		Payload json.RawMessage `json:"payload"`
	}
	if err := json.Unmarshal(raw, &msg); err != nil {
		t.Fatal(err)
	}
	if msg.Kind != EventFoodCreated {
		t.Errorf("kind = %q, want %q", msg.Kind, EventFoodCreated)
	}
}

// The websocket allows only one concurrent writer, so parallel broadcasts
// must serialize through the client's writer goroutine. A panicking writer
// would take the whole process down, failing this test.
func TestHubConcurrentBroadcasts(t *testing.T) {
	hub := NewRealtimeHub()
	conn := dialHub(t, hub, 7)

	done := make(chan struct{})
	go func() {
		defer close(done)
		conn.SetReadDeadline(time.Now().Add(5 * time.Second))
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	payload := map[string]string{"blob": strings.Repeat("x", 64*1024)}
	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				hub.Broadcast(7, EventEntryCreated, payload)
			}
		}()
	}
	wg.Wait()

	conn.Close()
	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("reader did not finish")
	}
}

func TestHubBroadcastScopedToUser(t *testing.T) {
	hub := NewRealtimeHub()
	conn := dialHub(t, hub, 7)

	// an event for a different user must not arrive here
	hub.Broadcast(8, EventEntryCreated, nil)

	conn.SetReadDeadline(time.Now().Add(200 * time.Millisecond))
	if _, _, err := conn.ReadMessage(); err == nil {
		t.Error("received another user's event")
	}
}
