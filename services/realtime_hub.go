package services

import (
	"encoding/json"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

// Event kinds pushed over the realtime feed.
const (
	EventFoodCreated  = "food.created"
	EventFoodUpdated  = "food.updated"
	EventFoodDeleted  = "food.deleted"
	EventEntryCreated = "entry.created"
	EventEntryDeleted = "entry.deleted"
	EventFoodApproved = "food.approved"
)

const (
	// sendBuffer bounds the per-connection backlog; a consumer that falls
	// further behind loses events rather than blocking request handlers.
	sendBuffer = 16

	pingInterval = 25 * time.Second
	writeWait    = 10 * time.Second
)

// WSClient is one open dashboard connection. The websocket permits a single
// concurrent writer, so every frame (broadcasts and keep-alive pings) goes
// through the send channel and out via one writer goroutine.
type WSClient struct {
	UserID uint

	conn   *websocket.Conn
	send   chan []byte
	closed bool // guarded by the hub mutex
}

func NewWSClient(userID uint, conn *websocket.Conn) *WSClient {
	return &WSClient{
		UserID: userID,
		conn:   conn,
		send:   make(chan []byte, sendBuffer),
	}
}

// RealtimeHub fans catalog and log changes out to a user's open dashboards.
type RealtimeHub struct {
	mu      sync.RWMutex
	clients map[uint]map[*WSClient]struct{}
}

func NewRealtimeHub() *RealtimeHub {
	return &RealtimeHub{clients: make(map[uint]map[*WSClient]struct{})}
}

// Register adds the connection and starts its writer.
func (h *RealtimeHub) Register(c *WSClient) {
	h.mu.Lock()
	if h.clients[c.UserID] == nil {
		h.clients[c.UserID] = make(map[*WSClient]struct{})
	}
	h.clients[c.UserID][c] = struct{}{}
	h.mu.Unlock()

	go h.writeLoop(c)
}

// Unregister removes the connection and closes its send channel, which ends
// the writer. Safe to call from both the read loop and the writer itself.
func (h *RealtimeHub) Unregister(c *WSClient) {
	h.mu.Lock()
	if !c.closed {
		c.closed = true
		close(c.send)
		if set := h.clients[c.UserID]; set != nil {
			delete(set, c)
			if len(set) == 0 {
				delete(h.clients, c.UserID)
			}
		}
	}
	h.mu.Unlock()
	_ = c.conn.Close()
}

// writeLoop is the connection's only writer: broadcast frames come off the
// send channel, keep-alive pings off the ticker.
func (h *RealtimeHub) writeLoop(c *WSClient) {
	ticker := time.NewTicker(pingInterval)
	defer ticker.Stop()

	for {
		select {
		case msg, ok := <-c.send:
			if !ok {
				return
			}
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.TextMessage, msg); err != nil {
				h.Unregister(c)
				return
			}
		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				h.Unregister(c)
				return
			}
		}
	}
}

// Broadcast queues an event for every open connection of one user. Sends
// happen under the read lock, ordered against Unregister's channel close,
// so a queued frame never races the close.
func (h *RealtimeHub) Broadcast(userID uint, kind string, payload any) {
	msg, err := json.Marshal(map[string]any{
		"kind":    kind,
		"payload": payload,
	})
	if err != nil {
		return
	}

	h.mu.RLock()
	defer h.mu.RUnlock()
	for c := range h.clients[userID] {
		select {
		case c.send <- msg:
		default:
			// consumer too far behind; drop the event for this connection
		}
	}
}
