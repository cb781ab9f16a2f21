// internal/ws/hub.go
package ws

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"go.uber.org/zap"
)

// Event is the wire envelope every broadcast uses.
type Event struct {
	Type      string      `json:"type"`
	Data      interface{} `json:"data,omitempty"`
	Timestamp time.Time   `json:"timestamp"`
}

// Alert is pushed to connected admins when a case has sat untouched past
// the configured attention threshold.
type Alert struct {
	CaseID         string `json:"case_id"`
	CustomerName   string `json:"customer_name"`
	Status         string `json:"status"`
	DaysSinceTouch int    `json:"days_since_touch"`
	Message        string `json:"message"`
}

const (
	EventConnected       = "connected"
	EventInactivityAlert = "inactivity_alert"
	EventReminderUpdate  = "reminder_update"
)

type Hub struct {
	clients map[*Client]bool
	mu      sync.RWMutex

	register   chan *Client
	unregister chan *Client
	broadcast  chan []byte

	logger *zap.Logger
}

func NewHub(logger *zap.Logger) *Hub {
	return &Hub{
		clients:    make(map[*Client]bool),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		broadcast:  make(chan []byte, 256),
		logger:     logger,
	}
}

func (h *Hub) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			h.shutdown()
			return

		case client := <-h.register:
			h.registerClient(client)

		case client := <-h.unregister:
			h.unregisterClient(client)

		case payload := <-h.broadcast:
			h.fanOut(payload)
		}
	}
}

// Broadcast wraps data in an Event envelope and queues it for every
// connected client. Marshal failures are logged, never propagated.
func (h *Hub) Broadcast(eventType string, data interface{}) {
	payload, err := json.Marshal(Event{
		Type:      eventType,
		Data:      data,
		Timestamp: time.Now().UTC(),
	})
	if err != nil {
		h.logger.Error("broadcast marshal failed", zap.String("type", eventType), zap.Error(err))
		return
	}
	select {
	case h.broadcast <- payload:
	default:
		h.logger.Warn("broadcast queue full, event dropped", zap.String("type", eventType))
	}
}

func (h *Hub) TotalClients() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

func (h *Hub) registerClient(client *Client) {
	h.mu.Lock()
	h.clients[client] = true
	total := len(h.clients)
	h.mu.Unlock()

	h.logger.Info("websocket client connected",
		zap.String("admin_id", client.adminID),
		zap.Int("total", total),
	)
	client.sendEvent(Event{
		Type:      EventConnected,
		Data:      map[string]interface{}{"admin_id": client.adminID},
		Timestamp: time.Now().UTC(),
	})
}

func (h *Hub) unregisterClient(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if _, ok := h.clients[client]; ok {
		delete(h.clients, client)
		client.close()
		h.logger.Info("websocket client disconnected",
			zap.String("admin_id", client.adminID),
			zap.Int("total", len(h.clients)),
		)
	}
}

func (h *Hub) fanOut(payload []byte) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	for client := range h.clients {
		select {
		case client.send <- payload:
		default:
			// Slow consumer, drop it rather than block the hub.
			go func(c *Client) { h.unregister <- c }(client)
		}
	}
}

func (h *Hub) shutdown() {
	h.mu.Lock()
	defer h.mu.Unlock()

	for client := range h.clients {
		client.close()
		delete(h.clients, client)
	}
	h.logger.Info("websocket hub stopped")
}
