package services

import (
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/influmatch/influmatch-backend/internal/models"
	"github.com/sirupsen/logrus"
)

// SSEHub manages Server-Sent Events connections for live outreach feeds.
// Keys are "outreach:<id>" for conversation views and "brand:<id>" for the
// brand-wide activity/notification feed.
type SSEHub struct {
	clients map[string]map[chan []byte]bool
	mu      sync.RWMutex
}

// NewSSEHub creates a new SSE hub
func NewSSEHub() *SSEHub {
	return &SSEHub{
		clients: make(map[string]map[chan []byte]bool),
	}
}

// RegisterClient registers a new SSE client for a scope
func (h *SSEHub) RegisterClient(scope, id string) chan []byte {
	h.mu.Lock()
	defer h.mu.Unlock()

	key := fmt.Sprintf("%s:%s", scope, id)
	clientChan := make(chan []byte, 10)

	if h.clients[key] == nil {
		h.clients[key] = make(map[chan []byte]bool)
	}
	h.clients[key][clientChan] = true

	logrus.Infof("SSE client registered for %s (total clients: %d)", key, len(h.clients[key]))
	return clientChan
}

// UnregisterClient unregisters an SSE client
func (h *SSEHub) UnregisterClient(scope, id string, clientChan chan []byte) {
	h.mu.Lock()
	defer h.mu.Unlock()

	key := fmt.Sprintf("%s:%s", scope, id)
	if h.clients[key] != nil {
		delete(h.clients[key], clientChan)
		close(clientChan)

		if len(h.clients[key]) == 0 {
			delete(h.clients, key)
		}
	}

	logrus.Infof("SSE client unregistered for %s (remaining clients: %d)", key, len(h.clients[key]))
}

// BroadcastCommunicationLog pushes a new log entry to the outreach
// conversation view and the owning brand's activity feed
func (h *SSEHub) BroadcastCommunicationLog(log *models.CommunicationLog, brandID string) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	h.broadcastLocked(fmt.Sprintf("outreach:%s", log.OutreachID), "communication_log", log)
	h.broadcastLocked(fmt.Sprintf("brand:%s", brandID), "communication_log", log)
}

// BroadcastNotification pushes a notification to the owning brand's feed
func (h *SSEHub) BroadcastNotification(notification *models.Notification) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	h.broadcastLocked(fmt.Sprintf("brand:%s", notification.BrandID), "notification", notification)
}

// broadcastLocked sends an event to all clients of a key (assumes lock held)
func (h *SSEHub) broadcastLocked(key, event string, payload interface{}) {
	clients := h.clients[key]
	if len(clients) == 0 {
		return
	}

	data, err := json.Marshal(payload)
	if err != nil {
		logrus.Errorf("Failed to marshal %s event for SSE: %v", event, err)
		return
	}

	message := fmt.Sprintf("event: %s\ndata: %s\n\n", event, string(data))

	// Non-blocking sends; slow clients are skipped
	for clientChan := range clients {
		select {
		case clientChan <- []byte(message):
		default:
			logrus.Warnf("SSE client channel full, skipping: %s", key)
		}
	}
}

// SendHeartbeat sends a heartbeat comment to keep a scope's connections alive
func (h *SSEHub) SendHeartbeat(scope, id string) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	key := fmt.Sprintf("%s:%s", scope, id)
	clients, exists := h.clients[key]
	if !exists {
		return
	}

	heartbeat := fmt.Sprintf(": heartbeat %s\n\n", time.Now().Format(time.RFC3339))
	for clientChan := range clients {
		select {
		case clientChan <- []byte(heartbeat):
		default:
		}
	}
}
