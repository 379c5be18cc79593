package services

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/dandi-labs/dandi-dashboard/internal/models"
	"github.com/sirupsen/logrus"
)

const sseClientBuffer = 10

// SSEHub fans API key events out to connected dashboard clients
type SSEHub struct {
	clients map[chan []byte]struct{}
	closed  bool
	mu      sync.RWMutex
}

// NewSSEHub creates a new SSE hub
func NewSSEHub() *SSEHub {
	return &SSEHub{
		clients: make(map[chan []byte]struct{}),
	}
}

// RegisterClient registers a new SSE client
func (h *SSEHub) RegisterClient() chan []byte {
	h.mu.Lock()
	defer h.mu.Unlock()

	clientChan := make(chan []byte, sseClientBuffer)
	if h.closed {
		close(clientChan)
		return clientChan
	}
	h.clients[clientChan] = struct{}{}

	logrus.Infof("SSE client registered (total clients: %d)", len(h.clients))
	return clientChan
}

// UnregisterClient removes and closes an SSE client channel
func (h *SSEHub) UnregisterClient(clientChan chan []byte) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if _, ok := h.clients[clientChan]; ok {
		delete(h.clients, clientChan)
		close(clientChan)
	}

	logrus.Infof("SSE client unregistered (remaining clients: %d)", len(h.clients))
}

// Publish broadcasts event to every client without blocking
func (h *SSEHub) Publish(_ context.Context, event models.APIKeyEvent) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	if len(h.clients) == 0 {
		return
	}

	eventJSON, err := json.Marshal(event)
	if err != nil {
		logrus.Errorf("Failed to marshal event for SSE: %v", err)
		return
	}

	message := []byte(fmt.Sprintf("event: %s\ndata: %s\n\n", event.Type, eventJSON))
	for clientChan := range h.clients {
		select {
		case clientChan <- message:
		default:
			// Channel is full, skip this client
			logrus.Warn("SSE client channel full, dropping event")
		}
	}
}

// Close disconnects every client and rejects new ones. Open event streams see
// their channel closed and return, so the HTTP server can drain.
func (h *SSEHub) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.closed {
		return
	}
	h.closed = true
	for clientChan := range h.clients {
		delete(h.clients, clientChan)
		close(clientChan)
	}
	logrus.Info("SSE hub closed")
}

// ClientCount returns the number of connected clients
func (h *SSEHub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}
