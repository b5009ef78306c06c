package ws

import (
	"errors"
	"sync"

	"go.uber.org/zap"

	"github.com/silkroute/order-tracking-service/internal/infrastructure/metrics"
)

// ErrNoActiveConnection is returned by Push when the user has no live
// connection. The dispatcher treats it as a dropped live delivery, not a
// failure.
var ErrNoActiveConnection = errors.New("no active connection for user")

// Hub keeps the live connections addressed by user id. A user may hold
// several connections at once; a push fans out to all of them.
type Hub struct {
	mu      sync.RWMutex
	clients map[uint]map[*Client]struct{}

	metrics *metrics.TrackerMetrics
	log     *zap.Logger
}

func NewHub(trackerMetrics *metrics.TrackerMetrics, log *zap.Logger) *Hub {
	return &Hub{
		clients: make(map[uint]map[*Client]struct{}),
		metrics: trackerMetrics,
		log:     log,
	}
}

func (h *Hub) Register(c *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	conns, ok := h.clients[c.UserID]
	if !ok {
		conns = make(map[*Client]struct{})
		h.clients[c.UserID] = conns
	}
	conns[c] = struct{}{}

	if h.metrics != nil {
		h.metrics.WSConnectionsActive.Inc()
	}
	h.log.Info("websocket connected",
		zap.Uint("user_id", c.UserID),
		zap.String("connection_id", c.ID),
	)
}

func (h *Hub) Unregister(c *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	conns, ok := h.clients[c.UserID]
	if !ok {
		return
	}
	if _, ok := conns[c]; !ok {
		return
	}
	delete(conns, c)
	if len(conns) == 0 {
		delete(h.clients, c.UserID)
	}
	close(c.send)

	if h.metrics != nil {
		h.metrics.WSConnectionsActive.Dec()
	}
	h.log.Info("websocket disconnected",
		zap.Uint("user_id", c.UserID),
		zap.String("connection_id", c.ID),
	)
}

// Push enqueues the payload on every connection of the user without
// blocking. A connection whose buffer is full misses this payload; the
// durable store is the catch-up path.
func (h *Hub) Push(userID uint, payload []byte) error {
	h.mu.RLock()
	defer h.mu.RUnlock()

	conns, ok := h.clients[userID]
	if !ok || len(conns) == 0 {
		return ErrNoActiveConnection
	}

	for c := range conns {
		select {
		case c.send <- payload:
		default:
			h.log.Warn("websocket send buffer full, payload skipped",
				zap.Uint("user_id", userID),
				zap.String("connection_id", c.ID),
			)
		}
	}

	return nil
}
