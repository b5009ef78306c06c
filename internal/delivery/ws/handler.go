package ws

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/silkroute/order-tracking-service/internal/domain"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// The HTTP API is served cross-origin from the frontend dev server.
	CheckOrigin: func(r *http.Request) bool { return true },
}

type Handler struct {
	hub   *Hub
	users domain.UserRepository
	log   *zap.Logger
}

func NewHandler(hub *Hub, users domain.UserRepository, log *zap.Logger) *Handler {
	return &Handler{hub: hub, users: users, log: log}
}

// Serve upgrades GET /ws/:user_id. Unknown users are closed with 1008
// (policy violation) right after the handshake, failed lookups with 1011.
func (h *Handler) Serve(c *gin.Context) {
	userID, err := strconv.ParseUint(c.Param("user_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "invalid user id"})
		return
	}

	_, lookupErr := h.users.GetUserByID(uint(userID))

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.log.Warn("websocket upgrade failed", zap.Error(err))
		return
	}

	if lookupErr != nil {
		code := websocket.CloseInternalServerErr
		reason := "user lookup failed"
		if errors.Is(lookupErr, domain.ErrNotFound) {
			code = websocket.ClosePolicyViolation
			reason = "unknown user"
		}
		conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(code, reason))
		conn.Close()
		return
	}

	client := NewClient(h.hub, conn, uint(userID), h.log)
	h.hub.Register(client)

	go client.writePump()
	go client.readPump()
}
