package httpapi

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/silkroute/order-tracking-service/internal/domain"
)

type NotificationHandler struct {
	notifications domain.NotificationRepository
}

func NewNotificationHandler(notifications domain.NotificationRepository) *NotificationHandler {
	return &NotificationHandler{notifications: notifications}
}

// List returns the actor's own notifications, newest first. Notifications
// missed while offline are caught up here.
func (h *NotificationHandler) List(c *gin.Context) {
	skip, limit := pagination(c)
	notifications, err := h.notifications.GetNotificationsByUserID(currentActor(c).UserID, skip, limit)
	if err != nil {
		abortWithError(c, err)
		return
	}

	out := make([]notificationResponse, len(notifications))
	for i, n := range notifications {
		out[i] = toNotificationResponse(n)
	}
	c.JSON(http.StatusOK, out)
}

// MarkRead flips the read flag. Only the recipient can do it, and it
// cannot be undone.
func (h *NotificationHandler) MarkRead(c *gin.Context) {
	notificationID, err := strconv.ParseUint(c.Param("notification_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "invalid notification id"})
		return
	}

	if err := h.notifications.MarkRead(uint(notificationID), currentActor(c).UserID); err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}
