package domain

type NotificationRepository interface {
	CreateNotification(notification *Notification) error
	GetNotificationsByUserID(userID uint, skip, limit int) ([]*Notification, error)
	// MarkRead sets read=true. The read flag is never cleared.
	MarkRead(notificationID, userID uint) error
}
