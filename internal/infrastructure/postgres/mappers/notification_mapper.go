package mappers

import (
	"github.com/silkroute/order-tracking-service/internal/domain"
	"github.com/silkroute/order-tracking-service/internal/infrastructure/postgres/models"
)

func ToDomainNotification(model *models.NotificationModel) *domain.Notification {
	return &domain.Notification{
		ID:        model.ID,
		UserID:    model.UserID,
		Message:   model.Message,
		Read:      model.Read,
		CreatedAt: model.CreatedAt,
	}
}

func ToGORMNotification(notification *domain.Notification) *models.NotificationModel {
	return &models.NotificationModel{
		ID:        notification.ID,
		UserID:    notification.UserID,
		Message:   notification.Message,
		Read:      notification.Read,
		CreatedAt: notification.CreatedAt,
	}
}
