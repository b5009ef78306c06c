package repository

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/silkroute/order-tracking-service/internal/domain"
	"github.com/silkroute/order-tracking-service/internal/infrastructure/postgres/mappers"
	"github.com/silkroute/order-tracking-service/internal/infrastructure/postgres/models"
)

type DefaultNotificationRepository struct {
	DB *gorm.DB
}

func NewDefaultNotificationRepository(db *gorm.DB) *DefaultNotificationRepository {
	return &DefaultNotificationRepository{DB: db}
}

func (r *DefaultNotificationRepository) CreateNotification(notification *domain.Notification) error {
	notificationModel := mappers.ToGORMNotification(notification)
	if err := r.DB.Create(notificationModel).Error; err != nil {
		return fmt.Errorf("failed to create notification: %w", err)
	}

	notification.ID = notificationModel.ID
	notification.CreatedAt = notificationModel.CreatedAt
	return nil
}

func (r *DefaultNotificationRepository) GetNotificationsByUserID(userID uint, skip, limit int) ([]*domain.Notification, error) {
	var notificationModels []models.NotificationModel
	err := r.DB.
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Offset(skip).
		Limit(limit).
		Find(&notificationModels).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find notifications: %w", err)
	}

	notifications := make([]*domain.Notification, len(notificationModels))
	for i := range notificationModels {
		notifications[i] = mappers.ToDomainNotification(&notificationModels[i])
	}

	return notifications, nil
}

func (r *DefaultNotificationRepository) MarkRead(notificationID, userID uint) error {
	res := r.DB.Model(&models.NotificationModel{}).
		Where("id = ? AND user_id = ?", notificationID, userID).
		Update("read", true)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrNotFound
	}

	return nil
}
