package repository

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/silkroute/order-tracking-service/internal/domain"
	"github.com/silkroute/order-tracking-service/internal/infrastructure/postgres/mappers"
	"github.com/silkroute/order-tracking-service/internal/infrastructure/postgres/models"
)

type DefaultOrderRepository struct {
	DB *gorm.DB
}

func NewDefaultOrderRepository(db *gorm.DB) *DefaultOrderRepository {
	return &DefaultOrderRepository{DB: db}
}

func (r *DefaultOrderRepository) CreateOrder(order *domain.Order) error {
	orderModel := mappers.ToGORMOrder(order)
	if err := r.DB.Create(orderModel).Error; err != nil {
		return fmt.Errorf("failed to create order: %w", err)
	}

	// Write back generated ids so callers see the persisted state.
	order.ID = orderModel.ID
	order.CreatedAt = orderModel.CreatedAt
	for i := range orderModel.Steps {
		order.Steps[i].ID = orderModel.Steps[i].ID
		order.Steps[i].OrderID = orderModel.Steps[i].OrderID
	}

	return nil
}

func (r *DefaultOrderRepository) GetOrderByID(orderID uint) (*domain.Order, error) {
	var orderModel models.OrderModel
	err := r.DB.Preload("Steps", func(db *gorm.DB) *gorm.DB {
		return db.Order("step_number ASC")
	}).First(&orderModel, "id = ?", orderID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}

	return mappers.ToDomainOrder(&orderModel), nil
}

func (r *DefaultOrderRepository) GetOrdersByUserID(userID uint, skip, limit int) ([]*domain.Order, error) {
	var orderModels []models.OrderModel
	err := r.DB.Preload("Steps", func(db *gorm.DB) *gorm.DB {
		return db.Order("step_number ASC")
	}).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Offset(skip).
		Limit(limit).
		Find(&orderModels).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find orders: %w", err)
	}

	orders := make([]*domain.Order, len(orderModels))
	for i := range orderModels {
		orders[i] = mappers.ToDomainOrder(&orderModels[i])
	}

	return orders, nil
}

func (r *DefaultOrderRepository) GetAllOrders(skip, limit int) ([]*domain.Order, error) {
	var orderModels []models.OrderModel
	err := r.DB.Preload("Steps", func(db *gorm.DB) *gorm.DB {
		return db.Order("step_number ASC")
	}).
		Order("created_at DESC").
		Offset(skip).
		Limit(limit).
		Find(&orderModels).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find orders: %w", err)
	}

	orders := make([]*domain.Order, len(orderModels))
	for i := range orderModels {
		orders[i] = mappers.ToDomainOrder(&orderModels[i])
	}

	return orders, nil
}

func (r *DefaultOrderRepository) GetSteps(orderID uint) ([]*domain.OrderStep, error) {
	var stepModels []models.OrderStepModel
	err := r.DB.
		Where("order_id = ?", orderID).
		Order("step_number ASC").
		Find(&stepModels).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find steps: %w", err)
	}

	steps := make([]*domain.OrderStep, len(stepModels))
	for i := range stepModels {
		steps[i] = mappers.ToDomainStep(&stepModels[i])
	}

	return steps, nil
}

// MarkStepCompleted flips the step to completed and updates the order
// status in one transaction. The update is conditional on completed=false,
// so a second writer racing from another process loses cleanly.
func (r *DefaultOrderRepository) MarkStepCompleted(step *domain.OrderStep, status domain.OrderStatus) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&models.OrderStepModel{}).
			Where("id = ? AND completed = ?", step.ID, false).
			Updates(map[string]interface{}{
				"completed":    true,
				"completed_at": step.CompletedAt,
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return domain.ErrAlreadyCompleted
		}

		return tx.Model(&models.OrderModel{}).
			Where("id = ?", step.OrderID).
			Update("status", status).Error
	})
}
