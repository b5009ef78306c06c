package mappers

import (
	"github.com/silkroute/order-tracking-service/internal/domain"
	"github.com/silkroute/order-tracking-service/internal/infrastructure/postgres/models"
)

func ToDomainOrder(model *models.OrderModel) *domain.Order {
	steps := make([]*domain.OrderStep, len(model.Steps))
	for i := range model.Steps {
		steps[i] = ToDomainStep(&model.Steps[i])
	}

	return &domain.Order{
		ID:                 model.ID,
		UserID:             model.UserID,
		Name:               model.Name,
		Description:        model.Description,
		ProductURL:         model.ProductURL,
		ProductImage:       model.ProductImage,
		ProductCount:       model.ProductCount,
		SourceLocation:     model.SourceLocation,
		ProductDescription: model.ProductDescription,
		Status:             model.Status,
		CreatedAt:          model.CreatedAt,
		NextStep:           domain.NextIncompleteStep(steps),
		Steps:              steps,
	}
}

func ToGORMOrder(order *domain.Order) *models.OrderModel {
	steps := make([]models.OrderStepModel, len(order.Steps))
	for i, step := range order.Steps {
		steps[i] = *ToGORMStep(step)
	}

	return &models.OrderModel{
		ID:                 order.ID,
		UserID:             order.UserID,
		Name:               order.Name,
		Description:        order.Description,
		ProductURL:         order.ProductURL,
		ProductImage:       order.ProductImage,
		ProductCount:       order.ProductCount,
		SourceLocation:     order.SourceLocation,
		ProductDescription: order.ProductDescription,
		Status:             order.Status,
		Steps:              steps,
		CreatedAt:          order.CreatedAt,
	}
}

func ToDomainStep(model *models.OrderStepModel) *domain.OrderStep {
	return &domain.OrderStep{
		ID:          model.ID,
		OrderID:     model.OrderID,
		StepNumber:  model.StepNumber,
		StepName:    model.StepName,
		Completed:   model.Completed,
		CompletedAt: model.CompletedAt,
	}
}

func ToGORMStep(step *domain.OrderStep) *models.OrderStepModel {
	return &models.OrderStepModel{
		ID:          step.ID,
		OrderID:     step.OrderID,
		StepNumber:  step.StepNumber,
		StepName:    step.StepName,
		Completed:   step.Completed,
		CompletedAt: step.CompletedAt,
	}
}
