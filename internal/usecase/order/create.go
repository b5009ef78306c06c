package usecase

import (
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/silkroute/order-tracking-service/internal/domain"
	orderdto "github.com/silkroute/order-tracking-service/internal/usecase/dto/order"
)

// CreateOrder persists a new order owned by the actor together with the
// full workflow template, all steps uncompleted.
func (uc *DefaultOrderUsecase) CreateOrder(input *orderdto.CreateOrderInput, actor domain.Actor) (*domain.Order, error) {
	if strings.TrimSpace(input.ProductDescription) == "" {
		return nil, fmt.Errorf("%w: product_description is required", domain.ErrValidation)
	}

	productCount := input.ProductCount
	if productCount <= 0 {
		productCount = 1
	}

	steps := make([]*domain.OrderStep, len(domain.WorkflowTemplate))
	for i, stepName := range domain.WorkflowTemplate {
		steps[i] = &domain.OrderStep{
			StepNumber: i + 1,
			StepName:   stepName,
		}
	}

	order := &domain.Order{
		UserID:             actor.UserID,
		Name:               input.Name,
		Description:        input.Description,
		ProductURL:         input.ProductURL,
		ProductImage:       input.ProductImage,
		ProductCount:       productCount,
		SourceLocation:     input.SourceLocation,
		ProductDescription: input.ProductDescription,
		Status:             domain.StatusOrderReceived,
		NextStep:           1,
		Steps:              steps,
	}

	if err := uc.OrderRepo.CreateOrder(order); err != nil {
		return nil, err
	}

	uc.Metrics.RecordOrderCreated(order.SourceLocation)
	uc.Log.Info("order created",
		zap.Uint("order_id", order.ID),
		zap.Uint("user_id", order.UserID),
	)

	return order, nil
}
