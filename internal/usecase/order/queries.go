package usecase

import "github.com/silkroute/order-tracking-service/internal/domain"

const defaultListLimit = 100

func (uc *DefaultOrderUsecase) GetOrderByID(orderID uint, actor domain.Actor) (*domain.Order, error) {
	order, err := uc.OrderRepo.GetOrderByID(orderID)
	if err != nil {
		return nil, err
	}

	if !actor.IsTeam && order.UserID != actor.UserID {
		return nil, domain.ErrForbidden
	}

	return order, nil
}

// ListOrders returns the actor's own orders, newest first. Team members
// see every order.
func (uc *DefaultOrderUsecase) ListOrders(actor domain.Actor, skip, limit int) ([]*domain.Order, error) {
	if limit <= 0 {
		limit = defaultListLimit
	}

	if actor.IsTeam {
		return uc.OrderRepo.GetAllOrders(skip, limit)
	}
	return uc.OrderRepo.GetOrdersByUserID(actor.UserID, skip, limit)
}

func (uc *DefaultOrderUsecase) GetSteps(orderID uint, actor domain.Actor) ([]*domain.OrderStep, error) {
	// Existence and ownership checks ride on the order read.
	if _, err := uc.GetOrderByID(orderID, actor); err != nil {
		return nil, err
	}

	return uc.OrderRepo.GetSteps(orderID)
}
