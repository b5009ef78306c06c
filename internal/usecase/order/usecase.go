package usecase

import (
	"go.uber.org/zap"

	"github.com/silkroute/order-tracking-service/internal/domain"
	"github.com/silkroute/order-tracking-service/internal/infrastructure/metrics"
	orderdto "github.com/silkroute/order-tracking-service/internal/usecase/dto/order"
)

type OrderUsecase interface {
	CreateOrder(input *orderdto.CreateOrderInput, actor domain.Actor) (*domain.Order, error)

	GetOrderByID(orderID uint, actor domain.Actor) (*domain.Order, error)
	ListOrders(actor domain.Actor, skip, limit int) ([]*domain.Order, error)
	GetSteps(orderID uint, actor domain.Actor) ([]*domain.OrderStep, error)

	CompleteStep(orderID uint, stepNumber int, actor domain.Actor) (*domain.OrderStep, error)
}

type DefaultOrderUsecase struct {
	OrderRepo  domain.OrderRepository
	Dispatcher domain.NotificationDispatcher
	Metrics    *metrics.TrackerMetrics
	Log        *zap.Logger

	locks *orderLocks
}

func NewDefaultOrderUsecase(
	orderRepo domain.OrderRepository,
	dispatcher domain.NotificationDispatcher,
	trackerMetrics *metrics.TrackerMetrics,
	log *zap.Logger) *DefaultOrderUsecase {

	return &DefaultOrderUsecase{
		OrderRepo:  orderRepo,
		Dispatcher: dispatcher,
		Metrics:    trackerMetrics,
		Log:        log,
		locks:      newOrderLocks(),
	}
}
