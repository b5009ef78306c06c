package domain

type OrderRepository interface {
	CreateOrder(order *Order) error
	GetOrderByID(orderID uint) (*Order, error)
	GetOrdersByUserID(userID uint, skip, limit int) ([]*Order, error)
	GetAllOrders(skip, limit int) ([]*Order, error)
	GetSteps(orderID uint) ([]*OrderStep, error)
	// MarkStepCompleted persists the step transition and the recomputed
	// order status in a single transaction.
	MarkStepCompleted(step *OrderStep, status OrderStatus) error
}
