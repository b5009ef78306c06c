package usecase

import (
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/silkroute/order-tracking-service/internal/domain"
	"github.com/silkroute/order-tracking-service/internal/infrastructure/metrics"
)

// One registry per test binary; promauto registers globally.
var testMetrics = metrics.NewTrackerMetrics()

// fakeOrderRepo is an in-memory domain.OrderRepository. Reads hand out
// deep copies so callers cannot mutate stored state without going through
// MarkStepCompleted, mirroring how the gorm repository behaves.
type fakeOrderRepo struct {
	mu     sync.Mutex
	orders map[uint]*domain.Order
	nextID uint
}

func newFakeOrderRepo() *fakeOrderRepo {
	return &fakeOrderRepo{orders: make(map[uint]*domain.Order)}
}

func cloneOrder(o *domain.Order) *domain.Order {
	c := *o
	c.Steps = make([]*domain.OrderStep, len(o.Steps))
	for i, s := range o.Steps {
		cs := *s
		if s.CompletedAt != nil {
			at := *s.CompletedAt
			cs.CompletedAt = &at
		}
		c.Steps[i] = &cs
	}
	c.NextStep = domain.NextIncompleteStep(c.Steps)
	return &c
}

func (r *fakeOrderRepo) CreateOrder(order *domain.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.nextID++
	order.ID = r.nextID
	order.CreatedAt = time.Now()
	for i, step := range order.Steps {
		step.ID = order.ID*100 + uint(i) + 1
		step.OrderID = order.ID
	}
	r.orders[order.ID] = cloneOrder(order)
	return nil
}

func (r *fakeOrderRepo) GetOrderByID(orderID uint) (*domain.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	order, ok := r.orders[orderID]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return cloneOrder(order), nil
}

func (r *fakeOrderRepo) GetOrdersByUserID(userID uint, skip, limit int) ([]*domain.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var out []*domain.Order
	for _, order := range r.orders {
		if order.UserID == userID {
			out = append(out, cloneOrder(order))
		}
	}
	sortOrdersByCreatedAtDesc(out)
	return page(out, skip, limit), nil
}

func (r *fakeOrderRepo) GetAllOrders(skip, limit int) ([]*domain.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var out []*domain.Order
	for _, order := range r.orders {
		out = append(out, cloneOrder(order))
	}
	sortOrdersByCreatedAtDesc(out)
	return page(out, skip, limit), nil
}

func (r *fakeOrderRepo) GetSteps(orderID uint) ([]*domain.OrderStep, error) {
	order, err := r.GetOrderByID(orderID)
	if err != nil {
		return nil, err
	}
	return order.Steps, nil
}

func (r *fakeOrderRepo) MarkStepCompleted(step *domain.OrderStep, status domain.OrderStatus) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	order, ok := r.orders[step.OrderID]
	if !ok {
		return domain.ErrNotFound
	}
	for _, stored := range order.Steps {
		if stored.ID == step.ID {
			if stored.Completed {
				return domain.ErrAlreadyCompleted
			}
			stored.Completed = true
			at := *step.CompletedAt
			stored.CompletedAt = &at
			order.Status = status
			return nil
		}
	}
	return domain.ErrNotFound
}

func sortOrdersByCreatedAtDesc(orders []*domain.Order) {
	sort.Slice(orders, func(i, j int) bool {
		if orders[i].CreatedAt.Equal(orders[j].CreatedAt) {
			return orders[i].ID > orders[j].ID
		}
		return orders[i].CreatedAt.After(orders[j].CreatedAt)
	})
}

func page(orders []*domain.Order, skip, limit int) []*domain.Order {
	if skip >= len(orders) {
		return nil
	}
	orders = orders[skip:]
	if limit < len(orders) {
		orders = orders[:limit]
	}
	return orders
}

type fakeDispatcher struct {
	mu     sync.Mutex
	events []domain.StepEvent
	err    error
}

func (d *fakeDispatcher) Dispatch(event domain.StepEvent) (*domain.Notification, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.err != nil {
		return nil, d.err
	}
	d.events = append(d.events, event)
	return &domain.Notification{
		ID:        uint(len(d.events)),
		Message:   fmt.Sprintf("Step %d completed: %s", event.StepNumber, event.StepName),
		CreatedAt: time.Now(),
	}, nil
}

func (d *fakeDispatcher) count() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.events)
}

func (d *fakeDispatcher) countFor(orderID uint, stepNumber int) int {
	d.mu.Lock()
	defer d.mu.Unlock()

	n := 0
	for _, e := range d.events {
		if e.OrderID == orderID && e.StepNumber == stepNumber {
			n++
		}
	}
	return n
}
