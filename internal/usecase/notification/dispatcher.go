package notification

import (
	"encoding/json"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/silkroute/order-tracking-service/internal/domain"
	publisher "github.com/silkroute/order-tracking-service/internal/infrastructure/kafka"
	"github.com/silkroute/order-tracking-service/internal/infrastructure/metrics"
)

// Dispatcher converts step events into addressed notifications: a durable
// write, a best-effort push to the owner's realtime channel, and a kafka
// event for downstream consumers. Only the durable write can fail the
// dispatch; everything after it is logged and dropped.
type Dispatcher struct {
	OrderRepo     domain.OrderRepository
	Notifications domain.NotificationRepository
	Hub           domain.RealtimePush
	Publisher     domain.PublisherPort
	Topic         string
	Metrics       *metrics.TrackerMetrics
	Log           *zap.Logger
}

func NewDispatcher(
	orderRepo domain.OrderRepository,
	notifications domain.NotificationRepository,
	hub domain.RealtimePush,
	kafkaPublisher domain.PublisherPort,
	topic string,
	trackerMetrics *metrics.TrackerMetrics,
	log *zap.Logger) *Dispatcher {

	return &Dispatcher{
		OrderRepo:     orderRepo,
		Notifications: notifications,
		Hub:           hub,
		Publisher:     kafkaPublisher,
		Topic:         topic,
		Metrics:       trackerMetrics,
		Log:           log,
	}
}

type realtimePayload struct {
	ID        uint      `json:"id"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}

func (d *Dispatcher) Dispatch(event domain.StepEvent) (*domain.Notification, error) {
	order, err := d.OrderRepo.GetOrderByID(event.OrderID)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve order owner: %w", err)
	}

	notification := &domain.Notification{
		UserID:    order.UserID,
		Message:   fmt.Sprintf("Step %d completed: %s", event.StepNumber, event.StepName),
		CreatedAt: time.Now(),
	}
	if err := d.Notifications.CreateNotification(notification); err != nil {
		return nil, err
	}
	d.Metrics.RecordNotificationDispatched()

	payload, err := json.Marshal(realtimePayload{
		ID:        notification.ID,
		Message:   notification.Message,
		CreatedAt: notification.CreatedAt,
	})
	if err != nil {
		return nil, err
	}

	// No live connection is not a failure: the notification is durable
	// and shows up on the next REST fetch.
	if err := d.Hub.Push(order.UserID, payload); err != nil {
		d.Metrics.RecordNotificationDropped()
		d.Log.Info("notification not delivered live",
			zap.Uint("user_id", order.UserID),
			zap.Uint("notification_id", notification.ID),
			zap.Error(err),
		)
	}

	if d.Publisher != nil {
		stepEvent := publisher.NewStepEvent(event.OrderID, event.StepNumber, event.StepName, notification.CreatedAt)
		go func() {
			msg, err := stepEvent.Message()
			if err == nil {
				err = d.Publisher.Publish(d.Topic, msg)
			}
			if err != nil {
				d.Log.Error("failed to publish kafka StepEvent",
					zap.Uint("order_id", event.OrderID),
					zap.Error(err),
				)
			}
		}()
	}

	return notification, nil
}
