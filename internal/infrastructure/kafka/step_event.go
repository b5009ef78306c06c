package publisher

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/jaevor/go-nanoid"

	"github.com/silkroute/order-tracking-service/internal/domain"
)

var newEventID, _ = nanoid.Standard(21)

type StepEvent struct {
	EventID     string    `json:"event_id"`
	OrderID     uint      `json:"order_id"`
	StepNumber  int       `json:"step_number"`
	StepName    string    `json:"step_name"`
	Status      string    `json:"status"`
	CompletedAt time.Time `json:"completed_at"`
}

func NewStepEvent(orderID uint, stepNumber int, stepName string, completedAt time.Time) StepEvent {
	return StepEvent{
		EventID:     newEventID(),
		OrderID:     orderID,
		StepNumber:  stepNumber,
		StepName:    stepName,
		Status:      stepName,
		CompletedAt: completedAt,
	}
}

func (e StepEvent) OrderKey() string {
	return fmt.Sprintf("order-%d", e.OrderID)
}

// Message keys the event by order id so all events of one order land on
// the same partition, preserving their commit order downstream.
func (e StepEvent) Message() (domain.Message, error) {
	v, err := json.Marshal(e)
	if err != nil {
		return domain.Message{}, err
	}
	return domain.Message{Key: []byte(e.OrderKey()), Value: v}, nil
}
