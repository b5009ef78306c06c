package domain

import "time"

type Notification struct {
	ID        uint
	UserID    uint
	Message   string
	Read      bool
	CreatedAt time.Time
}

// StepEvent describes a committed step completion. The progression engine
// emits exactly one per false->true transition.
type StepEvent struct {
	OrderID    uint
	StepNumber int
	StepName   string
}

// NotificationDispatcher turns step events into addressed notifications.
type NotificationDispatcher interface {
	Dispatch(event StepEvent) (*Notification, error)
}

// RealtimePush delivers a payload to every live connection of a user.
// Delivery is best-effort; an error means no connection received it.
type RealtimePush interface {
	Push(userID uint, payload []byte) error
}
