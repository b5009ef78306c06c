package domain

import "context"

type Message struct {
	Key   []byte
	Value []byte
}

type PublisherPort interface {
	Publish(topic string, msgs ...Message) error
}

type SubscriberPort interface {
	// Subscribe delivers messages until ctx is cancelled; the returned
	// channel is closed when consumption stops.
	Subscribe(ctx context.Context, topic, groupID string) (<-chan Message, error)
}
