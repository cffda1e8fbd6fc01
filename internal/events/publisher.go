package events

import (
	"context"

	"varsha-travels/internal/models"
	"varsha-travels/pkg/logger"
)

// Publisher receives resource events after a mutation has been stored.
// Delivery is best effort; errors never reach the HTTP caller.
type Publisher interface {
	Publish(ctx context.Context, event models.ResourceEvent) error
}

// Broadcaster is the part of the websocket hub used here.
type Broadcaster interface {
	Broadcast(room, msgType string, data interface{}) error
}

// KeyedProducer is the part of the kafka producer used here.
type KeyedProducer interface {
	Publish(ctx context.Context, key string, payload interface{}) error
}

type Nop struct{}

func (Nop) Publish(context.Context, models.ResourceEvent) error { return nil }

type WebSocketPublisher struct {
	hub Broadcaster
}

func NewWebSocketPublisher(hub Broadcaster) *WebSocketPublisher {
	return &WebSocketPublisher{hub: hub}
}

// Publish sends the event to the room named after its collection.
func (p *WebSocketPublisher) Publish(_ context.Context, event models.ResourceEvent) error {
	return p.hub.Broadcast(event.Resource, string(event.Action), event)
}

type KafkaPublisher struct {
	producer KeyedProducer
}

func NewKafkaPublisher(producer KeyedProducer) *KafkaPublisher {
	return &KafkaPublisher{producer: producer}
}

func (p *KafkaPublisher) Publish(ctx context.Context, event models.ResourceEvent) error {
	return p.producer.Publish(ctx, event.Resource+":"+event.ID, event)
}

// Fanout publishes to every sink and logs failures instead of returning
// them.
type Fanout struct {
	sinks  []Publisher
	logger *logger.Logger
}

func NewFanout(log *logger.Logger, sinks ...Publisher) *Fanout {
	if log == nil {
		log = logger.Discard()
	}
	return &Fanout{sinks: sinks, logger: log}
}

func (f *Fanout) Len() int {
	return len(f.sinks)
}

func (f *Fanout) Publish(ctx context.Context, event models.ResourceEvent) error {
	for _, sink := range f.sinks {
		if err := sink.Publish(ctx, event); err != nil {
			f.logger.WithResource(event.Resource, event.ID).
				WithError(err).
				WithField("action", event.Action).
				Warn("failed to publish resource event")
		}
	}
	return nil
}
