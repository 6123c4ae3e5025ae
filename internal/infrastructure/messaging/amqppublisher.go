// Package messaging publishes complaint events to RabbitMQ for downstream consumers.
package messaging

import (
	"context"
	"encoding/json"
	"fmt"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/civicdesk/civicdesk/internal/domain/shared/events"
	"github.com/civicdesk/civicdesk/internal/shared/biztime"
)

const DefaultQueue = "complaints.events"

// EventPublisher forwards a domain event to an external broker.
type EventPublisher interface {
	Publish(ctx context.Context, event events.DomainEvent) error
}

// AMQPPublisher dials the broker for every message and declares the durable queue
// before publishing.
type AMQPPublisher struct {
	url   string
	queue string
}

func NewAMQPPublisher(url, queue string) *AMQPPublisher {
	if queue == "" {
		queue = DefaultQueue
	}
	return &AMQPPublisher{url: url, queue: queue}
}

func (p *AMQPPublisher) Publish(ctx context.Context, event events.DomainEvent) error {
	body, err := encodeEvent(event)
	if err != nil {
		return err
	}

	conn, err := amqp.Dial(p.url)
	if err != nil {
		return fmt.Errorf("amqp dial: %w", err)
	}
	defer func() { _ = conn.Close() }()

	ch, err := conn.Channel()
	if err != nil {
		return fmt.Errorf("amqp channel open: %w", err)
	}
	defer func() { _ = ch.Close() }()

	if _, err := ch.QueueDeclare(p.queue, true, false, false, false, nil); err != nil {
		return fmt.Errorf("amqp queue declare %s: %w", p.queue, err)
	}

	pub := amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Timestamp:    biztime.NowUTC(),
		Type:         event.GetEventType(),
		Body:         body,
	}
	if err := ch.PublishWithContext(ctx, "", p.queue, false, false, pub); err != nil {
		return fmt.Errorf("amqp publish: %w", err)
	}
	return nil
}

// envelope is the wire shape consumers read from the queue.
type envelope struct {
	EventType   string `json:"event_type"`
	AggregateID string `json:"aggregate_id"`
	OccurredAt  string `json:"occurred_at"`
	Data        any    `json:"data"`
}

func encodeEvent(event events.DomainEvent) ([]byte, error) {
	body, err := json.Marshal(envelope{
		EventType:   event.GetEventType(),
		AggregateID: event.GetAggregateID(),
		OccurredAt:  event.GetOccurredAt().UTC().Format("2006-01-02T15:04:05Z07:00"),
		Data:        event,
	})
	if err != nil {
		return nil, fmt.Errorf("marshal event %s: %w", event.GetEventType(), err)
	}
	return body, nil
}
