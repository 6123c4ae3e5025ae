package events

import (
	"time"
)

// DomainEvent is anything an aggregate announces after a state change.
type DomainEvent interface {
	GetAggregateID() string
	GetEventType() string
	GetOccurredAt() time.Time
	GetVersion() int
}

// BaseEvent provides the common fields for all domain events.
type BaseEvent struct {
	AggregateID string    `json:"aggregate_id"`
	EventType   string    `json:"event_type"`
	OccurredAt  time.Time `json:"occurred_at"`
	Version     int       `json:"version"`
}

// NewBaseEvent stamps an event of eventType for aggregateID at occurredAt.
func NewBaseEvent(aggregateID, eventType string, occurredAt time.Time) BaseEvent {
	return BaseEvent{
		AggregateID: aggregateID,
		EventType:   eventType,
		OccurredAt:  occurredAt,
		Version:     1,
	}
}

func (e BaseEvent) GetAggregateID() string   { return e.AggregateID }
func (e BaseEvent) GetEventType() string     { return e.EventType }
func (e BaseEvent) GetOccurredAt() time.Time { return e.OccurredAt }
func (e BaseEvent) GetVersion() int          { return e.Version }

// EventHandler reacts to published events.
type EventHandler interface {
	Handle(event DomainEvent) error
	CanHandle(eventType string) bool
}

type EventPublisher interface {
	Publish(event DomainEvent) error
	PublishAll(events []DomainEvent) error
}

type EventSubscriber interface {
	Subscribe(eventType string, handler EventHandler) error
}

// EventDispatcher combines publisher and subscriber functionality with a lifecycle.
type EventDispatcher interface {
	EventPublisher
	EventSubscriber
	Start() error
	Stop() error
}
