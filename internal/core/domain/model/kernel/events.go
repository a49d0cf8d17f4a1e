package kernel

import "time"

// DomainEvent is a fact recorded by an aggregate during a business operation.
// Events are published only after the unit of work that produced them commits.
type DomainEvent interface {
	// EventName is the routing name, e.g. "order.placed".
	EventName() string
	// AggregateID identifies the aggregate that raised the event.
	AggregateID() UUID
	// OccurredAt is when the aggregate recorded the event.
	OccurredAt() time.Time
}

// EventSource is implemented by aggregates that record domain events.
type EventSource interface {
	DomainEvents() []DomainEvent
	ClearDomainEvents()
}
