package ports

import (
	"context"

	"restaurant/internal/core/domain/model/kernel"
)

// EventPublisher delivers domain events to the outside world once the
// transaction that produced them has committed.
type EventPublisher interface {
	Publish(ctx context.Context, events ...kernel.DomainEvent) error
}
