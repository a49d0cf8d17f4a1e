// Package eventlog is the event publisher used when no message broker is
// configured: every event becomes one structured log record.
package eventlog

import (
	"context"
	"log/slog"

	"restaurant/internal/core/domain/model/kernel"
)

type Publisher struct {
	logger *slog.Logger
}

func NewPublisher(logger *slog.Logger) *Publisher {
	return &Publisher{logger: logger.With("component", "event_log")}
}

func (p *Publisher) Publish(ctx context.Context, events ...kernel.DomainEvent) error {
	for _, e := range events {
		p.logger.InfoContext(ctx, "domain event",
			"event", e.EventName(),
			"aggregate_id", e.AggregateID().String(),
			"occurred_at", e.OccurredAt(),
		)
	}
	return nil
}
