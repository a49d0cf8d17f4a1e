// Package rabbitmq publishes domain events to a durable topic exchange with
// publisher confirms. The event name is the routing key.
package rabbitmq

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"restaurant/internal/core/domain/model/kernel"

	amqp "github.com/rabbitmq/amqp091-go"
)

var ErrPublishNacked = errors.New("publish NACK from broker")

// confirmTimeout bounds one Publish call, however many events it carries.
const confirmTimeout = 5 * time.Second

// Publisher implements ports.EventPublisher over one AMQP channel in confirm mode.
type Publisher struct {
	conn     *amqp.Connection
	ch       *amqp.Channel
	acks     <-chan amqp.Confirmation
	exchange string
	logger   *slog.Logger

	// Publish waits for the confirm of its own message, so calls are serialized.
	mu sync.Mutex
}

// Dial connects to url, declares exchange as a durable topic exchange and
// enables publisher confirms.
func Dial(url, exchange string, logger *slog.Logger) (*Publisher, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("dial amqp: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("open channel: %w", err)
	}

	if err = ch.ExchangeDeclare(exchange, amqp.ExchangeTopic, true, false, false, false, nil); err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return nil, fmt.Errorf("declare exchange %q: %w", exchange, err)
	}

	if err = ch.Confirm(false); err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return nil, fmt.Errorf("enable confirms: %w", err)
	}

	return &Publisher{
		conn:     conn,
		ch:       ch,
		acks:     ch.NotifyPublish(make(chan amqp.Confirmation, 16)),
		exchange: exchange,
		logger:   logger.With("component", "rabbitmq_publisher"),
	}, nil
}

// Publish sends every event and waits for the broker to confirm each one.
// It stops at the first failure.
func (p *Publisher) Publish(ctx context.Context, events ...kernel.DomainEvent) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	ctx, cancel := context.WithTimeout(ctx, confirmTimeout)
	defer cancel()

	for _, e := range events {
		key, body, err := encode(e)
		if err != nil {
			return err
		}

		if err = p.publishOne(ctx, key, body); err != nil {
			return fmt.Errorf("publish %s for %s: %w", key, e.AggregateID(), err)
		}

		p.logger.DebugContext(ctx, "event published",
			"event", key,
			"aggregate_id", e.AggregateID().String(),
		)
	}
	return nil
}

func (p *Publisher) publishOne(ctx context.Context, key string, body []byte) error {
	tag := p.ch.GetNextPublishSeqNo()

	if err := p.ch.PublishWithContext(ctx, p.exchange, key, false, false, amqp.Publishing{
		DeliveryMode: amqp.Persistent,
		ContentType:  "application/json",
		Timestamp:    time.Now(),
		Body:         body,
	}); err != nil {
		return err
	}

	return awaitConfirm(ctx, p.acks, tag)
}

// awaitConfirm waits for the confirm of the message published with tag.
// Confirms with lower tags arrived after their publisher gave up and are dropped.
func awaitConfirm(ctx context.Context, acks <-chan amqp.Confirmation, tag uint64) error {
	for {
		select {
		case conf, ok := <-acks:
			if !ok {
				return amqp.ErrClosed
			}
			if conf.DeliveryTag < tag {
				continue
			}
			if !conf.Ack {
				return ErrPublishNacked
			}
			return nil
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

// Ping reports whether the connection is still open.
func (p *Publisher) Ping() error {
	if p.conn == nil || p.conn.IsClosed() {
		return errors.New("rabbitmq connection is closed")
	}
	return nil
}

func (p *Publisher) Close() error {
	return errors.Join(p.ch.Close(), p.conn.Close())
}
