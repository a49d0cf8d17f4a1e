package rabbitmq

import (
	"encoding/json"
	"fmt"
	"time"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/order"
)

// envelope is the JSON body of every published message.
type envelope struct {
	Event       string    `json:"event"`
	AggregateID string    `json:"aggregate_id"`
	OccurredAt  time.Time `json:"occurred_at"`
	Payload     any       `json:"payload"`
}

type orderPlacedPayload struct {
	OrderID string `json:"order_id"`
	OwnerID string `json:"owner_id"`
	Total   string `json:"total"`
	Lines   int    `json:"lines"`
}

type orderAssignedPayload struct {
	OrderID    string `json:"order_id"`
	AssigneeID string `json:"assignee_id"`
	Override   bool   `json:"override"`
}

type orderDeliveredPayload struct {
	OrderID    string  `json:"order_id"`
	AssigneeID *string `json:"assignee_id"`
}

// encode returns the routing key and JSON body for e.
func encode(e kernel.DomainEvent) (string, []byte, error) {
	var payload any
	switch ev := e.(type) {
	case order.PlacedEvent:
		payload = orderPlacedPayload{
			OrderID: ev.OrderID.String(),
			OwnerID: ev.OwnerID.String(),
			Total:   ev.Total.String(),
			Lines:   ev.Lines,
		}
	case order.AssignedEvent:
		payload = orderAssignedPayload{
			OrderID:    ev.OrderID.String(),
			AssigneeID: ev.AssigneeID.String(),
			Override:   ev.Override,
		}
	case order.DeliveredEvent:
		p := orderDeliveredPayload{OrderID: ev.OrderID.String()}
		if ev.AssigneeID != nil {
			id := ev.AssigneeID.String()
			p.AssigneeID = &id
		}
		payload = p
	default:
		return "", nil, fmt.Errorf("no message mapping for event %T", e)
	}

	body, err := json.Marshal(envelope{
		Event:       e.EventName(),
		AggregateID: e.AggregateID().String(),
		OccurredAt:  e.OccurredAt().UTC(),
		Payload:     payload,
	})
	if err != nil {
		return "", nil, err
	}
	return e.EventName(), body, nil
}
