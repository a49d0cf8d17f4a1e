package order

import (
	"time"

	"restaurant/internal/core/domain/model/kernel"
)

// Event names double as message routing keys.
const (
	EventPlaced    = "order.placed"
	EventAssigned  = "order.assigned"
	EventDelivered = "order.delivered"
)

// PlacedEvent is recorded when an order is created from a cart.
type PlacedEvent struct {
	OrderID kernel.UUID
	OwnerID kernel.UUID
	Total   kernel.Money
	Lines   int
	At      time.Time
}

func (e PlacedEvent) EventName() string        { return EventPlaced }
func (e PlacedEvent) AggregateID() kernel.UUID { return e.OrderID }
func (e PlacedEvent) OccurredAt() time.Time    { return e.At }

// AssignedEvent is recorded when a delivery assignee is set. Override is true
// for the administrative path.
type AssignedEvent struct {
	OrderID    kernel.UUID
	AssigneeID kernel.UUID
	Override   bool
	At         time.Time
}

func (e AssignedEvent) EventName() string        { return EventAssigned }
func (e AssignedEvent) AggregateID() kernel.UUID { return e.OrderID }
func (e AssignedEvent) OccurredAt() time.Time    { return e.At }

// DeliveredEvent is recorded on the Placed -> Delivered transition.
type DeliveredEvent struct {
	OrderID    kernel.UUID
	AssigneeID *kernel.UUID
	At         time.Time
}

func (e DeliveredEvent) EventName() string        { return EventDelivered }
func (e DeliveredEvent) AggregateID() kernel.UUID { return e.OrderID }
func (e DeliveredEvent) OccurredAt() time.Time    { return e.At }
