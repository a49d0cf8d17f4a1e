package order

import (
	"errors"
	"fmt"
	"time"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created through
	// NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder constructor")

	// ErrAlreadyAssigned is returned by Assign when the order already has a delivery assignee.
	ErrAlreadyAssigned = errors.New("order already assigned")

	// ErrAlreadyDelivered is returned by MarkDelivered on a delivered order. It is a
	// warning: the order is left unchanged.
	ErrAlreadyDelivered = errors.New("order already delivered")

	// ErrOrderHasNoLines is returned by NewOrder when no lines are given.
	ErrOrderHasNoLines = errors.New("order must have at least one line")
)

// MaxTotal is the largest total an order can be stored with.
var MaxTotal = kernel.MustMoney("9999999999.99")

// Order is the aggregate root of the ordering workflow. It is created from the
// lines of a cart and afterwards only changes its delivery assignee and status.
//
// Order follows these invariants:
//   - id and owner are valid and never change
//   - total equals the sum of line subtotals and is fixed at creation
//   - the assignee is written at most once by Assign
//   - status only moves Placed -> Delivered
type Order struct {
	id      kernel.UUID
	ownerID kernel.UUID

	// assigneeID is nil until a delivery crew member is assigned.
	assigneeID *kernel.UUID

	status Status
	total  kernel.Money
	lines  []*Line

	events []kernel.DomainEvent

	isConstructed bool
}

// NewOrder places a new order for ownerID. The total is computed from lines and
// an order.placed event is recorded.
//
// Example:
//
//	line, _ := order.NewLine(kernel.NewUUID(), itemID, "Margherita", price, 2)
//	o, err := order.NewOrder(kernel.NewUUID(), ownerID, []*order.Line{line})
//	if err != nil {
//	    return err
//	}
//	fmt.Println(o.Status(), o.Total()) // Placed 20.00
func NewOrder(id, ownerID kernel.UUID, lines []*Line) (*Order, error) {
	o := &Order{
		status:        Placed,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setOwner(ownerID),
		o.setLines(lines),
	); err != nil {
		return nil, err
	}

	o.total = o.sumLines()
	if o.total.GreaterThan(MaxTotal) {
		return nil, errs.NewValueIsOutOfRangeError("total", o.total.String(), kernel.ZeroMoney().String(), MaxTotal.String())
	}
	o.record(PlacedEvent{
		OrderID: o.id,
		OwnerID: o.ownerID,
		Total:   o.total,
		Lines:   len(o.lines),
		At:      time.Now().UTC(),
	})

	return o, nil
}

// RestoreOrder rebuilds an order loaded from storage. The persisted total is
// trusted; no events are recorded.
func RestoreOrder(
	id, ownerID kernel.UUID,
	assigneeID *kernel.UUID,
	status Status,
	total kernel.Money,
	lines []*Line,
) (*Order, error) {
	o := &Order{isConstructed: true}

	var errAssignee error
	if assigneeID != nil {
		errAssignee = assigneeID.Validate()
	}

	if err := errors.Join(
		o.setID(id),
		o.setOwner(ownerID),
		o.setLines(lines),
		errAssignee,
		status.Validate(),
		total.Validate(),
	); err != nil {
		return nil, err
	}

	if assigneeID != nil {
		assignee := *assigneeID
		o.assigneeID = &assignee
	}
	o.status = status
	o.total = total
	return o, nil
}

// Validate ensures the Order instance was properly constructed.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by identifier.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// OwnerID returns the principal who placed the order.
func (o *Order) OwnerID() kernel.UUID {
	return o.ownerID
}

// AssigneeID returns the delivery crew member, or nil while unassigned.
func (o *Order) AssigneeID() *kernel.UUID {
	return o.assigneeID
}

// IsAssigned reports whether a delivery assignee is set.
func (o *Order) IsAssigned() bool {
	return o.assigneeID != nil
}

// IsAssignedTo reports whether principalID is the delivery assignee.
func (o *Order) IsAssignedTo(principalID kernel.UUID) bool {
	return o.assigneeID != nil && o.assigneeID.IsEqual(principalID)
}

// Status returns the current status of the order.
func (o *Order) Status() Status {
	return o.status
}

// Total returns the total fixed at creation.
func (o *Order) Total() kernel.Money {
	return o.total
}

// Lines returns a copy of the line slice.
func (o *Order) Lines() []*Line {
	lines := make([]*Line, len(o.lines))
	copy(lines, o.lines)
	return lines
}

// Assign sets the delivery assignee. It succeeds only once per order; the
// status is not touched.
//
// Returns:
//   - nil on success
//   - ErrAlreadyAssigned if an assignee is already set
//   - a validation error if assigneeID is invalid
func (o *Order) Assign(assigneeID kernel.UUID) error {
	if err := assigneeID.Validate(); err != nil {
		return err
	}
	if o.IsAssigned() {
		return ErrAlreadyAssigned
	}

	o.setAssignee(assigneeID, false)
	return nil
}

// OverrideAssignee replaces the delivery assignee regardless of current state.
// It is the administrative path and skips the single-shot rule.
func (o *Order) OverrideAssignee(assigneeID kernel.UUID) error {
	if err := assigneeID.Validate(); err != nil {
		return err
	}

	o.setAssignee(assigneeID, true)
	return nil
}

// MarkDelivered moves the order from Placed to Delivered.
//
// Returns:
//   - nil on success
//   - ErrAlreadyDelivered if the order was delivered before; nothing changes
func (o *Order) MarkDelivered() error {
	next, err := o.status.Deliver()
	if err != nil {
		return err
	}

	o.status = next
	o.record(DeliveredEvent{
		OrderID:    o.id,
		AssigneeID: o.assigneeID,
		At:         time.Now().UTC(),
	})
	return nil
}

// DomainEvents returns the events recorded since the last ClearDomainEvents.
func (o *Order) DomainEvents() []kernel.DomainEvent {
	events := make([]kernel.DomainEvent, len(o.events))
	copy(events, o.events)
	return events
}

// ClearDomainEvents drops recorded events once they have been dispatched.
func (o *Order) ClearDomainEvents() {
	o.events = nil
}

func (o *Order) setAssignee(assigneeID kernel.UUID, override bool) {
	o.assigneeID = &assigneeID
	o.record(AssignedEvent{
		OrderID:    o.id,
		AssigneeID: assigneeID,
		Override:   override,
		At:         time.Now().UTC(),
	})
}

func (o *Order) record(e kernel.DomainEvent) {
	o.events = append(o.events, e)
}

func (o *Order) sumLines() kernel.Money {
	total := kernel.ZeroMoney()
	for _, l := range o.lines {
		total = total.Add(l.Subtotal())
	}
	return total
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setOwner(ownerID kernel.UUID) error {
	if err := ownerID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("owner", err)
	}
	o.ownerID = ownerID
	return nil
}

func (o *Order) setLines(lines []*Line) error {
	if len(lines) == 0 {
		return ErrOrderHasNoLines
	}
	for i, l := range lines {
		if err := l.Validate(); err != nil {
			return fmt.Errorf("line %d: %w", i, err)
		}
	}
	o.lines = make([]*Line, len(lines))
	copy(o.lines, lines)
	return nil
}
