package services

import (
	"errors"

	"restaurant/internal/core/domain/model/identity"
	"restaurant/internal/core/domain/model/order"
)

const (
	ActionAssignOrder   = "assign order"
	ActionOverrideOrder = "override order assignment"
	ActionDeliverOrder  = "mark order delivered"
)

var (
	// ErrAssigneeIsNotDeliveryCrew is returned when the assignment target lacks the DeliveryCrew role.
	ErrAssigneeIsNotDeliveryCrew = errors.New("assignee is not in the delivery crew")

	// ErrSelfAssignment is returned when a manager tries to assign an order to themselves.
	ErrSelfAssignment = errors.New("manager cannot assign order to self")
)

// OrderAssigner applies the assignment rules of the ordering workflow.
//
// Check order for Assign:
//   - the caller holds Manager (ForbiddenError)
//   - the order has no assignee yet (order.ErrAlreadyAssigned)
//   - the target holds DeliveryCrew (ErrAssigneeIsNotDeliveryCrew)
//   - the target is not the caller (ErrSelfAssignment)
//
// Lookups of the order and the target happen in the application layer between
// CanAssign and Assign, which is where not-found errors originate.
type OrderAssigner struct{}

func NewOrderAssigner() OrderAssigner {
	return OrderAssigner{}
}

// CanAssign checks the caller's role before anything is loaded.
func (OrderAssigner) CanAssign(caller identity.Caller) error {
	return RequireAnyRole(caller, ActionAssignOrder, identity.Manager)
}

// Assign sets the delivery assignee of o to target.
func (a OrderAssigner) Assign(caller identity.Caller, o *order.Order, target *identity.Principal) error {
	if err := a.CanAssign(caller); err != nil {
		return err
	}
	if err := errors.Join(o.Validate(), target.Validate()); err != nil {
		return err
	}
	if o.IsAssigned() {
		return order.ErrAlreadyAssigned
	}
	if !target.HasRole(identity.DeliveryCrew) {
		return ErrAssigneeIsNotDeliveryCrew
	}
	if caller.Is(target.ID()) {
		return ErrSelfAssignment
	}

	return o.Assign(target.ID())
}

// CanOverride checks the caller's role for the administrative path.
func (OrderAssigner) CanOverride(caller identity.Caller) error {
	return RequireAnyRole(caller, ActionOverrideOrder, identity.Manager)
}

// Override replaces the assignee of o with target. Only the Manager role is
// checked: single-shot, target role and self-assignment rules do not apply.
func (a OrderAssigner) Override(caller identity.Caller, o *order.Order, target *identity.Principal) error {
	if err := a.CanOverride(caller); err != nil {
		return err
	}
	if err := errors.Join(o.Validate(), target.Validate()); err != nil {
		return err
	}

	return o.OverrideAssignee(target.ID())
}

// OrderDeliverer confirms deliveries.
type OrderDeliverer struct{}

func NewOrderDeliverer() OrderDeliverer {
	return OrderDeliverer{}
}

// CanDeliver checks the caller's role before anything is loaded.
func (OrderDeliverer) CanDeliver(caller identity.Caller) error {
	return RequireAnyRole(caller, ActionDeliverOrder, identity.DeliveryCrew)
}

// MarkDelivered moves o to Delivered. An order outside the caller's visibility
// is reported as not found; a delivered order yields order.ErrAlreadyDelivered.
func (d OrderDeliverer) MarkDelivered(caller identity.Caller, o *order.Order) error {
	if err := d.CanDeliver(caller); err != nil {
		return err
	}
	if err := o.Validate(); err != nil {
		return err
	}
	if err := EnsureVisible(caller, o); err != nil {
		return err
	}

	return o.MarkDelivered()
}

// IsWarning reports whether err leaves state intact and should be surfaced
// to the caller as a warning.
func IsWarning(err error) bool {
	return errors.Is(err, order.ErrAlreadyDelivered)
}
