package commands

import (
	"errors"

	"restaurant/internal/core/domain/model/identity"
	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/pkg/guard"
)

var ErrMarkOrderDeliveredCommandIsNotConstructed = errors.New(
	"MarkOrderDeliveredCommand must be created via NewMarkOrderDeliveredCommand constructor",
)

// MarkOrderDeliveredCommand is a delivery crew member confirming a delivery.
type MarkOrderDeliveredCommand struct { //nolint:recvcheck //using for validation
	caller  identity.Caller
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

func NewMarkOrderDeliveredCommand(caller identity.Caller, orderID kernel.UUID) (MarkOrderDeliveredCommand, error) {
	if err := errors.Join(caller.Validate(), orderID.Validate()); err != nil {
		return MarkOrderDeliveredCommand{}, err
	}
	return MarkOrderDeliveredCommand{
		caller:  caller,
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (c MarkOrderDeliveredCommand) Validate() error {
	return c.guard.Validate(ErrMarkOrderDeliveredCommandIsNotConstructed)
}

func (c MarkOrderDeliveredCommand) Caller() identity.Caller {
	return c.caller
}

func (c MarkOrderDeliveredCommand) OrderID() kernel.UUID {
	return c.orderID
}
