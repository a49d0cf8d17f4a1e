package commands

import (
	"errors"

	"restaurant/internal/core/domain/model/identity"
	"restaurant/internal/pkg/guard"
)

var ErrCreateOrderFromCartCommandIsNotConstructed = errors.New(
	"CreateOrderFromCartCommand must be created via NewCreateOrderFromCartCommand constructor",
)

// CreateOrderFromCartCommand converts the caller's cart into an order.
//
// Example:
//
//	cmd, _ := NewCreateOrderFromCartCommand(caller)
//	orderID, err := handler.Handle(ctx, cmd)
//	if errors.Is(err, cart.ErrCartIsEmpty) {
//	    // nothing to order
//	}
type CreateOrderFromCartCommand struct { //nolint:recvcheck //using for validation
	caller identity.Caller

	guard guard.ConstructorGuard
}

func NewCreateOrderFromCartCommand(caller identity.Caller) (CreateOrderFromCartCommand, error) {
	if err := caller.Validate(); err != nil {
		return CreateOrderFromCartCommand{}, err
	}
	return CreateOrderFromCartCommand{
		caller: caller,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

func (c CreateOrderFromCartCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderFromCartCommandIsNotConstructed)
}

func (c CreateOrderFromCartCommand) Caller() identity.Caller {
	return c.caller
}
