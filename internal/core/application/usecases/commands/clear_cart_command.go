package commands

import (
	"errors"

	"restaurant/internal/core/domain/model/identity"
	"restaurant/internal/pkg/guard"
)

var ErrClearCartCommandIsNotConstructed = errors.New(
	"ClearCartCommand must be created via NewClearCartCommand constructor",
)

// ClearCartCommand empties the caller's cart.
type ClearCartCommand struct { //nolint:recvcheck //using for validation
	caller identity.Caller

	guard guard.ConstructorGuard
}

func NewClearCartCommand(caller identity.Caller) (ClearCartCommand, error) {
	if err := caller.Validate(); err != nil {
		return ClearCartCommand{}, err
	}
	return ClearCartCommand{
		caller: caller,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

func (c ClearCartCommand) Validate() error {
	return c.guard.Validate(ErrClearCartCommandIsNotConstructed)
}

func (c ClearCartCommand) Caller() identity.Caller {
	return c.caller
}
