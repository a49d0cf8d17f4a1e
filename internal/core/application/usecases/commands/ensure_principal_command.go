package commands

import (
	"errors"
	"strings"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/pkg/errs"
	"restaurant/internal/pkg/guard"
)

var ErrEnsurePrincipalCommandIsNotConstructed = errors.New(
	"EnsurePrincipalCommand must be created via NewEnsurePrincipalCommand constructor",
)

// EnsurePrincipalCommand carries the identity asserted by a verified bearer
// token. Handling it returns the principal's caller view, provisioning the
// principal on first sight.
type EnsurePrincipalCommand struct { //nolint:recvcheck //using for validation
	principalID kernel.UUID
	username    string
	email       string

	guard guard.ConstructorGuard
}

func NewEnsurePrincipalCommand(principalID kernel.UUID, username, email string) (EnsurePrincipalCommand, error) {
	username = strings.TrimSpace(username)

	var errUsername error
	if username == "" {
		errUsername = errs.NewValueIsRequiredError("username")
	}

	if err := errors.Join(principalID.Validate(), errUsername); err != nil {
		return EnsurePrincipalCommand{}, err
	}

	return EnsurePrincipalCommand{
		principalID: principalID,
		username:    username,
		email:       strings.TrimSpace(email),
		guard:       guard.NewConstructorGuard(),
	}, nil
}

func (c EnsurePrincipalCommand) Validate() error {
	return c.guard.Validate(ErrEnsurePrincipalCommandIsNotConstructed)
}

func (c EnsurePrincipalCommand) PrincipalID() kernel.UUID {
	return c.principalID
}

func (c EnsurePrincipalCommand) Username() string {
	return c.username
}

func (c EnsurePrincipalCommand) Email() string {
	return c.email
}
