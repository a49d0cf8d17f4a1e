package identity

import (
	"errors"
	"strings"
	"unicode/utf8"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/pkg/errs"
)

const maxUsernameLength = 150

var ErrPrincipalIsNotConstructed = errors.New("Principal must be created via NewPrincipal constructor")

// Principal is an authenticated actor known to the ordering backend. The identity
// provider owns credentials; this aggregate only keeps the display identity and roles.
type Principal struct {
	id       kernel.UUID
	username string
	email    string
	roles    RoleSet

	isConstructed bool
}

// NewPrincipal registers an actor with the given roles (Customer is always added).
func NewPrincipal(id kernel.UUID, username, email string, roles ...Role) (*Principal, error) {
	p := &Principal{
		roles:         NewRoleSet(roles...),
		email:         strings.TrimSpace(email),
		isConstructed: true,
	}

	if err := errors.Join(
		p.setID(id),
		p.setUsername(username),
	); err != nil {
		return nil, err
	}

	return p, nil
}

// RestorePrincipal rebuilds a persisted principal.
func RestorePrincipal(id kernel.UUID, username, email string, roles RoleSet) (*Principal, error) {
	return NewPrincipal(id, username, email, roles.Roles()...)
}

// Validate ensures the principal was built through a constructor.
func (p *Principal) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrPrincipalIsNotConstructed
	}
	return nil
}

func (p *Principal) ID() kernel.UUID {
	return p.id
}

func (p *Principal) Username() string {
	return p.username
}

func (p *Principal) Email() string {
	return p.email
}

func (p *Principal) Roles() RoleSet {
	return p.roles
}

// HasRole reports whether the principal currently holds role.
func (p *Principal) HasRole(role Role) bool {
	return p.roles.Has(role)
}

// GrantRole adds role to the principal. It reports whether the set changed,
// so granting an already held role is an idempotent no-op.
func (p *Principal) GrantRole(role Role) (bool, error) {
	if err := role.Validate(); err != nil {
		return false, err
	}
	if p.roles.Has(role) {
		return false, nil
	}
	p.roles = p.roles.With(role)
	return true, nil
}

// AsCaller returns the request-scoped view of the principal.
func (p *Principal) AsCaller() (Caller, error) {
	return NewCaller(p.id, p.roles)
}

func (p *Principal) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.id = id
	return nil
}

func (p *Principal) setUsername(username string) error {
	username = strings.TrimSpace(username)
	if username == "" {
		return errs.NewValueIsRequiredError("username")
	}
	if n := utf8.RuneCountInString(username); n > maxUsernameLength {
		return errs.NewValueIsOutOfRangeError("username length", n, 1, maxUsernameLength)
	}
	p.username = username
	return nil
}
