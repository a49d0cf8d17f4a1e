package identity

// RoleSet is an immutable set of roles. Customer is always a member.
type RoleSet struct {
	bits uint8
}

// orderedRoles fixes the iteration order of Roles and Codes.
var orderedRoles = []Role{Customer, DeliveryCrew, Manager, Admin}

// NewRoleSet builds a set from roles, always including Customer.
// Invalid roles are ignored.
func NewRoleSet(roles ...Role) RoleSet {
	s := RoleSet{bits: bit(Customer)}
	for _, r := range roles {
		if r.Validate() == nil {
			s.bits |= bit(r)
		}
	}
	return s
}

// RoleSetFromCodes parses persisted role codes.
func RoleSetFromCodes(codes []string) (RoleSet, error) {
	roles := make([]Role, 0, len(codes))
	for _, code := range codes {
		r, err := ParseRole(code)
		if err != nil {
			return RoleSet{}, err
		}
		roles = append(roles, r)
	}
	return NewRoleSet(roles...), nil
}

// Has reports membership of role.
func (s RoleSet) Has(role Role) bool {
	return role.Validate() == nil && (s.bits|bit(Customer))&bit(role) != 0
}

// HasAny reports whether at least one of roles is a member.
func (s RoleSet) HasAny(roles ...Role) bool {
	for _, r := range roles {
		if s.Has(r) {
			return true
		}
	}
	return false
}

// With returns a copy of s that also holds role.
func (s RoleSet) With(role Role) RoleSet {
	return NewRoleSet(append(s.Roles(), role)...)
}

// Roles lists the members in Customer, DeliveryCrew, Manager, Admin order.
func (s RoleSet) Roles() []Role {
	roles := make([]Role, 0, len(orderedRoles))
	for _, r := range orderedRoles {
		if s.Has(r) {
			roles = append(roles, r)
		}
	}
	return roles
}

// Codes lists the members' storage codes.
func (s RoleSet) Codes() []string {
	roles := s.Roles()
	codes := make([]string, 0, len(roles))
	for _, r := range roles {
		codes = append(codes, r.Code())
	}
	return codes
}

// IsEqual compares two sets by membership.
func (s RoleSet) IsEqual(other RoleSet) bool {
	return s.bits|bit(Customer) == other.bits|bit(Customer)
}

func bit(r Role) uint8 {
	return 1 << uint(r)
}
