package identity

import (
	"fmt"

	"restaurant/internal/pkg/errs"
)

// Role is one of the authorization roles a principal may hold.
type Role int

const (
	// RoleUnknown catches uninitialized Role values.
	RoleUnknown Role = iota

	// Customer is held implicitly by every principal.
	Customer

	// DeliveryCrew may mark orders delivered and is the only valid delivery assignee.
	DeliveryCrew

	// Manager sees every order, assigns deliveries and promotes delivery crew.
	Manager

	// Admin sees every order, lists users and promotes managers.
	Admin
)

var roleCodes = map[Role]string{
	Customer:     "customer",
	DeliveryCrew: "delivery_crew",
	Manager:      "manager",
	Admin:        "admin",
}

var roleNames = map[Role]string{
	Customer:     "Customer",
	DeliveryCrew: "Delivery crew",
	Manager:      "Manager",
	Admin:        "Admin",
}

// ParseRole maps a persisted role code back to a Role.
func ParseRole(code string) (Role, error) {
	for role, c := range roleCodes {
		if c == code {
			return role, nil
		}
	}
	return RoleUnknown, errs.NewValueIsInvalidErrorWithCause("role is invalid", fmt.Errorf("%q is not a known role", code))
}

// Validate rejects RoleUnknown and out-of-range values.
func (r Role) Validate() error {
	if _, ok := roleCodes[r]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("role is invalid", fmt.Errorf("%d is not a valid role", r))
	}
	return nil
}

// Code is the stable identifier used in storage and API payloads.
func (r Role) Code() string {
	if code, ok := roleCodes[r]; ok {
		return code
	}
	return "unknown"
}

// String is the human-readable role name.
func (r Role) String() string {
	if name, ok := roleNames[r]; ok {
		return name
	}
	return "Unknown"
}
