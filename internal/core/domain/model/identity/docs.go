// Package identity models who is acting on the ordering backend and with which rights.
//
// The package includes:
//   - Role: Customer, DeliveryCrew, Manager, Admin
//   - RoleSet: the fixed, non-exclusive set of roles a principal holds
//   - Principal: the aggregate persisted for every authenticated actor
//   - Caller: the request-scoped view of a principal (ID plus resolved RoleSet)
//     threaded explicitly through every command and query
//
// Key business rules:
//   - Customer is implicit: every principal holds it and it can never be revoked
//   - Roles are not exclusive; a principal may be Manager and DeliveryCrew at once
//   - Granting a role that is already held is a no-op
package identity
