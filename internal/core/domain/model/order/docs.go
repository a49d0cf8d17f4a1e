// Package order provides the Order aggregate and its lifecycle rules.
//
// The package includes:
//   - Order: the aggregate root holding owner, delivery assignee, status, total and lines
//   - Line: an immutable, priced snapshot of a cart line taken at conversion time
//   - Status: the Placed -> Delivered state machine
//   - Placed, Assigned and Delivered: domain events recorded by the aggregate
//
// Key business rules:
//   - Orders are only created from a non-empty set of lines; the total is the
//     price-weighted sum of the lines and is never recomputed afterwards
//   - The delivery assignee is set at most once through Assign; OverrideAssignee
//     is the administrative path that replaces it unconditionally
//   - Status moves Placed -> Delivered and never back
//   - Assignment is independent of status
package order
