// Package kernel provides the value objects shared by every aggregate of the
// ordering domain.
//
// The package includes:
//   - UUID: identifier of principals, catalog entries, cart lines and orders
//   - Money: a non-negative decimal amount with two fractional digits
//   - DomainEvent and EventSource: the contract aggregates use to expose
//     facts that are published after their unit of work commits
//
// Values are immutable and safe for concurrent use. Zero values are invalid
// and report it through Validate.
package kernel
