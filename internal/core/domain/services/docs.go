// Package services holds the authorization and workflow rules that span more
// than one aggregate: who may see or change an order, who may grant roles, and
// how a cart becomes an order.
//
// The package includes:
//   - AccessPolicy helpers: RequireAnyRole and OrderVisibility
//   - OrderPlacer: converts a cart and the menu items it references into an order
//   - OrderAssigner: guarded single-shot assignment and the administrative override
//   - OrderDeliverer: delivery confirmation by the delivery crew
//   - RoleGranter: promotion of principals to Manager or DeliveryCrew
//
// Services are stateless values; persistence and transactions belong to the
// application layer that calls them.
package services
