// Package order provides the Order aggregate root, the center of the campus
// food-ordering domain. An order composes menu items with priced extras,
// prices itself, takes a payment, and then moves through a fixed lifecycle
// until it is delivered, served, or cancelled.
//
// The package includes:
//   - Order: the aggregate root holding composition, pricing, payment and lifecycle
//   - Status: a state machine enforcing the allowed lifecycle transitions
//   - DeliveryMode: delivery, on-site, or takeaway handling of a finished order
//   - Observer: role-tagged subscribers notified on order changes
//   - NumberSequence: the source of unique, never-reused order numbers
//
// Key business rules:
//   - The total is recomputed on every price-affecting change and is never negative
//   - Group (-10%) and student (-15%) reductions stack multiplicatively
//   - Delivery orders under 20.00 after reductions pay a 2.50 surcharge
//   - An order must be paid before the kitchen starts preparing it
//   - A delivery order needs an assigned courier before going en route
//   - Extras and address changes are locked once the order is paid
//   - Every significant change is appended to the order's event log
//
// State changes notify subscribers with role-targeted delivery: a new order
// concerns only the kitchen, an order ready for delivery concerns only
// available couriers, and every other transition concerns all subscribers.
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package order
