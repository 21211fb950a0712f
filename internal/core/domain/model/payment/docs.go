// Package payment provides the pluggable payment strategies an order
// delegates to when it is paid: bank card, prepaid campus account, and cash
// with change.
//
// Strategies only validate and simulate payment; no gateway is integrated.
// They are synchronous and non-blocking, and stateless with respect to the
// order that invokes them.
package payment
