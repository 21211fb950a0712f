// Package actor provides the people around an order: the customer who
// composes and pays it, the kitchen staff who prepare it, and the couriers
// who deliver it. All three are role-tagged order observers; they react to
// order notifications by maintaining their own worklists and records, and
// they drive the order through its lifecycle by calling its operations.
//
// Couriers carry a capacity that grows with seniority: a rookie handles two
// concurrent deliveries, a confirmed courier three after fifty completed
// deliveries, an expert four after a hundred. A paused courier reports
// itself unavailable and receives no ready-order offers.
package actor
