// Package menu models the priceable catalog elements an order is composed
// from: single dishes, combo and buffet menus grouping several dishes, and
// priced extras layered on top of any of them.
//
// Every element implements the Item interface and can report a flat list of
// priced lines, so pricing is always a plain sum regardless of how deeply
// elements are nested.
package menu
