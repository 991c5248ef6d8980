// Package order provides the Order aggregate of the ordering core.
//
// The package includes:
//   - Order: the aggregate root owning its line items, price total, status and
//     delivery-person assignment
//   - LineItem: a quantity of one menu item with its unit price frozen at submission
//   - Status: the delivery lifecycle and the graph of legal status edges
//
// Key business rules:
//   - an order is created UNCONFIRMED with at least one line item
//   - the total price always equals the sum of unit price times quantity
//   - status moves only along the lifecycle graph:
//     UNCONFIRMED -> IN_KITCHEN -> READY_FOR_DELIVERY -> PICKING_UP -> TRANSPORT -> DELIVERED,
//     plus UNCONFIRMED -> CANCELED
//   - DELIVERED and CANCELED are terminal
//   - a delivery person is assigned at most once and never to a terminal order
//
// Who may cause which edge is decided by the lifecycle service in
// internal/core/domain/services; the aggregate only guards the graph itself.
package order
