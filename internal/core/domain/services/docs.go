// Package services contains domain services of the ordering core.
//
// OrderLifecycle is the authorization half of the order state machine: a table
// mapping every transition to its source status, target status, required role
// and ownership rule. The Order aggregate guards the graph; OrderLifecycle
// decides whether a given actor may walk an edge.
package services
