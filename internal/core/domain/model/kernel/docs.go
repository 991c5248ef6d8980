// Package kernel holds the value objects shared by every aggregate of the
// ordering core:
//   - Role and Actor: who is invoking an operation
//   - Price: a positive monetary amount backed by shopspring/decimal
//   - OrderNumber: the human-facing order token and its generator
//   - OrderRef: the typed result of resolving "id or order number" references
//
// All values are immutable and validate themselves on construction.
package kernel
