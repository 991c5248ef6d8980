package order

import (
	"fmt"
	"strings"

	"foodorder/internal/pkg/errs"
)

// Status is the lifecycle state of an order.
//
//	UNCONFIRMED ──> IN_KITCHEN ──> READY_FOR_DELIVERY ──> PICKING_UP ──> TRANSPORT ──> DELIVERED
//	     │
//	     └──> CANCELED
type Status int

const (
	// Unknown catches uninitialized Status values.
	Unknown Status = iota
	Unconfirmed
	InKitchen
	ReadyForDelivery
	PickingUp
	Transport
	Delivered
	Canceled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:          "UNKNOWN",
		Unconfirmed:      "UNCONFIRMED",
		InKitchen:        "IN_KITCHEN",
		ReadyForDelivery: "READY_FOR_DELIVERY",
		PickingUp:        "PICKING_UP",
		Transport:        "TRANSPORT",
		Delivered:        "DELIVERED",
		Canceled:         "CANCELED",
	}
}

// getStatusEdges lists, for each status, the statuses it may move to.
func getStatusEdges() map[Status][]Status {
	//nolint:exhaustive // terminal and unknown statuses have no outgoing edges
	return map[Status][]Status{
		Unconfirmed:      {InKitchen, Canceled},
		InKitchen:        {ReadyForDelivery},
		ReadyForDelivery: {PickingUp},
		PickingUp:        {Transport},
		Transport:        {Delivered},
	}
}

// ParseStatus converts a status name such as "IN_KITCHEN" into a Status.
func ParseStatus(s string) (Status, error) {
	normalized := strings.ToUpper(strings.TrimSpace(s))
	for status, name := range getStatusStrings() {
		if status != Unknown && name == normalized {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a valid status", s))
}

// Validate rejects Unknown and out-of-range values, e.g. when read from the store.
func (s Status) Validate() error {
	if _, ok := getStatusStrings()[s]; !ok || s == Unknown {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}

// IsTerminal reports whether no further transitions are possible.
func (s Status) IsTerminal() bool {
	return s == Delivered || s == Canceled
}

// CanTransitionTo reports whether next is a legal edge from s.
func (s Status) CanTransitionTo(next Status) bool {
	for _, candidate := range getStatusEdges()[s] {
		if candidate == next {
			return true
		}
	}
	return false
}

// TerminalStatuses lists the statuses with no outgoing edges.
func TerminalStatuses() []Status {
	return []Status{Delivered, Canceled}
}
