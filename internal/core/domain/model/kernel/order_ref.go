package kernel

import (
	"fmt"
	"strconv"
	"strings"

	"foodorder/internal/pkg/errs"
)

// OrderRefKind tells how an OrderRef identifies its order.
type OrderRefKind int

const (
	OrderRefByID OrderRefKind = iota + 1
	OrderRefByNumber
)

// OrderRef is the result of disambiguating a caller-supplied order reference:
// digits-only strings are numeric ids, anything else is an order number.
type OrderRef struct {
	kind   OrderRefKind
	id     uint64
	number OrderNumber
}

func ParseOrderRef(s string) (OrderRef, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return OrderRef{}, errs.NewValueIsRequiredError("order reference")
	}

	if isDigits(s) {
		id, err := strconv.ParseUint(s, 10, 64)
		if err != nil {
			return OrderRef{}, errs.NewValueIsInvalidErrorWithCause("order reference", err)
		}
		return OrderRefFromID(id)
	}

	number, err := NewOrderNumber(s)
	if err != nil {
		return OrderRef{}, err
	}
	return OrderRefFromNumber(number), nil
}

func OrderRefFromID(id uint64) (OrderRef, error) {
	if id == 0 {
		return OrderRef{}, errs.NewValueIsInvalidErrorWithCause("order reference", fmt.Errorf("id %d must be positive", id))
	}
	return OrderRef{kind: OrderRefByID, id: id}, nil
}

func OrderRefFromNumber(number OrderNumber) OrderRef {
	return OrderRef{kind: OrderRefByNumber, number: number}
}

func (r OrderRef) Validate() error {
	switch r.kind {
	case OrderRefByID:
		if r.id == 0 {
			return errs.NewValueIsRequiredError("order id")
		}
		return nil
	case OrderRefByNumber:
		return r.number.Validate()
	default:
		return errs.NewValueIsRequiredError("order reference")
	}
}

func (r OrderRef) Kind() OrderRefKind {
	return r.kind
}

// ID is meaningful only when Kind() == OrderRefByID.
func (r OrderRef) ID() uint64 {
	return r.id
}

// Number is meaningful only when Kind() == OrderRefByNumber.
func (r OrderRef) Number() OrderNumber {
	return r.number
}

func (r OrderRef) String() string {
	if r.kind == OrderRefByID {
		return strconv.FormatUint(r.id, 10)
	}
	return r.number.String()
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
