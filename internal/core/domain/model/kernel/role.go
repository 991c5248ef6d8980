package kernel

import (
	"fmt"
	"strings"

	"foodorder/internal/pkg/errs"
)

// Role is the closed set of actor roles supplied by the identity provider.
type Role int

const (
	// RoleUnknown is the zero value and never authorizes anything.
	RoleUnknown Role = iota
	RoleCustomer
	RoleRestaurantEmployee
	RoleDeliveryPerson
)

func getRoleStrings() map[Role]string {
	return map[Role]string{
		RoleUnknown:            "UNKNOWN",
		RoleCustomer:           "CUSTOMER",
		RoleRestaurantEmployee: "RESTAURANT_EMPLOYEE",
		RoleDeliveryPerson:     "DELIVERY_PERSON",
	}
}

// ParseRole converts the wire name of a role ("CUSTOMER", "RESTAURANT_EMPLOYEE",
// "DELIVERY_PERSON") into a Role. Matching is case-insensitive.
func ParseRole(s string) (Role, error) {
	normalized := strings.ToUpper(strings.TrimSpace(s))
	for role, name := range getRoleStrings() {
		if role != RoleUnknown && name == normalized {
			return role, nil
		}
	}
	return RoleUnknown, errs.NewValueIsInvalidErrorWithCause("role", fmt.Errorf("%q is not a known role", s))
}

func (r Role) Validate() error {
	if r == RoleUnknown {
		return errs.NewValueIsInvalidErrorWithCause("role", fmt.Errorf("%d is not a valid role", r))
	}
	if _, ok := getRoleStrings()[r]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("role", fmt.Errorf("%d is not a valid role", r))
	}
	return nil
}

func (r Role) String() string {
	if s, ok := getRoleStrings()[r]; ok {
		return s
	}
	return "UNKNOWN"
}
