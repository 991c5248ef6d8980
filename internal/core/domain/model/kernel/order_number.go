package kernel

import (
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"strings"

	"foodorder/internal/pkg/errs"
	"foodorder/internal/pkg/guard"
)

const (
	// OrderNumberLength is the number of characters in a generated order number.
	OrderNumberLength = 8

	orderNumberAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
)

var ErrOrderNumberIsNotConstructed = errors.New(
	"OrderNumber must be created via NewOrderNumber or GenerateOrderNumber",
)

// OrderNumber is the opaque, human-facing token of an order. It always contains
// at least one letter so it can never be mistaken for a numeric order id.
type OrderNumber struct {
	value string

	guard guard.ConstructorGuard
}

// OrderNumberGenerator produces fresh order numbers. Uniqueness is enforced by the
// store; callers retry with a new number on conflict.
type OrderNumberGenerator func() (OrderNumber, error)

// NewOrderNumber validates s (case-insensitive) as an order number.
func NewOrderNumber(s string) (OrderNumber, error) {
	value := strings.ToUpper(strings.TrimSpace(s))
	if value == "" {
		return OrderNumber{}, errs.NewValueIsRequiredError("order number")
	}
	if len(value) != OrderNumberLength {
		return OrderNumber{}, errs.NewValueIsInvalidErrorWithCause(
			"order number",
			fmt.Errorf("%q must be %d characters long", value, OrderNumberLength),
		)
	}

	hasLetter := false
	for _, r := range value {
		if !strings.ContainsRune(orderNumberAlphabet, r) {
			return OrderNumber{}, errs.NewValueIsInvalidErrorWithCause(
				"order number",
				fmt.Errorf("%q contains %q", value, r),
			)
		}
		if r >= 'A' && r <= 'Z' {
			hasLetter = true
		}
	}
	if !hasLetter {
		return OrderNumber{}, errs.NewValueIsInvalidErrorWithCause(
			"order number",
			fmt.Errorf("%q must contain a letter", value),
		)
	}

	return OrderNumber{value: value, guard: guard.NewConstructorGuard()}, nil
}

// GenerateOrderNumber draws a random order number from crypto/rand.
func GenerateOrderNumber() (OrderNumber, error) {
	alphabetSize := big.NewInt(int64(len(orderNumberAlphabet)))
	for {
		var sb strings.Builder
		for range OrderNumberLength {
			n, err := rand.Int(rand.Reader, alphabetSize)
			if err != nil {
				return OrderNumber{}, fmt.Errorf("generate order number: %w", err)
			}
			sb.WriteByte(orderNumberAlphabet[n.Int64()])
		}

		number, err := NewOrderNumber(sb.String())
		if err == nil {
			return number, nil
		}
		// all-digit draws are rejected and redrawn
	}
}

func (n OrderNumber) Validate() error {
	return n.guard.Validate(ErrOrderNumberIsNotConstructed)
}

func (n OrderNumber) IsEqual(other OrderNumber) bool {
	return n.value == other.value
}

func (n OrderNumber) String() string {
	return n.value
}
