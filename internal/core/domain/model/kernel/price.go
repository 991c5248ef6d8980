package kernel

import (
	"errors"
	"fmt"

	"foodorder/internal/pkg/errs"
	"foodorder/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrPriceIsNotConstructed = errors.New("Price must be created via NewPrice constructor")

// Price is a strictly positive monetary amount with cent precision.
type Price struct {
	amount decimal.Decimal

	guard guard.ConstructorGuard
}

func NewPrice(amount decimal.Decimal) (Price, error) {
	if !amount.IsPositive() {
		return Price{}, errs.NewValueIsInvalidErrorWithCause(
			"price",
			fmt.Errorf("%s is not greater than 0", amount.String()),
		)
	}
	if !amount.Equal(amount.Round(2)) {
		return Price{}, errs.NewValueIsInvalidErrorWithCause(
			"price",
			fmt.Errorf("%s has more than 2 decimal places", amount.String()),
		)
	}

	return Price{amount: amount, guard: guard.NewConstructorGuard()}, nil
}

// PriceFromString parses a decimal literal such as "12.50".
func PriceFromString(s string) (Price, error) {
	amount, err := decimal.NewFromString(s)
	if err != nil {
		return Price{}, errs.NewValueIsInvalidErrorWithCause("price", err)
	}
	return NewPrice(amount)
}

func (p Price) Validate() error {
	return p.guard.Validate(ErrPriceIsNotConstructed)
}

func (p Price) Amount() decimal.Decimal {
	return p.amount
}

// Times returns the subtotal for quantity units.
func (p Price) Times(quantity int) decimal.Decimal {
	return p.amount.Mul(decimal.NewFromInt(int64(quantity)))
}

func (p Price) Equal(other Price) bool {
	return p.amount.Equal(other.amount)
}

func (p Price) String() string {
	return p.amount.StringFixed(2)
}
