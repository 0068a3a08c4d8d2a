package kernel

import (
	"fmt"

	"purchasing/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

const (
	// CurrencyPlaces is the precision of stored and displayed totals.
	CurrencyPlaces int32 = 2

	// PricePlaces is the maximum precision accepted for unit prices.
	PricePlaces int32 = 4
)

var (
	// MaxPrice is the largest unit price a numeric(14,4) column holds.
	MaxPrice = decimal.RequireFromString("9999999999.9999")

	// MaxTotal is the largest currency amount a numeric(14,2) column holds.
	MaxTotal = decimal.RequireFromString("999999999999.99")
)

// Money is a non-negative decimal amount. Arithmetic keeps full precision;
// Rounded gives the currency value with CurrencyPlaces decimals.
// The zero value is a valid amount of 0.
type Money struct {
	amount decimal.Decimal
}

// ZeroMoney returns an amount of 0.
func ZeroMoney() Money {
	return Money{amount: decimal.Zero}
}

// NewMoney validates that amount is not negative.
func NewMoney(amount decimal.Decimal) (Money, error) {
	if amount.IsNegative() {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("amount", fmt.Errorf("%s is negative", amount.String()))
	}
	return Money{amount: amount}, nil
}

// NewPrice validates a unit price: not negative, not above MaxPrice and
// at most PricePlaces decimals.
func NewPrice(amount decimal.Decimal) (Money, error) {
	if amount.IsNegative() {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("unit_price", fmt.Errorf("%s is negative", amount.String()))
	}
	if amount.GreaterThan(MaxPrice) {
		return Money{}, errs.NewValueIsInvalidErrorWithCause(
			"unit_price",
			fmt.Errorf("%s exceeds %s", amount.String(), MaxPrice.String()),
		)
	}
	if !amount.Equal(amount.Truncate(PricePlaces)) {
		return Money{}, errs.NewValueIsInvalidErrorWithCause(
			"unit_price",
			fmt.Errorf("%s has more than %d decimal places", amount.String(), PricePlaces),
		)
	}
	return Money{amount: amount}, nil
}

// MoneyFromString parses a decimal string such as "10.50".
func MoneyFromString(s string) (Money, error) {
	amount, err := decimal.NewFromString(s)
	if err != nil {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("amount", err)
	}
	return NewMoney(amount)
}

// Amount returns the exact, unrounded value.
func (m Money) Amount() decimal.Decimal {
	return m.amount
}

// Rounded returns the value rounded half away from zero to CurrencyPlaces.
func (m Money) Rounded() decimal.Decimal {
	return m.amount.Round(CurrencyPlaces)
}

func (m Money) Add(other Money) Money {
	return Money{amount: m.amount.Add(other.amount)}
}

// Times multiplies by a quantity.
func (m Money) Times(quantity int) Money {
	return Money{amount: m.amount.Mul(decimal.NewFromInt(int64(quantity)))}
}

// Round returns a copy rounded to CurrencyPlaces.
func (m Money) Round() Money {
	return Money{amount: m.Rounded()}
}

// Exceeds reports whether the amount is greater than limit.
func (m Money) Exceeds(limit decimal.Decimal) bool {
	return m.amount.GreaterThan(limit)
}

// IsEqual compares exact values, so 10 and 10.00 are equal.
func (m Money) IsEqual(other Money) bool {
	return m.amount.Equal(other.amount)
}

// String renders the currency value with exactly two decimals.
func (m Money) String() string {
	return m.amount.StringFixed(CurrencyPlaces)
}
