package dollars

import (
	"errors"
	"fmt"

	"github.com/govalues/decimal"
	"github.com/govalues/money"
)

var (
	errAmountOverflow   = errors.New("amount overflow")
	errCurrencyMismatch = errors.New("currency mismatch")
)

// scale is the number of digits after the decimal point in a dollar amount.
const scale = 2

// NewFromDecimal converts a decimal number of dollars to an amount.
// If the decimal has more than two digits after the decimal point, it is
// rounded using [rounding half to even] (banker's rounding).
// See also method [Dollars.Decimal].
//
// NewFromDecimal returns an error if the amount in cents does not fit an int64.
//
// [rounding half to even]: https://en.wikipedia.org/wiki/Rounding#Rounding_half_to_even
func NewFromDecimal(d decimal.Decimal) (Dollars, error) {
	whole, frac, ok := d.Int64(scale)
	if !ok {
		return Dollars{}, fmt.Errorf("converting %v: %w", d, errAmountOverflow)
	}
	cents, ok := mulAdd(whole, 100, frac)
	if !ok {
		return Dollars{}, fmt.Errorf("converting %v: %w", d, errAmountOverflow)
	}
	return NewFromCents(cents), nil
}

// Decimal returns the amount as a decimal number of dollars with two digits
// after the decimal point. The conversion is exact.
// See also constructor [NewFromDecimal].
func (d Dollars) Decimal() decimal.Decimal {
	// Every int64 has at most 19 digits, so it always fits a decimal coefficient.
	e, err := decimal.New(d.cents, scale)
	if err != nil {
		panic(fmt.Sprintf("decimal.New(%v, %v) failed: %v", d.cents, scale, err))
	}
	return e
}

// NewFromAmount converts a monetary amount to dollars.
// If the amount has more than two digits after the decimal point, it is
// rounded using [rounding half to even] (banker's rounding).
// See also method [Dollars.Amount].
//
// NewFromAmount returns an error if:
//   - the amount is not denominated in US dollars;
//   - the amount in cents does not fit an int64.
//
// [rounding half to even]: https://en.wikipedia.org/wiki/Rounding#Rounding_half_to_even
func NewFromAmount(a money.Amount) (Dollars, error) {
	if a.Curr() != money.USD {
		return Dollars{}, fmt.Errorf("converting %v: %w", a, errCurrencyMismatch)
	}
	units, ok := a.MinorUnits()
	if !ok {
		return Dollars{}, fmt.Errorf("converting %v: %w", a, errAmountOverflow)
	}
	return NewFromCents(units), nil
}

// Amount returns the amount as a [money.Amount] denominated in US dollars.
// The conversion is exact.
// See also constructor [NewFromAmount].
func (d Dollars) Amount() money.Amount {
	a, err := money.NewAmountFromMinorUnits(money.USD.Code(), d.cents)
	if err != nil {
		panic(fmt.Sprintf("money.NewAmountFromMinorUnits(%q, %v) failed: %v", money.USD.Code(), d.cents, err))
	}
	return a
}
