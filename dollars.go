package dollars

import (
	"fmt"
	"strconv"
)

// Dollars type represents an amount of US dollars as an exact count of cents.
// Its zero value corresponds to "$0.00".
// Dollars is designed to be safe for concurrent use by multiple goroutines.
//
// Two values are equal if and only if they hold the same number of cents,
// so Dollars can be compared with == and used as a map key.
type Dollars struct {
	cents int64 // signed total in cents
}

// NewFromCents returns an amount equal to the given number of cents.
// The conversion is exact and cannot fail.
// See also method [Dollars.InCents].
func NewFromCents(cents int64) Dollars {
	return Dollars{cents: cents}
}

// Dollars returns the magnitude of the whole-dollar part of the amount.
// The result is never negative, use [Dollars.Sign] to get the sign.
//
//	NewFromCents(-105).Dollars() = 1
func (d Dollars) Dollars() int64 {
	return abs(d.cents / 100)
}

// Cents returns the magnitude of the cents part of the amount,
// a number between 0 and 99.
// Note the difference between this method and [Dollars.InCents].
//
//	NewFromCents(-105).Cents() = 5
func (d Dollars) Cents() int64 {
	return abs(d.cents % 100)
}

// InCents returns the signed amount in cents.
// This is the only accessor that does not lose information.
func (d Dollars) InCents() int64 {
	return d.cents
}

// Sign returns:
//
//	-1 if d < 0
//	 0 if d = 0
//	+1 if d > 0
func (d Dollars) Sign() int {
	switch {
	case d.cents < 0:
		return -1
	case d.cents > 0:
		return 1
	default:
		return 0
	}
}

// IsPos returns:
//
//	true  if d > 0
//	false otherwise
func (d Dollars) IsPos() bool {
	return d.cents > 0
}

// IsNeg returns:
//
//	true  if d < 0
//	false otherwise
func (d Dollars) IsNeg() bool {
	return d.cents < 0
}

// IsZero returns:
//
//	true  if d = 0
//	false otherwise
func (d Dollars) IsZero() bool {
	return d.cents == 0
}

// Add returns the sum of amounts d and e.
// Unlike [Parse], Add does not check for overflow: the result wraps around
// according to the rules of int64 arithmetic.
func (d Dollars) Add(e Dollars) Dollars {
	return NewFromCents(d.InCents() + e.InCents())
}

// Sub returns the difference between amounts d and e.
// The result wraps around on overflow, see [Dollars.Add].
func (d Dollars) Sub(e Dollars) Dollars {
	return NewFromCents(d.InCents() - e.InCents())
}

// Neg returns an amount with the opposite sign.
// Negating the smallest representable amount returns the same amount.
func (d Dollars) Neg() Dollars {
	return NewFromCents(-d.cents)
}

// Abs returns the absolute value of the amount.
// Like [Dollars.Neg], it wraps around for the smallest representable amount.
func (d Dollars) Abs() Dollars {
	if d.IsNeg() {
		return d.Neg()
	}
	return d
}

// Sum returns the sum of the amounts.
// Sum of no amounts is zero. The result wraps around on overflow.
func Sum(ds ...Dollars) Dollars {
	var s Dollars
	for _, d := range ds {
		s = s.Add(d)
	}
	return s
}

// Cmp compares amounts and returns:
//
//	-1 if d < e
//	 0 if d = e
//	+1 if d > e
func (d Dollars) Cmp(e Dollars) int {
	switch {
	case d.cents < e.cents:
		return -1
	case d.cents > e.cents:
		return 1
	default:
		return 0
	}
}

// Min returns the smaller amount.
// See also method [Dollars.Cmp].
func (d Dollars) Min(e Dollars) Dollars {
	if d.Cmp(e) <= 0 {
		return d
	}
	return e
}

// Max returns the larger amount.
// See also method [Dollars.Cmp].
func (d Dollars) Max(e Dollars) Dollars {
	if d.Cmp(e) >= 0 {
		return d
	}
	return e
}

// String implements the [fmt.Stringer] interface and returns the amount
// in the form "[-]$D.CC", for example "-$1.05" or "$0.00".
// See also method [Dollars.Format].
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (d Dollars) String() string {
	return string(d.appendString(make([]byte, 0, 24)))
}

// appendString appends the display representation of the amount to buf.
func (d Dollars) appendString(buf []byte) []byte {
	if d.IsNeg() {
		buf = append(buf, '-')
	}
	buf = append(buf, '$')
	return d.appendDecimal(buf)
}

// appendDecimal appends "D.CC" to buf, without sign or dollar sign.
func (d Dollars) appendDecimal(buf []byte) []byte {
	buf = strconv.AppendInt(buf, d.Dollars(), 10)
	c := d.Cents()
	return append(buf, '.', byte(c/10)+'0', byte(c%10)+'0')
}

// Format implements the [fmt.Formatter] interface.
// The following [format verbs] are available:
//
//	| Verb   | Example   | Description              |
//	| ------ | --------- | ------------------------ |
//	| %s, %v | -$5.67    | Amount                   |
//	| %q     | "-$5.67"  | Quoted amount            |
//	| %f     | -5.67     | Amount without $ sign    |
//	| %d     | -567      | Amount in cents          |
//
// The representation is built first and then padded to the width,
// if any. The '-' format flag aligns the result to the left.
// Other flags and precision are ignored, so %+v and %#v produce the same
// result as %v.
//
// [format verbs]: https://pkg.go.dev/fmt#hdr-Printing
// [fmt.Formatter]: https://pkg.go.dev/fmt#Formatter
func (d Dollars) Format(state fmt.State, verb rune) {
	var text []byte
	switch verb {
	case 'q', 'Q':
		text = append(text, '"')
		text = d.appendString(text)
		text = append(text, '"')
	case 'f', 'F':
		if d.IsNeg() {
			text = append(text, '-')
		}
		text = d.appendDecimal(text)
	case 'd', 'D':
		text = strconv.AppendInt(text, d.cents, 10)
	default:
		text = d.appendString(text)
	}

	// Calculating padding
	width := len(text)
	lspaces, tspaces := 0, 0
	if w, ok := state.Width(); ok && w > width {
		switch {
		case state.Flag('-'):
			tspaces = w - width
		default:
			lspaces = w - width
		}
		width = w
	}

	buf := make([]byte, 0, width)

	// Leading spaces
	for i := 0; i < lspaces; i++ {
		buf = append(buf, ' ')
	}

	buf = append(buf, text...)

	// Trailing spaces
	for i := 0; i < tspaces; i++ {
		buf = append(buf, ' ')
	}

	// Writing result
	//nolint:errcheck
	switch verb {
	case 'q', 'Q', 's', 'S', 'v', 'V', 'f', 'F', 'd', 'D':
		state.Write(buf)
	default:
		state.Write([]byte("%!"))
		state.Write([]byte{byte(verb)})
		state.Write([]byte("(dollars.Dollars="))
		state.Write(buf)
		state.Write([]byte(")"))
	}
}

func abs(n int64) int64 {
	if n < 0 {
		return -n
	}
	return n
}
