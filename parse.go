package dollars

import (
	"fmt"
	"math"
)

// ParseError is returned when a string cannot be parsed as an amount.
//
// The reason of the failure is only available through the error message:
// the exact failure modes of [Parse] are not part of the API.
type ParseError struct {
	kind parseErrorKind
}

func (e *ParseError) Error() string {
	return "failed to parse dollars: " + e.kind.String()
}

type parseErrorKind struct {
	code  parseErrorCode
	digit byte // offending byte, only set for errInvalidDigit
}

type parseErrorCode uint8

const (
	errInvalidDigit parseErrorCode = iota
	errOverflow
	errBadCentsLength
	errExtraDecimalPoint
	errNonASCII
)

func (k parseErrorKind) String() string {
	switch k.code {
	case errInvalidDigit:
		return "invalid digit '" + string(rune(k.digit)) + "'"
	case errOverflow:
		return "value overflows"
	case errBadCentsLength:
		return "cents must be two digits long"
	case errExtraDecimalPoint:
		return "too many decimal points"
	case errNonASCII:
		return "non-ASCII strings are not allowed"
	default:
		return "unknown error"
	}
}

func newParseError(code parseErrorCode) *ParseError {
	return &ParseError{kind: parseErrorKind{code: code}}
}

func invalidDigit(c byte) *ParseError {
	return &ParseError{kind: parseErrorKind{code: errInvalidDigit, digit: c}}
}

// Parse converts a string to an amount.
// The input string must be in the following format:
//
//	[+|-][$]D[.CC]
//
// where D is a sequence of decimal digits and CC is exactly two decimal
// digits. All parts except the sign are optional, so "" and "$" are parsed
// as zero, and "12." as twelve dollars. Parse does not check for input
// after the cents: "1.234" is parsed as "$1.23".
//
// Parse returns a [*ParseError] if:
//   - the string contains non-ASCII characters;
//   - the dollars or cents contain anything other than decimal digits;
//   - the cents are one digit long;
//   - the string contains more than one decimal point;
//   - the amount in cents does not fit an int64.
//     For example, "-$92233720368547758.08" cannot be parsed even though
//     it is the string representation of the smallest amount.
func Parse(s string) (Dollars, error) {
	cents, err := parseCents(s)
	if err != nil {
		return Dollars{}, err
	}
	return NewFromCents(cents), nil
}

// MustParse is like [Parse] but panics if the string cannot be parsed.
// It simplifies safe initialization of global variables holding amounts.
func MustParse(s string) Dollars {
	d, err := Parse(s)
	if err != nil {
		panic(fmt.Sprintf("Parse(%q) failed: %v", s, err))
	}
	return d
}

//gocyclo:ignore
func parseCents(s string) (int64, *ParseError) {
	for i := 0; i < len(s); i++ {
		if s[i] >= 0x80 {
			return 0, newParseError(errNonASCII)
		}
	}

	pos := 0

	// Sign
	sign := int64(1)
	if pos < len(s) {
		switch s[pos] {
		case '-':
			sign = -1
			pos++
		case '+':
			pos++
		}
	}

	// Dollar sign
	if pos < len(s) && s[pos] == '$' {
		pos++
	}

	// Dollars, up to and including the decimal point
	var whole int64
	for pos < len(s) {
		c := s[pos]
		pos++
		if c == '.' {
			break
		}
		if !isDigit(c) {
			return 0, invalidDigit(c)
		}
		var ok bool
		whole, ok = mulAdd(whole, 10, int64(c-'0'))
		if !ok {
			return 0, newParseError(errOverflow)
		}
	}

	// Cents
	var frac int64
	switch rest := s[pos:]; {
	case len(rest) >= 1 && rest[0] == '.',
		len(rest) >= 2 && rest[1] == '.':
		return 0, newParseError(errExtraDecimalPoint)
	case len(rest) == 1:
		return 0, newParseError(errBadCentsLength)
	case len(rest) == 0:
		frac = 0
	default:
		if !isDigit(rest[0]) {
			return 0, invalidDigit(rest[0])
		}
		if !isDigit(rest[1]) {
			return 0, invalidDigit(rest[1])
		}
		frac = int64(rest[0]-'0')*10 + int64(rest[1]-'0')
	}

	cents, ok := mulAdd(whole, 100, frac)
	if !ok {
		return 0, newParseError(errOverflow)
	}
	return cents * sign, nil
}

func isDigit(c byte) bool {
	return '0' <= c && c <= '9'
}

// mulAdd returns x * y + z.
// If the result overflows int64, false is returned.
func mulAdd(x, y, z int64) (int64, bool) {
	p, ok := mul(x, y)
	if !ok {
		return 0, false
	}
	return add(p, z)
}

func mul(x, y int64) (int64, bool) {
	if x == 0 || y == 0 {
		return 0, true
	}
	if (x == -1 && y == math.MinInt64) || (y == -1 && x == math.MinInt64) {
		return 0, false
	}
	p := x * y
	if p/y != x {
		return 0, false
	}
	return p, true
}

func add(x, y int64) (int64, bool) {
	s := x + y
	if (y > 0 && s < x) || (y < 0 && s > x) {
		return 0, false
	}
	return s, true
}
