/*
Package dollars implements a fixed-point representation of an amount of
US dollars, backed by a single integer count of cents.

# Features

  - Immutable amounts, ensuring safe usage across multiple goroutines
  - Exact arithmetic and comparison operations on amounts
  - Parsing from and formatting to strings such as "-$1.05"
  - Conversion to and from [decimal.Decimal] and [money.Amount]
  - Text, JSON, BSON and SQL encoding

# Representation

[Dollars] is a struct with a single int64 field holding the signed total
in cents. The dollars and cents parts returned by [Dollars.Dollars] and
[Dollars.Cents] are derived from it and are always non-negative; the sign is
available through [Dollars.Sign].

# Supported Ranges

Any int64 number of cents can be represented, that is amounts from
-$92233720368547758.08 to $92233720368547758.07 inclusive.

# Operations

[Dollars.Add], [Dollars.Sub] and [Dollars.Neg] follow the rules of int64
arithmetic and wrap around on overflow. They never return errors or panic.
Only [Parse] checks for overflow.

# Parsing

[Parse] accepts an optional sign, an optional dollar sign, the dollars and
optionally a decimal point followed by exactly two digits of cents:

	-$12.34
	+5
	$.99

Errors returned by [Parse] describe the problem, but the exact failure
mode is deliberately not exposed.
*/
package dollars
