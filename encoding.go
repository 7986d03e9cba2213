package dollars

import (
	"database/sql/driver"
	"encoding/binary"
	"errors"
	"fmt"
	"strconv"
)

var errInvalidBSON = errors.New("invalid BSON value")

// BSON type tags, see https://bsonspec.org/spec.html
const (
	bsonString = 0x02
	bsonNull   = 0x0A
	bsonInt32  = 0x10
	bsonInt64  = 0x12
)

// UnmarshalText implements the [encoding.TextUnmarshaler] interface.
// See also constructor [Parse].
//
// [encoding.TextUnmarshaler]: https://pkg.go.dev/encoding#TextUnmarshaler
func (d *Dollars) UnmarshalText(text []byte) error {
	var err error
	*d, err = Parse(string(text))
	if err != nil {
		return fmt.Errorf("unmarshaling %T: %w", Dollars{}, err)
	}
	return nil
}

// AppendText implements the [encoding.TextAppender] interface.
// See also method [Dollars.String].
//
// [encoding.TextAppender]: https://pkg.go.dev/encoding#TextAppender
func (d Dollars) AppendText(text []byte) ([]byte, error) {
	return d.appendString(text), nil
}

// MarshalText implements the [encoding.TextMarshaler] interface.
// See also method [Dollars.String].
//
// [encoding.TextMarshaler]: https://pkg.go.dev/encoding#TextMarshaler
func (d Dollars) MarshalText() ([]byte, error) {
	return d.AppendText(make([]byte, 0, 24))
}

// UnmarshalJSON implements the [json.Unmarshaler] interface.
// Strings are parsed with [Parse], numbers are interpreted as cents.
// The JSON null value is ignored.
//
// [json.Unmarshaler]: https://pkg.go.dev/encoding/json#Unmarshaler
func (d *Dollars) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		return nil
	}
	var err error
	if len(data) >= 2 && data[0] == '"' && data[len(data)-1] == '"' {
		*d, err = Parse(string(data[1 : len(data)-1]))
	} else {
		var cents int64
		cents, err = strconv.ParseInt(string(data), 10, 64)
		if err == nil {
			*d = NewFromCents(cents)
		}
	}
	if err != nil {
		return fmt.Errorf("unmarshaling %T: %w", Dollars{}, err)
	}
	return nil
}

// MarshalJSON implements the [json.Marshaler] interface.
// MarshalJSON always returns the quoted string representation, for
// example "-$1.05".
//
// [json.Marshaler]: https://pkg.go.dev/encoding/json#Marshaler
func (d Dollars) MarshalJSON() ([]byte, error) {
	text := make([]byte, 0, 26)
	text = append(text, '"')
	text = d.appendString(text)
	text = append(text, '"')
	return text, nil
}

// UnmarshalBSONValue implements the [v2/bson.ValueUnmarshaler] interface.
// BSON int32 and int64 values are interpreted as cents, strings are parsed
// with [Parse]. The BSON null value is ignored.
//
// [v2/bson.ValueUnmarshaler]: https://pkg.go.dev/go.mongodb.org/mongo-driver/v2/bson#ValueUnmarshaler
func (d *Dollars) UnmarshalBSONValue(typ byte, data []byte) error {
	var err error
	switch typ {
	case bsonInt64:
		if len(data) != 8 {
			err = fmt.Errorf("%w: invalid data length %v", errInvalidBSON, len(data))
			break
		}
		*d = NewFromCents(int64(binary.LittleEndian.Uint64(data))) //nolint:gosec
	case bsonInt32:
		if len(data) != 4 {
			err = fmt.Errorf("%w: invalid data length %v", errInvalidBSON, len(data))
			break
		}
		*d = NewFromCents(int64(int32(binary.LittleEndian.Uint32(data)))) //nolint:gosec
	case bsonString:
		*d, err = parseBSONString(data)
	case bsonNull:
		// null, do nothing
	default:
		err = fmt.Errorf("BSON type %d is not supported", typ)
	}
	if err != nil {
		err = fmt.Errorf("converting from BSON type %d to %T: %w", typ, Dollars{}, err)
	}
	return err
}

// MarshalBSONValue implements the [v2/bson.ValueMarshaler] interface.
// MarshalBSONValue always returns a BSON int64 holding the amount in cents.
//
// [v2/bson.ValueMarshaler]: https://pkg.go.dev/go.mongodb.org/mongo-driver/v2/bson#ValueMarshaler
func (d Dollars) MarshalBSONValue() (typ byte, data []byte, err error) {
	data = binary.LittleEndian.AppendUint64(make([]byte, 0, 8), uint64(d.cents)) //nolint:gosec
	return bsonInt64, data, nil
}

// parseBSONString parses a length-prefixed, null-terminated BSON string.
func parseBSONString(data []byte) (Dollars, error) {
	if len(data) < 4 {
		return Dollars{}, fmt.Errorf("%w: invalid data length %v", errInvalidBSON, len(data))
	}
	l := int(int32(binary.LittleEndian.Uint32(data))) //nolint:gosec
	if l < 1 || len(data) < l+4 {
		return Dollars{}, fmt.Errorf("%w: invalid string length %v", errInvalidBSON, l)
	}
	if data[l+4-1] != 0 {
		return Dollars{}, fmt.Errorf("%w: invalid null terminator %v", errInvalidBSON, data[l+4-1])
	}
	return Parse(string(data[4 : l+4-1]))
}

// Scan implements the [sql.Scanner] interface.
// Integers are interpreted as cents, strings are parsed with [Parse].
//
// [sql.Scanner]: https://pkg.go.dev/database/sql#Scanner
func (d *Dollars) Scan(value any) error {
	var err error
	switch value := value.(type) {
	case int64:
		*d = NewFromCents(value)
	case string:
		*d, err = Parse(value)
	case []byte:
		*d, err = Parse(string(value))
	case nil:
		err = fmt.Errorf("%T does not support null values, use %T or *%T", Dollars{}, NullDollars{}, Dollars{})
	default:
		err = fmt.Errorf("type %T is not supported", value)
	}
	if err != nil {
		err = fmt.Errorf("converting from %T to %T: %w", value, Dollars{}, err)
	}
	return err
}

// Value implements the [driver.Valuer] interface.
// Value always returns the amount in cents, see [Dollars.InCents].
//
// [driver.Valuer]: https://pkg.go.dev/database/sql/driver#Valuer
func (d Dollars) Value() (driver.Value, error) {
	return d.cents, nil
}

// NullDollars represents an amount that can be null.
// Its zero value is null.
// NullDollars is not thread-safe.
type NullDollars struct {
	Dollars Dollars
	Valid   bool
}

// Scan implements the [sql.Scanner] interface.
// See also method [Dollars.Scan].
//
// [sql.Scanner]: https://pkg.go.dev/database/sql#Scanner
func (n *NullDollars) Scan(value any) error {
	if value == nil {
		n.Dollars = Dollars{}
		n.Valid = false
		return nil
	}
	n.Valid = true
	return n.Dollars.Scan(value)
}

// Value implements the [driver.Valuer] interface.
// See also method [Dollars.Value].
//
// [driver.Valuer]: https://pkg.go.dev/database/sql/driver#Valuer
func (n NullDollars) Value() (driver.Value, error) {
	if !n.Valid {
		return nil, nil
	}
	return n.Dollars.Value()
}

// UnmarshalJSON implements the [json.Unmarshaler] interface.
// See also method [Dollars.UnmarshalJSON].
//
// [json.Unmarshaler]: https://pkg.go.dev/encoding/json#Unmarshaler
func (n *NullDollars) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		n.Dollars = Dollars{}
		n.Valid = false
		return nil
	}
	n.Valid = true
	return n.Dollars.UnmarshalJSON(data)
}

// MarshalJSON implements the [json.Marshaler] interface.
// See also method [Dollars.MarshalJSON].
//
// [json.Marshaler]: https://pkg.go.dev/encoding/json#Marshaler
func (n NullDollars) MarshalJSON() ([]byte, error) {
	if !n.Valid {
		return []byte("null"), nil
	}
	return n.Dollars.MarshalJSON()
}

// UnmarshalBSONValue implements the [v2/bson.ValueUnmarshaler] interface.
// See also method [Dollars.UnmarshalBSONValue].
//
// [v2/bson.ValueUnmarshaler]: https://pkg.go.dev/go.mongodb.org/mongo-driver/v2/bson#ValueUnmarshaler
func (n *NullDollars) UnmarshalBSONValue(typ byte, data []byte) error {
	if typ == bsonNull {
		n.Dollars = Dollars{}
		n.Valid = false
		return nil
	}
	n.Valid = true
	return n.Dollars.UnmarshalBSONValue(typ, data)
}

// MarshalBSONValue implements the [v2/bson.ValueMarshaler] interface.
// See also method [Dollars.MarshalBSONValue].
//
// [v2/bson.ValueMarshaler]: https://pkg.go.dev/go.mongodb.org/mongo-driver/v2/bson#ValueMarshaler
func (n NullDollars) MarshalBSONValue() (typ byte, data []byte, err error) {
	if !n.Valid {
		return bsonNull, nil, nil
	}
	return n.Dollars.MarshalBSONValue()
}
