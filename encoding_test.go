package dollars

import (
	"bytes"
	"database/sql"
	"database/sql/driver"
	"encoding"
	"encoding/json"
	"math"
	"testing"
)

func TestDollars_EncodingInterfaces(t *testing.T) {
	var i any = Dollars{}
	if _, ok := i.(encoding.TextMarshaler); !ok {
		t.Errorf("%T does not implement encoding.TextMarshaler", i)
	}
	if _, ok := i.(json.Marshaler); !ok {
		t.Errorf("%T does not implement json.Marshaler", i)
	}
	if _, ok := i.(driver.Valuer); !ok {
		t.Errorf("%T does not implement driver.Valuer", i)
	}
	i = &Dollars{}
	if _, ok := i.(encoding.TextUnmarshaler); !ok {
		t.Errorf("%T does not implement encoding.TextUnmarshaler", i)
	}
	if _, ok := i.(json.Unmarshaler); !ok {
		t.Errorf("%T does not implement json.Unmarshaler", i)
	}
	if _, ok := i.(sql.Scanner); !ok {
		t.Errorf("%T does not implement sql.Scanner", i)
	}
}

func TestDollars_MarshalText(t *testing.T) {
	tests := []struct {
		cents int64
		want  string
	}{
		{-105, "-$1.05"},
		{0, "$0.00"},
		{1234, "$12.34"},
	}
	for _, tt := range tests {
		d := NewFromCents(tt.cents)
		got, err := d.MarshalText()
		if err != nil {
			t.Errorf("%v.MarshalText() failed: %v", d, err)
			continue
		}
		if string(got) != tt.want {
			t.Errorf("%v.MarshalText() = %q, want %q", d, got, tt.want)
		}
		got, err = d.AppendText([]byte("x="))
		if err != nil {
			t.Errorf("%v.AppendText() failed: %v", d, err)
			continue
		}
		if string(got) != "x="+tt.want {
			t.Errorf("%v.AppendText(\"x=\") = %q, want %q", d, got, "x="+tt.want)
		}
	}
}

func TestDollars_UnmarshalText(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		var got Dollars
		if err := got.UnmarshalText([]byte("-$1.05")); err != nil {
			t.Fatalf("UnmarshalText(\"-$1.05\") failed: %v", err)
		}
		if want := NewFromCents(-105); got != want {
			t.Errorf("UnmarshalText(\"-$1.05\") = %v, want %v", got, want)
		}
	})

	t.Run("error", func(t *testing.T) {
		tests := []string{"1x", "12.3", "1.2.3", "café"}
		for _, tt := range tests {
			var got Dollars
			if err := got.UnmarshalText([]byte(tt)); err == nil {
				t.Errorf("UnmarshalText(%q) did not fail", tt)
			}
		}
	})
}

func TestDollars_JSON(t *testing.T) {
	type payment struct {
		Amount Dollars     `json:"amount"`
		Fee    NullDollars `json:"fee"`
	}

	t.Run("marshal", func(t *testing.T) {
		tests := []struct {
			p    payment
			want string
		}{
			{payment{}, `{"amount":"$0.00","fee":null}`},
			{payment{NewFromCents(-105), NullDollars{}}, `{"amount":"-$1.05","fee":null}`},
			{payment{NewFromCents(1234), NullDollars{NewFromCents(50), true}}, `{"amount":"$12.34","fee":"$0.50"}`},
		}
		for _, tt := range tests {
			got, err := json.Marshal(tt.p)
			if err != nil {
				t.Errorf("json.Marshal(%v) failed: %v", tt.p, err)
				continue
			}
			if string(got) != tt.want {
				t.Errorf("json.Marshal(%v) = %s, want %s", tt.p, got, tt.want)
			}
		}
	})

	t.Run("unmarshal", func(t *testing.T) {
		tests := []struct {
			data string
			want payment
		}{
			{`{}`, payment{}},
			{`{"amount":null,"fee":null}`, payment{}},
			{`{"amount":"-$1.05"}`, payment{NewFromCents(-105), NullDollars{}}},
			{`{"amount":-105}`, payment{NewFromCents(-105), NullDollars{}}},
			{`{"amount":"12.34","fee":"$.50"}`, payment{NewFromCents(1234), NullDollars{NewFromCents(50), true}}},
			{`{"amount":"$0.00","fee":0}`, payment{NewFromCents(0), NullDollars{NewFromCents(0), true}}},
		}
		for _, tt := range tests {
			var got payment
			if err := json.Unmarshal([]byte(tt.data), &got); err != nil {
				t.Errorf("json.Unmarshal(%s) failed: %v", tt.data, err)
				continue
			}
			if got != tt.want {
				t.Errorf("json.Unmarshal(%s) = %v, want %v", tt.data, got, tt.want)
			}
		}
	})

	t.Run("error", func(t *testing.T) {
		tests := []string{
			`{"amount":"1x"}`,
			`{"amount":"12.3"}`,
			`{"amount":1.5}`,
			`{"amount":9223372036854775808}`,
			`{"fee":"1.2.3"}`,
		}
		for _, tt := range tests {
			var got payment
			if err := json.Unmarshal([]byte(tt), &got); err == nil {
				t.Errorf("json.Unmarshal(%s) did not fail", tt)
			}
		}
	})
}

func TestDollars_BSON(t *testing.T) {
	t.Run("marshal", func(t *testing.T) {
		d := NewFromCents(-105)
		typ, data, err := d.MarshalBSONValue()
		if err != nil {
			t.Fatalf("%v.MarshalBSONValue() failed: %v", d, err)
		}
		if typ != 0x12 {
			t.Errorf("%v.MarshalBSONValue() type = %v, want %v", d, typ, 0x12)
		}
		want := []byte{0x97, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff}
		if !bytes.Equal(data, want) {
			t.Errorf("%v.MarshalBSONValue() data = %v, want %v", d, data, want)
		}
	})

	t.Run("unmarshal", func(t *testing.T) {
		tests := []struct {
			typ  byte
			data []byte
			want int64
		}{
			{0x12, []byte{0x97, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff}, -105},
			{0x12, []byte{0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0x7f}, math.MaxInt64},
			{0x10, []byte{0xd2, 0x04, 0x00, 0x00}, 1234},
			{0x10, []byte{0xff, 0xff, 0xff, 0xff}, -1},
			{0x02, []byte{0x07, 0x00, 0x00, 0x00, '$', '1', '2', '.', '3', '4', 0x00}, 1234},
		}
		for _, tt := range tests {
			var got Dollars
			if err := got.UnmarshalBSONValue(tt.typ, tt.data); err != nil {
				t.Errorf("UnmarshalBSONValue(%v, %v) failed: %v", tt.typ, tt.data, err)
				continue
			}
			if want := NewFromCents(tt.want); got != want {
				t.Errorf("UnmarshalBSONValue(%v, %v) = %v, want %v", tt.typ, tt.data, got, want)
			}
		}
	})

	t.Run("roundtrip", func(t *testing.T) {
		tests := []int64{math.MinInt64, -105, 0, 1234, math.MaxInt64}
		for _, tt := range tests {
			d := NewFromCents(tt)
			typ, data, err := d.MarshalBSONValue()
			if err != nil {
				t.Errorf("%v.MarshalBSONValue() failed: %v", d, err)
				continue
			}
			var got Dollars
			if err := got.UnmarshalBSONValue(typ, data); err != nil {
				t.Errorf("UnmarshalBSONValue(%v, %v) failed: %v", typ, data, err)
				continue
			}
			if got != d {
				t.Errorf("UnmarshalBSONValue(%v, %v) = %v, want %v", typ, data, got, d)
			}
		}
	})

	t.Run("error", func(t *testing.T) {
		tests := map[string]struct {
			typ  byte
			data []byte
		}{
			"type 1":       {0x01, []byte{0, 0, 0, 0, 0, 0, 0, 0}},
			"type 2":       {0x13, nil},
			"int64 length": {0x12, []byte{0x01}},
			"int32 length": {0x10, []byte{0x01, 0x00}},
			"string 1":     {0x02, []byte{0x02, 0x00}},
			"string 2":     {0x02, []byte{0x05, 0x00, 0x00, 0x00, '$', '1'}},
			"string 3":     {0x02, []byte{0x03, 0x00, 0x00, 0x00, '1', 'x', 0x01}},
			"string 4":     {0x02, []byte{0x03, 0x00, 0x00, 0x00, '1', 'x', 0x00}},
		}
		for name, tt := range tests {
			t.Run(name, func(t *testing.T) {
				var got Dollars
				if err := got.UnmarshalBSONValue(tt.typ, tt.data); err == nil {
					t.Errorf("UnmarshalBSONValue(%v, %v) did not fail", tt.typ, tt.data)
				}
			})
		}
	})
}

func TestNullDollars_BSON(t *testing.T) {
	var n NullDollars
	typ, data, err := n.MarshalBSONValue()
	if err != nil || typ != 0x0A || data != nil {
		t.Errorf("NullDollars{}.MarshalBSONValue() = (%v, %v, %v), want (10, nil, nil)", typ, data, err)
	}
	if err := n.UnmarshalBSONValue(0x12, []byte{0x97, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff}); err != nil {
		t.Fatalf("UnmarshalBSONValue failed: %v", err)
	}
	if want := (NullDollars{NewFromCents(-105), true}); n != want {
		t.Errorf("UnmarshalBSONValue = %v, want %v", n, want)
	}
	if err := n.UnmarshalBSONValue(0x0A, nil); err != nil {
		t.Fatalf("UnmarshalBSONValue failed: %v", err)
	}
	if n.Valid {
		t.Errorf("UnmarshalBSONValue(10, nil) = %v, want null", n)
	}
}

func TestDollars_Value(t *testing.T) {
	tests := []int64{math.MinInt64, -105, 0, 1234}
	for _, tt := range tests {
		d := NewFromCents(tt)
		got, err := d.Value()
		if err != nil {
			t.Errorf("%v.Value() failed: %v", d, err)
			continue
		}
		if got != tt {
			t.Errorf("%v.Value() = %v, want %v", d, got, tt)
		}
	}
}

func TestDollars_Scan(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		tests := []struct {
			value any
			want  int64
		}{
			{int64(-105), -105},
			{int64(math.MaxInt64), math.MaxInt64},
			{"-$1.05", -105},
			{[]byte("$12.34"), 1234},
		}
		for _, tt := range tests {
			var got Dollars
			if err := got.Scan(tt.value); err != nil {
				t.Errorf("Scan(%v) failed: %v", tt.value, err)
				continue
			}
			if want := NewFromCents(tt.want); got != want {
				t.Errorf("Scan(%v) = %v, want %v", tt.value, got, want)
			}
		}
	})

	t.Run("error", func(t *testing.T) {
		tests := []any{nil, 1.05, true, "1x", []byte("12.3")}
		for _, tt := range tests {
			var got Dollars
			if err := got.Scan(tt); err == nil {
				t.Errorf("Scan(%v) did not fail", tt)
			}
		}
	})
}

func TestNullDollars_Scan(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		tests := []struct {
			value any
			want  NullDollars
		}{
			{nil, NullDollars{}},
			{int64(-105), NullDollars{NewFromCents(-105), true}},
			{"$0.00", NullDollars{NewFromCents(0), true}},
		}
		for _, tt := range tests {
			got := NullDollars{NewFromCents(1), true}
			if err := got.Scan(tt.value); err != nil {
				t.Errorf("Scan(%v) failed: %v", tt.value, err)
				continue
			}
			if got != tt.want {
				t.Errorf("Scan(%v) = %v, want %v", tt.value, got, tt.want)
			}
		}
	})

	t.Run("error", func(t *testing.T) {
		tests := []any{[]byte("1x"), 1.05}
		for _, tt := range tests {
			var got NullDollars
			if err := got.Scan(tt); err == nil {
				t.Errorf("Scan(%v) did not fail", tt)
			}
		}
	})
}

func TestNullDollars_Value(t *testing.T) {
	tests := []struct {
		n    NullDollars
		want driver.Value
	}{
		{NullDollars{}, nil},
		{NullDollars{NewFromCents(-105), true}, int64(-105)},
	}
	for _, tt := range tests {
		got, err := tt.n.Value()
		if err != nil {
			t.Errorf("%v.Value() failed: %v", tt.n, err)
			continue
		}
		if got != tt.want {
			t.Errorf("%v.Value() = %v, want %v", tt.n, got, tt.want)
		}
	}
}
