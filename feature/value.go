package feature

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

/*
Kind identifies the type tag of a Value.
*/
type Kind uint8

const (
	// String values hold arbitrary text
	String Kind = iota
	// Int values hold 64-bit signed integers
	Int
	// Float values hold 64-bit floating point numbers
	Float
)

func (k Kind) String() string {
	switch k {
	case Int:
		return "int"
	case Float:
		return "float"
	case String:
		return "string"
	}
	return fmt.Sprintf("kind(%d)", uint8(k))
}

/*
ParseKind takes the textual name of a kind ("int", "float" or "string")
and returns the corresponding Kind or an error.
*/
func ParseKind(s string) (Kind, error) {
	switch s {
	case "int":
		return Int, nil
	case "float":
		return Float, nil
	case "string":
		return String, nil
	}
	return String, fmt.Errorf("unknown value kind %q", s)
}

/*
Value is a scalar observed on a row: an integer, a floating point number
or a string. The kind is part of its identity, so Int(1) and Float(1) are
different values. No arithmetic is ever performed on values.
*/
type Value struct {
	kind Kind
	i    int64
	f    float64
	s    string
}

/*
Key is a comparable representation of a Value, suitable as a map key.
Two values have the same key if and only if they are equal.
*/
type Key struct {
	kind Kind
	i    int64
	s    string
}

// IntValue returns an Int value
func IntValue(i int64) Value {
	return Value{kind: Int, i: i}
}

// FloatValue returns a Float value
func FloatValue(f float64) Value {
	return Value{kind: Float, f: f}
}

// StringValue returns a String value
func StringValue(s string) Value {
	return Value{kind: String, s: s}
}

/*
ParseValue takes a string, trims surrounding whitespace and returns an Int
value if it parses as a base 10 integer, a Float value if it parses as a
floating point number or a String value with the trimmed text otherwise.
*/
func ParseValue(s string) Value {
	s = strings.TrimSpace(s)
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return IntValue(i)
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return FloatValue(f)
	}
	return StringValue(s)
}

// Kind returns the type tag of the value
func (v Value) Kind() Kind {
	return v.kind
}

// Int returns the integer payload and whether the value is an Int
func (v Value) Int() (int64, bool) {
	return v.i, v.kind == Int
}

// Float returns the floating point payload and whether the value is a Float
func (v Value) Float() (float64, bool) {
	return v.f, v.kind == Float
}

// Str returns the string payload and whether the value is a String
func (v Value) Str() (string, bool) {
	return v.s, v.kind == String
}

/*
Equal returns true when both values have the same kind and payload.
NaN floats are considered equal to each other so that they group together.
*/
func (v Value) Equal(o Value) bool {
	return v.Key() == o.Key()
}

/*
Key returns the comparable key for the value.
*/
func (v Value) Key() Key {
	switch v.kind {
	case Int:
		return Key{kind: Int, i: v.i}
	case Float:
		if math.IsNaN(v.f) {
			return Key{kind: Float, s: "nan"}
		}
		if v.f == 0 {
			// -0.0 and 0.0 compare equal
			return Key{kind: Float}
		}
		return Key{kind: Float, i: int64(math.Float64bits(v.f))}
	}
	return Key{kind: String, s: v.s}
}

/*
String returns the canonical textual form of the value. Integral floats
keep a trailing ".0" so that Float(2) renders as "2.0" and never collides
visually with Int(2).
*/
func (v Value) String() string {
	switch v.kind {
	case Int:
		return strconv.FormatInt(v.i, 10)
	case Float:
		return formatFloat(v.f)
	}
	return v.s
}

func formatFloat(f float64) string {
	switch {
	case math.IsNaN(f):
		return "nan"
	case math.IsInf(f, 1):
		return "inf"
	case math.IsInf(f, -1):
		return "-inf"
	}
	s := strconv.FormatFloat(f, 'g', -1, 64)
	if strings.ContainsAny(s, "e") {
		a := math.Abs(f)
		if a >= 1e-4 && a < 1e16 {
			s = strconv.FormatFloat(f, 'f', -1, 64)
		} else {
			return s
		}
	}
	if !strings.ContainsAny(s, ".") {
		s += ".0"
	}
	return s
}
