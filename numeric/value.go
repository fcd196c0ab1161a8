package numeric

import (
	"math"
	"strconv"
)

// Kind reports whether a Value is integral or real.
type Kind uint8

const (
	Invalid Kind = iota
	Integer
	Real
)

func (k Kind) String() string {
	switch k {
	case Integer:
		return "integer"
	case Real:
		return "real"
	default:
		return "invalid"
	}
}

// Value is an immutable number, either an int64 or a float64.
// The zero Value is invalid.
type Value struct {
	kind Kind
	i    int64
	f    float64
}

// Int returns an integral Value.
func Int(i int64) Value {
	return Value{kind: Integer, i: i}
}

// Float returns a real Value.
func Float(f float64) Value {
	return Value{kind: Real, f: f}
}

func (v Value) Kind() Kind {
	return v.kind
}

func (v Value) IsValid() bool {
	return v.kind != Invalid
}

func (v Value) IsInt() bool {
	return v.kind == Integer
}

// Int64 returns the value truncated toward zero.
func (v Value) Int64() int64 {
	if v.kind == Real {
		return int64(v.f)
	}
	return v.i
}

func (v Value) Float64() float64 {
	if v.kind == Integer {
		return float64(v.i)
	}
	return v.f
}

// IsIntegral reports whether the value has no fractional part.
func (v Value) IsIntegral() bool {
	if v.kind == Integer {
		return true
	}
	return !math.IsInf(v.f, 0) && !math.IsNaN(v.f) && math.Trunc(v.f) == v.f
}

// Interface returns the native Go form of the value, int64 or float64.
func (v Value) Interface() any {
	switch v.kind {
	case Integer:
		return v.i
	case Real:
		return v.f
	default:
		return nil
	}
}

func (v Value) String() string {
	switch v.kind {
	case Integer:
		return strconv.FormatInt(v.i, 10)
	case Real:
		return strconv.FormatFloat(v.f, 'g', -1, 64)
	default:
		return "<invalid>"
	}
}

// MarshalJSON renders the value as a JSON number. NaN and infinities have no
// JSON form and are rendered as null.
func (v Value) MarshalJSON() ([]byte, error) {
	if !v.IsValid() || (v.kind == Real && (math.IsNaN(v.f) || math.IsInf(v.f, 0))) {
		return []byte("null"), nil
	}
	return []byte(v.String()), nil
}

// Equal reports whether two values denote the same number, regardless of kind.
func (v Value) Equal(o Value) bool {
	if v.kind == Integer && o.kind == Integer {
		return v.i == o.i
	}
	return v.IsValid() && o.IsValid() && v.Float64() == o.Float64()
}
