package numeric

import (
	"encoding/json"
	"errors"
	"math"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-leo/gox/stringx"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

// Recognizer turns an argument into a Value, or fails when the argument is not
// numeric.
type Recognizer func(arg any) (Value, error)

// Parse parses an integer or decimal literal. Surrounding whitespace, one
// leading plus sign and a bare leading or trailing decimal point are allowed;
// thousand separators and non-numeric text are rejected. Integer literals
// yield integral values unless they overflow int64, and real literals beyond
// the float64 range yield an infinity.
func Parse(s string) (Value, error) {
	n := normalize(s)
	if !stringx.IsValidNumber(n) {
		return Value{}, newParseError(s, nil)
	}
	if !strings.ContainsAny(n, ".eE") {
		i, err := strconv.ParseInt(n, 10, 64)
		if err == nil {
			return Int(i), nil
		}
		if !errors.Is(err, strconv.ErrRange) {
			return Value{}, newParseError(s, err)
		}
	}
	f, err := strconv.ParseFloat(n, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return Value{}, newParseError(s, err)
	}
	return Float(f), nil
}

// normalize rewrites s into the JSON number grammar checked by
// stringx.IsValidNumber. Anything it cannot rewrite is returned in a form the
// check rejects.
func normalize(s string) string {
	t := strings.Trim(s, " \t\n\r\v\f")
	sign := ""
	if t != "" && (t[0] == '+' || t[0] == '-') {
		if t[0] == '-' {
			sign = "-"
		}
		t = t[1:]
	}
	mantissa, exponent := t, ""
	if i := strings.IndexAny(t, "eE"); i >= 0 {
		mantissa, exponent = t[:i], t[i:]
	}
	if mantissa == "" || mantissa == "." || mantissa[0] == '+' || mantissa[0] == '-' {
		return ""
	}
	if mantissa[0] == '.' {
		mantissa = "0" + mantissa
	}
	if mantissa[len(mantissa)-1] == '.' {
		mantissa += "0"
	}
	for len(mantissa) > 1 && mantissa[0] == '0' && mantissa[1] != '.' {
		mantissa = mantissa[1:]
	}
	return sign + mantissa + exponent
}

// IsNumeric reports whether From would accept arg.
func IsNumeric(arg any) bool {
	_, err := From(arg)
	return err == nil
}

// From is the default Recognizer. It accepts Go integer and float kinds,
// numeric strings, json.Number and the protobuf number wrappers.
func From(arg any) (Value, error) {
	switch v := arg.(type) {
	case nil:
		return Value{}, newUnsupportedTypeError(nil)
	case Value:
		if !v.IsValid() {
			return Value{}, newUnsupportedTypeError(valueType)
		}
		return v, nil
	case string:
		return Parse(v)
	case json.Number:
		return Parse(string(v))
	case *wrapperspb.Int32Value:
		if v == nil {
			return Value{}, newUnsupportedTypeError(wrappersPBInt32PtrType)
		}
		return Int(int64(v.GetValue())), nil
	case *wrapperspb.Int64Value:
		if v == nil {
			return Value{}, newUnsupportedTypeError(wrappersPBInt64PtrType)
		}
		return Int(v.GetValue()), nil
	case *wrapperspb.UInt32Value:
		if v == nil {
			return Value{}, newUnsupportedTypeError(wrappersPBUint32PtrType)
		}
		return Int(int64(v.GetValue())), nil
	case *wrapperspb.UInt64Value:
		if v == nil {
			return Value{}, newUnsupportedTypeError(wrappersPBUint64PtrType)
		}
		return fromUint(v.GetValue()), nil
	case *wrapperspb.FloatValue:
		if v == nil {
			return Value{}, newUnsupportedTypeError(wrappersPBFloatPtrType)
		}
		return Float(float64(v.GetValue())), nil
	case *wrapperspb.DoubleValue:
		if v == nil {
			return Value{}, newUnsupportedTypeError(wrappersPBDoublePtrType)
		}
		return Float(v.GetValue()), nil
	case *wrapperspb.StringValue:
		if v == nil {
			return Value{}, newUnsupportedTypeError(wrappersPBStringPtrType)
		}
		return Parse(v.GetValue())
	case *structpb.Value:
		return fromStructPB(v)
	}
	return fromReflect(reflect.ValueOf(arg))
}

func fromStructPB(v *structpb.Value) (Value, error) {
	switch k := v.GetKind().(type) {
	case *structpb.Value_NumberValue:
		return Float(k.NumberValue), nil
	case *structpb.Value_StringValue:
		return Parse(k.StringValue)
	default:
		return Value{}, newUnsupportedTypeError(structPBValuePtrType)
	}
}

func fromReflect(rv reflect.Value) (Value, error) {
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return Int(rv.Int()), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return fromUint(rv.Uint()), nil
	case reflect.Float32, reflect.Float64:
		return Float(rv.Float()), nil
	case reflect.String:
		return Parse(rv.String())
	default:
		return Value{}, newUnsupportedTypeError(rv.Type())
	}
}

func fromUint(u uint64) Value {
	if u > math.MaxInt64 {
		return Float(float64(u))
	}
	return Int(int64(u))
}
