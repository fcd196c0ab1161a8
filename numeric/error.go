package numeric

import (
	"fmt"
	"reflect"
)

type Code int

const (
	FailedParse     Code = 1
	Overflow        Code = 2
	NegativeNumber  Code = 3
	Fraction        Code = 4
	UnsupportedType Code = 5
)

type Error struct {
	Code  Code
	Type  reflect.Type
	Value string
	err   error
}

func (e Error) Error() string {
	switch e.Code {
	case FailedParse:
		if e.err != nil {
			return fmt.Sprintf("numeric: failed to parse string error, value(%q), %v", e.Value, e.err)
		}
		return fmt.Sprintf("numeric: failed to parse string error, value(%q)", e.Value)
	case Overflow:
		return fmt.Sprintf("numeric: overflow error, value(%s) -> type(%s)", e.Value, typeString(e.Type))
	case NegativeNumber:
		return fmt.Sprintf("numeric: negative number error, value(%s) -> type(%s)", e.Value, typeString(e.Type))
	case Fraction:
		return fmt.Sprintf("numeric: fraction error, value(%s) -> type(%s)", e.Value, typeString(e.Type))
	case UnsupportedType:
		return fmt.Sprintf("numeric: unsupported type error, type(%s)", typeString(e.Type))
	default:
		return ""
	}
}

func (e Error) Unwrap() error {
	return e.err
}

// Is matches any numeric Error carrying the same code.
func (e Error) Is(target error) bool {
	t, ok := target.(Error)
	return ok && t.Code == e.Code && t.Type == nil && t.Value == ""
}

var (
	ErrFailedParse     = Error{Code: FailedParse}
	ErrOverflow        = Error{Code: Overflow}
	ErrNegativeNumber  = Error{Code: NegativeNumber}
	ErrFraction        = Error{Code: Fraction}
	ErrUnsupportedType = Error{Code: UnsupportedType}
)

func typeString(t reflect.Type) string {
	if t == nil {
		return "nil"
	}
	return t.String()
}

func newParseError(value string, err error) error {
	return Error{Code: FailedParse, Value: value, err: err}
}

func newOverflowError(tgtType reflect.Type, value string) error {
	return Error{Code: Overflow, Type: tgtType, Value: value}
}

func newNegativeNumberError(tgtType reflect.Type, value string) error {
	return Error{Code: NegativeNumber, Type: tgtType, Value: value}
}

func newFractionError(tgtType reflect.Type, value string) error {
	return Error{Code: Fraction, Type: tgtType, Value: value}
}

func newUnsupportedTypeError(srcType reflect.Type) error {
	return Error{Code: UnsupportedType, Type: srcType}
}
