package calc

import (
	"fmt"
	"reflect"
)

// Code discriminates the failures of an Accumulator. The values are stable.
type Code int

const (
	ArityMismatch       Code = 0
	InsufficientValues  Code = 1
	SingleArityMismatch Code = 2
	InvalidArgument     Code = 4
	UnsupportedCallable Code = 5
	CallableFailed      Code = 6
	IncompatibleValue   Code = 7
)

func (c Code) String() string {
	switch c {
	case ArityMismatch:
		return "arity mismatch"
	case InsufficientValues:
		return "insufficient values"
	case SingleArityMismatch:
		return "single arity mismatch"
	case InvalidArgument:
		return "invalid argument"
	case UnsupportedCallable:
		return "unsupported callable"
	case CallableFailed:
		return "callable failed"
	case IncompatibleValue:
		return "incompatible value"
	default:
		return fmt.Sprintf("code(%d)", int(c))
	}
}

type Error struct {
	Code Code
	// Required is the parameter count of the callable.
	Required int
	// Given is the number of accumulated values.
	Given int
	// Round is the 1-based group invocation that failed.
	Round int
	// Type is the type of a rejected argument.
	Type reflect.Type
	err  error
}

func (e Error) Error() string {
	switch e.Code {
	case ArityMismatch:
		return fmt.Sprintf("calc: callable expects %d params, count of values after the first must be a multiple of %d, %d given", e.Required, e.Required-1, e.Given)
	case InsufficientValues:
		return fmt.Sprintf("calc: at least %d values are required before dispatch, %d given", e.Required, e.Given)
	case SingleArityMismatch:
		return fmt.Sprintf("calc: a single-parameter callable must be invoked after exactly 1 value, %d given", e.Given)
	case InvalidArgument:
		if e.err != nil {
			return fmt.Sprintf("calc: argument must be either a number or a callable, type(%s), %v", typeString(e.Type), e.err)
		}
		return fmt.Sprintf("calc: argument must be either a number or a callable, type(%s)", typeString(e.Type))
	case UnsupportedCallable:
		return fmt.Sprintf("calc: callable must accept at least one required parameter, %d required", e.Required)
	case CallableFailed:
		return fmt.Sprintf("calc: callable failed in round %d, %v", e.Round, e.err)
	case IncompatibleValue:
		return fmt.Sprintf("calc: incompatible value in round %d, %v", e.Round, e.err)
	default:
		return ""
	}
}

func (e Error) Unwrap() error {
	return e.err
}

// Is matches any Error carrying the same code, so errors.Is(err, ErrArityMismatch)
// holds whatever the counts were.
func (e Error) Is(target error) bool {
	t, ok := target.(Error)
	return ok && t.Code == e.Code
}

var (
	ErrArityMismatch       = Error{Code: ArityMismatch}
	ErrInsufficientValues  = Error{Code: InsufficientValues}
	ErrSingleArityMismatch = Error{Code: SingleArityMismatch}
	ErrInvalidArgument     = Error{Code: InvalidArgument}
	ErrUnsupportedCallable = Error{Code: UnsupportedCallable}
	ErrCallableFailed      = Error{Code: CallableFailed}
	ErrIncompatibleValue   = Error{Code: IncompatibleValue}
)

func typeString(t reflect.Type) string {
	if t == nil {
		return "nil"
	}
	return t.String()
}

func newArityMismatchError(required, given int) error {
	return Error{Code: ArityMismatch, Required: required, Given: given}
}

func newInsufficientValuesError(required, given int) error {
	return Error{Code: InsufficientValues, Required: required, Given: given}
}

func newSingleArityMismatchError(given int) error {
	return Error{Code: SingleArityMismatch, Required: 1, Given: given}
}

func newInvalidArgumentError(arg any, err error) error {
	return Error{Code: InvalidArgument, Type: reflect.TypeOf(arg), err: err}
}

func newUnsupportedCallableError(required, given int) error {
	return Error{Code: UnsupportedCallable, Required: required, Given: given}
}

func newCallableFailedError(required, given, round int, err error) error {
	return Error{Code: CallableFailed, Required: required, Given: given, Round: round, err: err}
}

func newIncompatibleValueError(required, given, round int, err error) error {
	return Error{Code: IncompatibleValue, Required: required, Given: given, Round: round, err: err}
}
