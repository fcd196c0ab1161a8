package arity

import (
	"fmt"
	"reflect"
)

// ArgumentError reports an argument that could not be converted into the
// parameter it was bound to.
type ArgumentError struct {
	Index int
	Type  reflect.Type
	err   error
}

func (e ArgumentError) Error() string {
	return fmt.Sprintf("arity: argument %d -> type(%s), %v", e.Index, e.Type.String(), e.err)
}

func (e ArgumentError) Unwrap() error {
	return e.err
}

// CountError reports an invocation with the wrong number of arguments.
type CountError struct {
	Required int
	Given    int
}

func (e CountError) Error() string {
	return fmt.Sprintf("arity: %d argument(s) required, %d given", e.Required, e.Given)
}

func newCountError(required, given int) error {
	return CountError{Required: required, Given: given}
}
