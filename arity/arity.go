// Package arity resolves callables and the number of parameters they require.
//
// Plain functions, method values and closures are all func values in Go, so a
// single reflective adapter covers them. A variadic tail is optional and does
// not count toward the required parameters. Types that are not func values may
// implement Callable to take part in dispatch with a declared count.
package arity

import (
	"reflect"

	"github.com/go-leo/calc/numeric"
)

// Callable is an invocable with a known required parameter count.
type Callable interface {
	// Required reports how many arguments one invocation consumes.
	Required() int

	// Invoke calls with exactly Required() arguments.
	Invoke(args ...any) (any, error)
}

// Inspector resolves an argument into a Callable.
type Inspector func(arg any) (Callable, bool)

// Of is the default Inspector. It returns arg when it already implements
// Callable, adapts non-nil func values, and reports false for anything else.
func Of(arg any) (Callable, bool) {
	if c, ok := arg.(Callable); ok {
		return c, true
	}
	rv := reflect.ValueOf(arg)
	if rv.Kind() != reflect.Func || rv.IsNil() {
		return nil, false
	}
	return &funcCallable{fn: rv, typ: rv.Type()}, true
}

// Required returns the required parameter count of arg.
func Required(arg any) (int, bool) {
	c, ok := Of(arg)
	if !ok {
		return 0, false
	}
	return c.Required(), true
}

type funcCallable struct {
	fn  reflect.Value
	typ reflect.Type
}

func (f *funcCallable) Required() int {
	n := f.typ.NumIn()
	if f.typ.IsVariadic() {
		n--
	}
	return n
}

func (f *funcCallable) Invoke(args ...any) (any, error) {
	if len(args) != f.Required() {
		return nil, newCountError(f.Required(), len(args))
	}
	in := make([]reflect.Value, len(args))
	for i, arg := range args {
		v, err := coerce(f.typ.In(i), arg)
		if err != nil {
			return nil, ArgumentError{Index: i, Type: f.typ.In(i), err: err}
		}
		in[i] = v
	}
	// a variadic tail is left empty
	return results(f.typ, f.fn.Call(in))
}

// coerce turns arg into a value of tgtType. Numbers go through numeric.Assign,
// anything directly assignable passes unchanged.
func coerce(tgtType reflect.Type, arg any) (reflect.Value, error) {
	if v, ok := arg.(numeric.Value); ok {
		return numeric.Assign(tgtType, v)
	}
	if arg == nil {
		switch tgtType.Kind() {
		case reflect.Interface, reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
			return reflect.Zero(tgtType), nil
		}
		return reflect.Value{}, numeric.Error{Code: numeric.UnsupportedType, Type: tgtType}
	}
	rv := reflect.ValueOf(arg)
	if rv.Type().AssignableTo(tgtType) {
		return rv, nil
	}
	v, err := numeric.From(arg)
	if err != nil {
		return reflect.Value{}, err
	}
	return numeric.Assign(tgtType, v)
}

// results maps the outputs of a call: no outputs yield nil, a trailing error
// is returned as the error, and the first remaining output is the result.
func results(typ reflect.Type, out []reflect.Value) (any, error) {
	if len(out) == 0 {
		return nil, nil
	}
	if last := typ.Out(len(out) - 1); last == errorType {
		if err, _ := out[len(out)-1].Interface().(error); err != nil {
			return nil, err
		}
		out = out[:len(out)-1]
		if len(out) == 0 {
			return nil, nil
		}
	}
	return out[0].Interface(), nil
}

var errorType = reflect.TypeOf((*error)(nil)).Elem()
