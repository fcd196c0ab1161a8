package calc

import (
	"errors"

	"github.com/go-leo/calc/arity"
	"github.com/go-leo/calc/numeric"
	"github.com/go-leo/calc/trampoline"
	"github.com/go-leo/gox/errorx"
	jsoniter "github.com/json-iterator/go"
	"github.com/npillmayer/schuko/tracing"
	"golang.org/x/exp/slices"
)

// Accumulator holds an immutable sequence of numbers. The zero value and a nil
// *Accumulator both behave as an empty Accumulator with default options.
type Accumulator struct {
	values []numeric.Value
	opts   *options
}

// New returns an empty Accumulator. Options are inherited by every
// Accumulator derived from it.
func New(opts ...Option) *Accumulator {
	return &Accumulator{opts: new(options).apply(opts...).correct()}
}

// Calc is the entry point of an accumulation chain. A numeric arg yields an
// *Accumulator holding that single value; a callable arg is dispatched against
// the empty sequence.
func Calc(arg any, opts ...Option) (any, error) {
	return New(opts...).Call(arg)
}

// Call extends the sequence when arg is numeric and returns the new
// *Accumulator. When arg is callable, the sequence is dispatched to it and its
// result is returned.
func (a *Accumulator) Call(arg any) (any, error) {
	a = a.orEmpty()
	o := a.options()
	if v, err := o.Recognizer(arg); err == nil {
		return a.extend(v), nil
	}
	fn, ok := o.Inspector(arg)
	if !ok {
		return nil, a.fail(newInvalidArgumentError(arg, nil))
	}
	return a.dispatch(fn)
}

// Push extends the sequence by every arg, all of which must be numeric.
func (a *Accumulator) Push(args ...any) (*Accumulator, error) {
	a = a.orEmpty()
	o := a.options()
	values := slices.Grow(slices.Clone(a.values), len(args))
	for _, arg := range args {
		v, err := o.Recognizer(arg)
		if err != nil {
			return nil, a.fail(newInvalidArgumentError(arg, err))
		}
		values = append(values, v)
	}
	a.tracef("calc: push %v -> %d value(s)", args, len(values))
	return &Accumulator{values: values, opts: a.opts}, nil
}

// Apply dispatches the sequence to fn, which must be callable.
func (a *Accumulator) Apply(fn any) (any, error) {
	a = a.orEmpty()
	c, ok := a.options().Inspector(fn)
	if !ok {
		return nil, a.fail(newInvalidArgumentError(fn, nil))
	}
	return a.dispatch(c)
}

// Values returns a copy of the accumulated sequence.
func (a *Accumulator) Values() []numeric.Value {
	return slices.Clone(a.orEmpty().values)
}

func (a *Accumulator) Len() int {
	return len(a.orEmpty().values)
}

// MarshalJSON renders the sequence as a JSON array.
func (a *Accumulator) MarshalJSON() ([]byte, error) {
	if a == nil || a.values == nil {
		return []byte("[]"), nil
	}
	return jsoniter.Marshal(a.values)
}

func (a *Accumulator) String() string {
	return string(errorx.Ignore(a.MarshalJSON()))
}

func (a *Accumulator) extend(v numeric.Value) *Accumulator {
	values := append(slices.Clone(a.values), v)
	a.tracef("calc: push %s -> %d value(s)", v, len(values))
	return &Accumulator{values: values, opts: a.opts}
}

func (a *Accumulator) dispatch(fn arity.Callable) (any, error) {
	reqNum, valNum := fn.Required(), len(a.values)
	switch {
	case reqNum <= 0:
		return nil, a.fail(newUnsupportedCallableError(reqNum, valNum))
	case reqNum == 1:
		if valNum != 1 {
			return nil, a.fail(newSingleArityMismatchError(valNum))
		}
		return a.invoke(fn, 1, a.values[0])
	case reqNum > valNum:
		return nil, a.fail(newInsufficientValuesError(reqNum, valNum))
	case (valNum-1)%(reqNum-1) != 0:
		return nil, a.fail(newArityMismatchError(reqNum, valNum))
	}
	a.tracef("calc: dispatch %d value(s) to %d-ary callable", valNum, reqNum)
	s := a.group(fn, 1, boxed(a.values[:reqNum]), a.values[reqNum:]).Get()
	return s.result, s.err
}

type step struct {
	result any
	err    error
}

// group invokes fn with args, then continues with the previous result and
// the next Required()-1 values of rest until rest is exhausted.
func (a *Accumulator) group(fn arity.Callable, round int, args []any, rest []numeric.Value) trampoline.Trampoline[step] {
	result, err := a.invoke(fn, round, args...)
	if err != nil || len(rest) == 0 {
		return trampoline.Done(step{result: result, err: err})
	}
	n := fn.Required() - 1
	return trampoline.More(func() trampoline.Trampoline[step] {
		next := append([]any{result}, boxed(rest[:n])...)
		return a.group(fn, round+1, next, rest[n:])
	})
}

func (a *Accumulator) invoke(fn arity.Callable, round int, args ...any) (any, error) {
	result, err := fn.Invoke(args...)
	if err != nil {
		var argErr arity.ArgumentError
		if errors.As(err, &argErr) {
			return nil, a.fail(newIncompatibleValueError(fn.Required(), len(a.values), round, err))
		}
		return nil, a.fail(newCallableFailedError(fn.Required(), len(a.values), round, err))
	}
	a.tracef("calc: round %d %v -> %v", round, args, result)
	return result, nil
}

func (a *Accumulator) orEmpty() *Accumulator {
	if a == nil {
		return &Accumulator{}
	}
	return a
}

func (a *Accumulator) options() *options {
	if a.opts == nil {
		return defaultOptions
	}
	return a.opts
}

func (a *Accumulator) tracer() tracing.Trace {
	if t := a.options().Tracer; t != nil {
		return t
	}
	return T()
}

func (a *Accumulator) tracef(format string, args ...any) {
	if t := a.tracer(); t != nil {
		t.Debugf(format, args...)
	}
}

func (a *Accumulator) fail(err error) error {
	if t := a.tracer(); t != nil {
		t.Errorf("%s", err.Error())
	}
	return err
}

func boxed(values []numeric.Value) []any {
	args := make([]any, len(values))
	for i, v := range values {
		args[i] = v
	}
	return args
}
