package calc

import (
	"github.com/go-leo/calc/arity"
	"github.com/go-leo/calc/numeric"
	"github.com/npillmayer/schuko/tracing"
)

type options struct {
	Tracer     tracing.Trace
	Recognizer numeric.Recognizer
	Inspector  arity.Inspector
}

func (o *options) apply(opts ...Option) *options {
	for _, opt := range opts {
		opt(o)
	}
	return o
}

func (o *options) correct() *options {
	if o.Recognizer == nil {
		o.Recognizer = numeric.From
	}
	if o.Inspector == nil {
		o.Inspector = arity.Of
	}
	return o
}

var defaultOptions = new(options).correct()

type Option func(o *options)

// Tracer sets the trace sink. Without it the accumulator traces to T().
func Tracer(trace tracing.Trace) Option {
	return func(o *options) {
		o.Tracer = trace
	}
}

// Recognizer replaces numeric.From as the test for numeric arguments.
func Recognizer(recognizer numeric.Recognizer) Option {
	return func(o *options) {
		o.Recognizer = recognizer
	}
}

// Inspector replaces arity.Of as the resolver of callable arguments.
func Inspector(inspector arity.Inspector) Option {
	return func(o *options) {
		o.Inspector = inspector
	}
}
