/*
Package calc implements a curried numeric accumulator.

An Accumulator collects numbers one call at a time. Each numeric argument
yields a new Accumulator over the extended sequence; the sequence of a returned
Accumulator never changes, so any intermediate Accumulator can be saved and
extended along independent branches.

Once a callable is passed, the accumulated values are dispatched to it
according to the number of parameters it requires. A callable requiring r > 1
parameters first receives the first r values, then, for every following group,
its previous result followed by the next r-1 values:

	acc, _ := calc.New().Push(1, 2, 3, 4, 5)
	sum, _ := acc.Call(func(a, b, c int) int { return a + b + c })
	// sum == 15, computed as sum3(sum3(1, 2, 3), 4, 5)

A callable requiring one parameter is only valid after exactly one value.
Numeric strings such as "1.1" are accepted wherever numbers are.

Tracing goes to T() unless an Accumulator was configured with a Tracer.
*/
package calc

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// T traces to a global core-tracer.
func T() tracing.Trace {
	return gtrace.CoreTracer
}
