package trampoline

// Trampoline pattern allows to define recursive algorithms by iterative loop.
//
// When Get is called on the returned Trampoline, internally it will iterate calling Jump
// on the returned Trampoline as long as the concrete instance returned is More,
// stopping once the returned instance is Done.
//
// Essential we convert looping via recursion into iteration,
// the key enabling mechanism is the fact that More is a lazy operation.
//
// T is type for returning result.
type Trampoline[T any] interface {
	Get() T

	// Jump to next stage.
	Jump() Trampoline[T]

	Result() T

	// Complete checks if complete.
	Complete() bool
}

// Done returns a completed stage holding result.
func Done[T any](result T) Trampoline[T] {
	return done[T]{result: result}
}

// More returns a stage whose successor is computed lazily by next.
func More[T any](next func() Trampoline[T]) Trampoline[T] {
	return more[T](next)
}

type done[T any] struct {
	result T
}

func (d done[T]) Get() T { return d.result }

func (d done[T]) Jump() Trampoline[T] { return d }

func (d done[T]) Result() T { return d.result }

func (d done[T]) Complete() bool { return true }

type more[T any] func() Trampoline[T]

func (m more[T]) Get() T {
	var t Trampoline[T] = m
	for !t.Complete() {
		t = t.Jump()
	}
	return t.Result()
}

func (m more[T]) Jump() Trampoline[T] { return m() }

// Result of an incomplete stage is the zero value.
func (m more[T]) Result() T {
	var zero T
	return zero
}

func (m more[T]) Complete() bool { return false }
