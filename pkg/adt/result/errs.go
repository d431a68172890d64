package result

import (
	"errors"
)

// Adapters between Result[T, error] and Go's (T, error) convention.
// They are the only boundary where the library meets error returns;
// the combinators themselves never produce or inspect errors.

// Of lifts a (value, error) pair, e.g. a plain function return.
func Of[T any](v T, err error) Result[T, error] {
	if err != nil {
		return Failure[T, error](err)
	}
	return Success[T, error](v)
}

// Try binds an error-returning function over a success value, converting
// a non-nil error into a failure. Panics raised by f are not caught.
func Try[In, Out any](r Result[In, error], f func(In) (Out, error)) Result[Out, error] {
	return FlatMap(r, func(v In) Result[Out, error] {
		return Of(f(v))
	})
}

// Catch runs an error-returning producer and captures its outcome.
// Panics raised by f are not caught; a panic is a bug, not a failure.
func Catch[T any](f func() (T, error)) Result[T, error] {
	return Of(f())
}

// Errors flattens a joined error into its parts; a nil error yields none.
func Errors(err error) []error {
	if err == nil {
		return []error{}
	}

	e, ok := err.(interface{ Unwrap() []error })
	if ok {
		return e.Unwrap()
	}

	return []error{err}
}

// Collect gathers the success values of all Results. Unlike Sequence it
// does not short-circuit: every failure is visited and their payloads are
// joined into one failure via errors.Join.
func Collect[T any](rs []Result[T, error]) Result[[]T, error] {
	values := make([]T, 0, len(rs))
	var errs []error

	for _, r := range rs {
		if v, ok := r.Get(); ok {
			values = append(values, v)
		} else {
			errs = append(errs, Errors(r.err)...)
		}
	}

	if len(errs) > 0 {
		return Failure[[]T, error](errors.Join(errs...))
	}
	return Success[[]T, error](values)
}
