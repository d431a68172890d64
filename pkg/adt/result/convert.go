package result

import (
	"github.com/ib-77/adt/pkg/adt/option"
)

// ToOption projects a Result onto an Option, discarding the failure
// payload: a success becomes Some, any failure becomes None.
func ToOption[T, E any](r Result[T, E]) option.Option[T] {
	if v, ok := r.Get(); ok {
		return option.Some(v)
	}
	return option.None[T]()
}

// FromOption lifts an Option into a Result, using onAbsent as the failure
// payload when the Option is None.
func FromOption[T, E any](o option.Option[T], onAbsent E) Result[T, E] {
	if v, ok := o.Get(); ok {
		return Success[T, E](v)
	}
	return Failure[T, E](onAbsent)
}
