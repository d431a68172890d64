package option

import (
	"github.com/ib-77/adt/pkg/adt"
)

// Map applies onSome to the value when present; None propagates untouched.
// onSome is never invoked on an absent input.
func Map[In, Out any](o Option[In], onSome func(In) Out) Option[Out] {
	if v, ok := o.Get(); ok {
		return Some(onSome(v))
	}
	return None[Out]()
}

// FlatMap applies onSome when present and returns its result directly,
// without double-wrapping; None propagates untouched. This is the monadic
// bind for Option.
func FlatMap[In, Out any](o Option[In], onSome func(In) Option[Out]) Option[Out] {
	if v, ok := o.Get(); ok {
		return onSome(v)
	}
	return None[Out]()
}

// Fold eliminates the Option: exactly one of the two handlers runs.
// It is the sanctioned way to extract a raw value from the container.
func Fold[T, Out any](o Option[T], onNone func() Out, onSome func(T) Out) Out {
	if v, ok := o.Get(); ok {
		return onSome(v)
	}
	return onNone()
}

// Zip pairs two Options; the result is present only when both are.
func Zip[A, B any](a Option[A], b Option[B]) Option[adt.Pair[A, B]] {
	return ZipWith(a, b, adt.PairOf[A, B])
}

// ZipWith combines two Options with merge; absent when either is absent.
func ZipWith[A, B, Out any](a Option[A], b Option[B], merge func(A, B) Out) Option[Out] {
	av, aok := a.Get()
	if !aok {
		return None[Out]()
	}
	bv, bok := b.Get()
	if !bok {
		return None[Out]()
	}
	return Some(merge(av, bv))
}

// Sequence collects the values of all Options; absent when any is absent.
func Sequence[T any](opts []Option[T]) Option[[]T] {
	values := make([]T, 0, len(opts))
	for _, o := range opts {
		v, ok := o.Get()
		if !ok {
			return None[[]T]()
		}
		values = append(values, v)
	}
	return Some(values)
}
