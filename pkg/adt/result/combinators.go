package result

import (
	"github.com/ib-77/adt/pkg/adt"
)

// Map applies onSuccess to the success value; a failure propagates with
// its payload and provenance untouched. onSuccess is never invoked on a
// failed input.
func Map[In, Out, E any](r Result[In, E], onSuccess func(In) Out) Result[Out, E] {
	if v, ok := r.Get(); ok {
		return Success[Out, E](onSuccess(v))
	}
	return FailureFrom[In, Out](r)
}

// MapError applies onFailure to the failure value; a success propagates
// untouched, provenance included.
func MapError[T, E, F any](r Result[T, E], onFailure func(E) F) Result[T, F] {
	if e, failed := r.Err(); failed {
		return Failure[T, F](onFailure(e))
	}
	return Result[T, F]{
		value:     r.value,
		ok:        true,
		createdAt: r.createdAt,
		id:        r.id,
	}
}

// FlatMap applies onSuccess and returns its Result directly, without
// double-wrapping; a failure short-circuits, payload untouched. The
// failure type never changes across a FlatMap; convert it with MapError
// beforehand. This is the monadic bind for Result.
func FlatMap[In, Out, E any](r Result[In, E], onSuccess func(In) Result[Out, E]) Result[Out, E] {
	if v, ok := r.Get(); ok {
		return onSuccess(v)
	}
	return FailureFrom[In, Out](r)
}

// BiMap transforms both channels at once.
func BiMap[In, Out, E, F any](r Result[In, E], onSuccess func(In) Out, onFailure func(E) F) Result[Out, F] {
	if v, ok := r.Get(); ok {
		return Success[Out, F](onSuccess(v))
	}
	return Failure[Out, F](onFailure(r.err))
}

// Fold eliminates the Result: exactly one of the two handlers runs.
// It is the sanctioned way to extract a raw value from the container.
func Fold[T, E, Out any](r Result[T, E], onFailure func(E) Out, onSuccess func(T) Out) Out {
	if v, ok := r.Get(); ok {
		return onSuccess(v)
	}
	return onFailure(r.err)
}

// Validate fails a success whose value misses the predicate; failures and
// valid successes pass through untouched.
func Validate[T, E any](r Result[T, E], valid func(T) bool, onInvalid func(T) E) Result[T, E] {
	if v, ok := r.Get(); ok && !valid(v) {
		return Failure[T, E](onInvalid(v))
	}
	return r
}

// Zip2 pairs two Results; on failure the leftmost failure wins.
func Zip2[A, B, E any](ra Result[A, E], rb Result[B, E]) Result[adt.Pair[A, B], E] {
	return ZipWith(ra, rb, adt.PairOf[A, B])
}

// Zip3 combines three Results into a Triple; leftmost failure wins.
func Zip3[A, B, C, E any](ra Result[A, E], rb Result[B, E], rc Result[C, E]) Result[adt.Triple[A, B, C], E] {
	return ZipWith(Zip2(ra, rb), rc, func(p adt.Pair[A, B], c C) adt.Triple[A, B, C] {
		return adt.TripleOf(p.First, p.Second, c)
	})
}

// ZipWith combines two Results with merge; leftmost failure wins.
func ZipWith[A, B, Out, E any](ra Result[A, E], rb Result[B, E], merge func(A, B) Out) Result[Out, E] {
	av, aok := ra.Get()
	if !aok {
		return FailureFrom[A, Out](ra)
	}
	bv, bok := rb.Get()
	if !bok {
		return FailureFrom[B, Out](rb)
	}
	return Success[Out, E](merge(av, bv))
}

// Sequence collects the success values of all Results, short-circuiting
// on the first failure.
func Sequence[T, E any](rs []Result[T, E]) Result[[]T, E] {
	values := make([]T, 0, len(rs))
	for _, r := range rs {
		v, ok := r.Get()
		if !ok {
			return FailureFrom[T, []T](r)
		}
		values = append(values, v)
	}
	return Success[[]T, E](values)
}
