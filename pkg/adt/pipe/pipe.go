package pipe

import (
	"github.com/ib-77/adt/pkg/adt/result"
)

// P carries a result.Result through a fluent pipeline.
type P[T, E any] struct {
	res result.Result[T, E]
}

func Start[T, E any](r result.Result[T, E]) P[T, E] {
	return P[T, E]{res: r}
}

func FromValue[T, E any](v T) P[T, E] {
	return Start(result.Success[T, E](v))
}

func (p P[T, E]) Result() result.Result[T, E] {
	return p.res
}

// Then composes a step that already returns a Result; failures
// short-circuit past it.
func (p P[T, E]) Then(onSuccess func(T) result.Result[T, E]) P[T, E] {
	return P[T, E]{res: result.FlatMap(p.res, onSuccess)}
}

// Map transforms the success value in place.
func (p P[T, E]) Map(onSuccess func(T) T) P[T, E] {
	return P[T, E]{res: result.Map(p.res, onSuccess)}
}

// Validate fails the pipeline when the value misses the predicate.
func (p P[T, E]) Validate(valid func(T) bool, onInvalid func(T) E) P[T, E] {
	return P[T, E]{res: result.Validate(p.res, valid, onInvalid)}
}

// Ensure triggers side effects for the current outcome without changing it.
// Either handler may be nil.
func (p P[T, E]) Ensure(onSuccess func(T), onFailure func(E)) P[T, E] {
	if e, failed := p.res.Err(); failed {
		if onFailure != nil {
			onFailure(e)
		}
		return p
	}

	if onSuccess != nil {
		if v, ok := p.res.Get(); ok {
			onSuccess(v)
		}
	}
	return p
}

// Or keeps p when successful, otherwise the alternative.
func (p P[T, E]) Or(alt P[T, E]) P[T, E] {
	return P[T, E]{res: p.res.OrElse(alt.res)}
}

// And keeps the first failure of the two, otherwise the required pipeline.
func (p P[T, E]) And(required P[T, E]) P[T, E] {
	if p.res.IsFailure() {
		return p
	}
	return required
}

// Finally collapses the pipeline to a concrete value via handlers.
func (p P[T, E]) Finally(onFailure func(E) T, onSuccess func(T) T) T {
	return result.Fold(p.res, onFailure, onSuccess)
}

func (p P[T, E]) GetOrElse(def T) T {
	return p.res.GetOrElse(def)
}

// Then composes a step that switches the payload type.
func Then[T, U, E any](p P[T, E], onSuccess func(T) result.Result[U, E]) P[U, E] {
	return P[U, E]{res: result.FlatMap(p.res, onSuccess)}
}

// Map transforms the success value to a new payload type.
func Map[T, U, E any](p P[T, E], onSuccess func(T) U) P[U, E] {
	return P[U, E]{res: result.Map(p.res, onSuccess)}
}

// Finally collapses a pipeline to a value of another type.
func Finally[T, U, E any](p P[T, E], onFailure func(E) U, onSuccess func(T) U) U {
	return result.Fold(p.res, onFailure, onSuccess)
}
