package pipe

import (
	"github.com/ib-77/adt/pkg/adt/option"
)

// O carries an option.Option through a fluent pipeline.
type O[T any] struct {
	opt option.Option[T]
}

func StartOpt[T any](o option.Option[T]) O[T] {
	return O[T]{opt: o}
}

func FromSome[T any](v T) O[T] {
	return StartOpt(option.Some(v))
}

func (o O[T]) Option() option.Option[T] {
	return o.opt
}

// Then composes a step that already returns an Option; absence
// short-circuits past it.
func (o O[T]) Then(onSome func(T) option.Option[T]) O[T] {
	return O[T]{opt: option.FlatMap(o.opt, onSome)}
}

// Map transforms the present value in place.
func (o O[T]) Map(onSome func(T) T) O[T] {
	return O[T]{opt: option.Map(o.opt, onSome)}
}

// Filter drops the value when it misses the predicate.
func (o O[T]) Filter(pred func(T) bool) O[T] {
	return O[T]{opt: o.opt.Filter(pred)}
}

// Ensure triggers side effects for the current outcome without changing it.
// Either handler may be nil.
func (o O[T]) Ensure(onSome func(T), onNone func()) O[T] {
	if v, ok := o.opt.Get(); ok {
		if onSome != nil {
			onSome(v)
		}
	} else if onNone != nil {
		onNone()
	}
	return o
}

// Or keeps o when present, otherwise the alternative.
func (o O[T]) Or(alt O[T]) O[T] {
	return O[T]{opt: o.opt.OrElse(alt.opt)}
}

// Finally collapses the pipeline to a concrete value via handlers.
func (o O[T]) Finally(onNone func() T, onSome func(T) T) T {
	return option.Fold(o.opt, onNone, onSome)
}

func (o O[T]) GetOrElse(def T) T {
	return o.opt.GetOrElse(def)
}

// ThenOpt composes a step that switches the payload type.
func ThenOpt[T, U any](o O[T], onSome func(T) option.Option[U]) O[U] {
	return O[U]{opt: option.FlatMap(o.opt, onSome)}
}

// MapOpt transforms the present value to a new payload type.
func MapOpt[T, U any](o O[T], onSome func(T) U) O[U] {
	return O[U]{opt: option.Map(o.opt, onSome)}
}
