package result

import (
	"time"

	"github.com/google/uuid"
)

// Result holds either one success value of type T or one failure value of
// type E, never both and never neither. The tag and payload are set at
// construction and are immutable; every transformation returns a new
// instance and leaves the receiver usable.
type Result[T, E any] struct {
	id        uuid.UUID
	createdAt time.Time
	value     T
	err       E
	ok        bool
}

func Success[T, E any](v T) Result[T, E] {
	return Result[T, E]{
		value:     v,
		ok:        true,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

func Failure[T, E any](err E) Result[T, E] {
	return Result[T, E]{
		err:       err,
		ok:        false,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

// FailureFrom carries a failure into a different success type, keeping
// the payload, id and timestamp of the original.
func FailureFrom[In, Out, E any](from Result[In, E]) Result[Out, E] {
	return Result[Out, E]{
		err:       from.err,
		ok:        false,
		createdAt: from.createdAt,
		id:        from.id,
	}
}

func (r Result[T, E]) IsSuccess() bool {
	return r.ok
}

func (r Result[T, E]) IsFailure() bool {
	return !r.ok
}

// Get returns the success value and whether the Result is a success.
func (r Result[T, E]) Get() (T, bool) {
	return r.value, r.ok
}

// Err returns the failure value and whether the Result is a failure.
func (r Result[T, E]) Err() (E, bool) {
	return r.err, !r.ok
}

// GetOrElse returns the success value, or def on failure.
func (r Result[T, E]) GetOrElse(def T) T {
	if r.ok {
		return r.value
	}
	return def
}

// OrElse returns r on success, otherwise alt.
func (r Result[T, E]) OrElse(alt Result[T, E]) Result[T, E] {
	if r.ok {
		return r
	}
	return alt
}

// Tee runs a side effect on the success value and returns r unchanged.
func (r Result[T, E]) Tee(onSuccess func(T)) Result[T, E] {
	if r.ok {
		onSuccess(r.value)
	}
	return r
}

// TeeError runs a side effect on the failure value and returns r unchanged.
func (r Result[T, E]) TeeError(onFailure func(E)) Result[T, E] {
	if !r.ok {
		onFailure(r.err)
	}
	return r
}

// Id identifies the construction site of this Result; short-circuit
// propagation preserves it.
func (r Result[T, E]) Id() uuid.UUID {
	return r.id
}

// CreatedAt is the construction time (UTC).
func (r Result[T, E]) CreatedAt() time.Time {
	return r.createdAt
}
