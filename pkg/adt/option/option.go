package option

// Option holds either one value of type T or nothing. The zero value is
// None, so an Option can be embedded or declared without initialization.
// Instances are immutable; every transformation returns a new Option.
type Option[T any] struct {
	value   T
	present bool
}

func Some[T any](v T) Option[T] {
	return Option[T]{
		value:   v,
		present: true,
	}
}

func None[T any]() Option[T] {
	return Option[T]{}
}

// FromOk lifts Go's comma-ok idiom, e.g. a map lookup, into an Option.
func FromOk[T any](v T, ok bool) Option[T] {
	if !ok {
		return None[T]()
	}
	return Some(v)
}

// FromPtr treats a nil pointer as None and dereferences otherwise.
func FromPtr[T any](p *T) Option[T] {
	if p == nil {
		return None[T]()
	}
	return Some(*p)
}

func (o Option[T]) IsSome() bool {
	return o.present
}

func (o Option[T]) IsNone() bool {
	return !o.present
}

// Get returns the wrapped value and whether it is present.
func (o Option[T]) Get() (T, bool) {
	return o.value, o.present
}

// GetOrElse returns the wrapped value, or def when absent.
func (o Option[T]) GetOrElse(def T) T {
	if o.present {
		return o.value
	}
	return def
}

// GetOrZero returns the wrapped value, or the zero value of T when absent.
func (o Option[T]) GetOrZero() T {
	return o.value
}

// OrElse returns o when present, otherwise alt.
func (o Option[T]) OrElse(alt Option[T]) Option[T] {
	if o.present {
		return o
	}
	return alt
}

// Filter keeps the value only if pred holds; None passes through untouched.
func (o Option[T]) Filter(pred func(T) bool) Option[T] {
	if o.present && pred(o.value) {
		return o
	}
	return None[T]()
}

// Tee runs a side effect on the value when present and returns o unchanged.
func (o Option[T]) Tee(onSome func(T)) Option[T] {
	if o.present {
		onSome(o.value)
	}
	return o
}

// ToPtr returns a pointer to a copy of the value, or nil when absent.
func (o Option[T]) ToPtr() *T {
	if !o.present {
		return nil
	}
	v := o.value
	return &v
}
