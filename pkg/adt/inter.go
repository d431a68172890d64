package adt

// Container is the minimal read surface of a two-variant container.
type Container[T any] interface {
	// Get returns the wrapped value and whether it is usable
	Get() (T, bool)
}

// WithDefault extends Container with fallback-based extraction
type WithDefault[T any] interface {
	Container[T]
	// GetOrElse returns the wrapped value, or def when none is usable
	GetOrElse(def T) T
}

// Pair groups the payloads of two containers combined by a zip.
type Pair[A, B any] struct {
	First  A
	Second B
}

// PairOf builds a Pair from its two elements.
func PairOf[A, B any](first A, second B) Pair[A, B] {
	return Pair[A, B]{First: first, Second: second}
}

// Triple groups the payloads of three containers combined by a zip.
type Triple[A, B, C any] struct {
	First  A
	Second B
	Third  C
}

// TripleOf builds a Triple from its three elements.
func TripleOf[A, B, C any](first A, second B, third C) Triple[A, B, C] {
	return Triple[A, B, C]{First: first, Second: second, Third: third}
}

// GetOr reads any container, falling back to def when it holds no value.
func GetOr[T any](c Container[T], def T) T {
	if v, ok := c.Get(); ok {
		return v
	}
	return def
}

// Coalesce returns the first usable value among the given containers.
func Coalesce[T any](cs ...Container[T]) (T, bool) {
	for _, c := range cs {
		if v, ok := c.Get(); ok {
			return v, true
		}
	}
	var zero T
	return zero, false
}
