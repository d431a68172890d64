package result

// MustGet returns the success value and panics on failure.
//
// This is an escape hatch for call sites that have already established
// success out of band; everywhere else prefer Fold, Get or GetOrElse.
func (r Result[T, E]) MustGet() T {
	if !r.ok {
		panic("result: MustGet on Failure")
	}
	return r.value
}

// MustErr returns the failure value and panics on success.
func (r Result[T, E]) MustErr() E {
	if r.ok {
		panic("result: MustErr on Success")
	}
	return r.err
}
