package option

// MustGet returns the wrapped value and panics when absent.
//
// This is an escape hatch for call sites that have already established
// presence out of band; everywhere else prefer Fold, Get or GetOrElse.
func (o Option[T]) MustGet() T {
	if !o.present {
		panic("option: MustGet on None")
	}
	return o.value
}
