// Package adt defines the capability surface shared by the option and
// result containers: small layered read interfaces plus the Pair tuple
// used by the zip combinators.
//
// The interfaces describe what can always be done to a container without
// knowing which variant it holds:
// - Container: comma-ok access to the wrapped value
// - WithDefault: extraction with a fallback value
//
// Transformations that change the payload type (Map, FlatMap, Fold) live
// as package-level generic functions in the option and result packages,
// since Go methods cannot introduce new type parameters. Both concrete
// types satisfy the interfaces here, so code that only needs to read a
// value with a default can accept either.
package adt
