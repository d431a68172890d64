// Package result provides Result[T, E], a two-variant container for
// operations that either succeed with a T or fail with a diagnostic E.
//
// Highlights:
// - Success/Failure: construct a Result
// - Map/MapError/FlatMap: transform either channel without unwrapping
// - Fold: total elimination, the sanctioned way to leave the container
// - Validate: turn a predicate miss into a failure
// - Zip2/Zip3/Sequence: combine several Results, first failure wins
// - ToOption/FromOption: move between the two containers
//
// The failure type E is fixed per instantiation; FlatMap never changes it.
// Converting the failure channel is MapError's job, done before chaining.
// A failure is a first-class value flowing through returns, never a panic:
// no combinator in this package uses panic or recover, and short-circuiting
// is plain branching on the variant tag.
//
// Every Result carries an id and a creation timestamp. Combinators that
// fire on the active variant build a fresh Result; short-circuit
// propagation keeps the original id, timestamp and failure payload
// untouched, so a failure can be traced back to where it was raised.
//
// Adapters for Go's (T, error) convention live in errs.go; the panicking
// accessors live apart in unsafe.go as explicit escape hatches.
package result
