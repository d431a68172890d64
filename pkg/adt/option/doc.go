// Package option provides Option[T], a two-variant container that models
// the possible absence of a value without resorting to nil or sentinel
// values.
//
// Highlights:
// - Some/None: construct an Option
// - FromOk/FromPtr: lift common Go comma-ok and pointer idioms
// - Map/FlatMap: transform or chain without unwrapping
// - Fold: total elimination, the sanctioned way to leave the container
// - Zip/ZipWith/Sequence: combine several Options, absent if any is absent
//
// Absence is a normal terminal value, not an error signal; no operation in
// this package can fail, and none of them panics. The only panicking
// accessor, MustGet, lives apart as an explicit escape hatch.
package option
