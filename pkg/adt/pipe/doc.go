// Package pipe provides small fluent wrappers for synchronous composition
// of Result and Option values.
//
// It keeps the API surface very small:
// - Start/FromValue: begin a Result pipeline P
// - StartOpt/FromSome: begin an Option pipeline O
// - Then/Map/Validate/Filter: compose steps over the same payload type
// - Ensure: trigger side effects without changing the outcome
// - Or/And: merge two pipelines
// - Finally/GetOrElse: collapse to a concrete value via handlers
//
// Steps that change the payload type are package-level functions (Then,
// Map, ThenOpt, MapOpt), since Go methods cannot introduce type
// parameters. Pipelines are values; reusing one after a step is safe and
// observes the original outcome.
package pipe
