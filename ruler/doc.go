// Package ruler implements the geometry core of a horizontally scrollable
// value picker: a validated parameter set, the value<->pixel transform
// between a bounded numeric domain and its content track, and the snap
// resolver that lands gesture targets on exact tick boundaries.
//
// Design principles:
//   - Config is an immutable value; construct once, copy freely
//   - Every value entering the system passes through ClampAndRound,
//     so consumers only ever observe legal tick values
//   - Runtime inputs never error: out-of-range numbers are normalized,
//     invalid construction is a programmer error surfaced by NewConfig
package ruler
