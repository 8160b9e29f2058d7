// Package memo provides bounded memoization for pure functions.
//
// Memoize1 to Memoize3 wrap a pure function of the matching arity so that
// repeated calls with the same arguments return the cached result instead
// of recomputing. The cache is a generation-rotating table: when the active
// generation fills up, the older generation is dropped wholesale rather
// than evicting entry by entry.
//
// Arguments must be comparable, or implement fmt.Stringer; Stringer
// arguments are keyed by the 64-bit xxhash digest of their string form.
// Two distinct arguments whose strings collide under the digest would
// alias to the same cache slot.
//
// Memoization requires referential transparency, not mere determinism.
// Do not memoize functions that read time, I/O, or any other ambient
// state.
package memo
