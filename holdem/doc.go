// Package holdem implements the core of a Texas Hold'em equity engine: card
// atoms, weighted range notation, a constant-time seven-card hand evaluator
// backed by two precomputed perfect-hash tables, a showdown builder, and an
// exhaustive enumerator over board completions and hole-card assignments.
//
// The package is single-threaded and allocation-light after construction:
// parallelism is obtained by sharding an Enumerator's outer iteration
// window across goroutines, not by concurrency primitives here. See the
// sibling equity package and the cmd/holdem-odds command for that.
//
// Two conventions intersect throughout this package and are documented once,
// here, rather than at every call site: Rank ordinals run 0 (Ace, strongest)
// through 12 (Deuce, weakest), while evaluator power indices run the other
// way — 0 is the strongest hand (royal flush) and 7461 is the weakest
// (7-high). Keep both straight: a low Rank ordinal is a strong card; a low
// power index is a strong hand.
package holdem
