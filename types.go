// Package dsu defines the core DisjointSet type, its merge strategies,
// construction options, and sentinel errors.
package dsu

import "errors"

// Sentinel errors for dsu operations. Callers and tests match them with
// errors.Is; no operation panics on user input.
var (
	// ErrInvalidSize indicates construction with a negative element count.
	ErrInvalidSize = errors.New("dsu: negative element count")

	// ErrOutOfRange indicates an element index outside [0, Size()).
	ErrOutOfRange = errors.New("dsu: index out of range")

	// ErrUnknownStrategy indicates a Strategy value other than ByRank or BySize.
	ErrUnknownStrategy = errors.New("dsu: unknown union strategy")
)

// Strategy selects the heuristic Union uses to pick which root survives a
// merge. Both variants bound tree height by O(log n); combined with the
// path compression performed by Find they yield amortized O(α(n)) per
// operation, where α is the inverse Ackermann function. The two produce
// different (equally valid) internal tree shapes for the same input
// sequence, but always the same partition.
type Strategy int

const (
	// ByRank attaches the root with strictly smaller rank under the root
	// with larger rank; on ties the first argument's root survives and its
	// rank grows by one. Rank is an upper bound on subtree height.
	ByRank Strategy = iota

	// BySize attaches the smaller group under the larger; on ties the
	// first argument's root survives. The auxiliary slot of a root holds
	// the exact cardinality of its group.
	BySize
)

// DefaultStrategy is the heuristic used when no WithStrategy option is
// supplied to New.
const DefaultStrategy = ByRank

// DisjointSet maintains a partition of the fixed universe [0, n) into
// disjoint groups, supporting near-constant amortized union and find.
//
// Internally it is a forest encoded in two parallel int slices — no
// per-node objects, so storage is contiguous and cache-friendly:
//
//	parent[i] — index of i's parent; a root satisfies parent[i] == i.
//	aux[i]    — merge guidance, meaningful only while i is a root:
//	            a rank upper bound under ByRank, the group size under
//	            BySize. Never consulted for correctness, only to steer
//	            merge direction.
//
// A DisjointSet is single-owner: Find mutates parent (path compression)
// even though it is conceptually a read, so concurrent use requires an
// external exclusive lock around every operation, including the
// read-looking ones. See the package documentation for the full model.
type DisjointSet struct {
	parent   []int
	aux      []int
	groups   int
	strategy Strategy
}

// config collects construction-time settings gathered from Options.
type config struct {
	strategy Strategy
}

// defaultConfig returns the settings New starts from.
// Complexity: O(1).
func defaultConfig() config {
	return config{strategy: DefaultStrategy}
}

// Option configures a DisjointSet at construction. Options are applied in
// order; the last write wins.
type Option func(*config)

// WithStrategy selects the merge heuristic for Union. Passing a value
// other than ByRank or BySize surfaces as ErrUnknownStrategy from New.
func WithStrategy(s Strategy) Option {
	return func(c *config) { c.strategy = s }
}
