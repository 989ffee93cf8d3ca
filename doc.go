// Package dsu implements a disjoint-set ("union-find") structure over a
// fixed, contiguous universe of integer-labeled elements [0, n), with
// near-constant amortized Union and Find.
//
// What
//
//   - Maintain a partition of [0, n) into disjoint groups.
//   - Union(a, b) merges two groups; reports whether a merge happened,
//     so callers get cycle detection for free (Kruskal-style loops).
//   - Find(i) resolves the canonical representative (root) of i's group,
//     compressing the traversed path so later lookups are O(1).
//   - SameGroup tests membership; GroupCount counts groups; MembersOf
//     and Groups enumerate the partition; Clone snapshots it.
//   - FindOnly / SameOnly are read-only twins that forgo compression for
//     callers that cannot tolerate mutation, at the cost of re-walking
//     chains on every call.
//
// Why
//
//   - Connectivity queries over a build-once universe: clustering, island
//     merging, equivalence closure, Kruskal's MST cycle test.
//   - The forest lives in two flat int slices (parent plus a per-root
//     merge weight), never in per-node objects: indices map directly to
//     array slots, storage is contiguous and cache-friendly, and the
//     structure hands out nothing but copied ints.
//
// Strategies
//
//	Union steers merges with one of two interchangeable heuristics,
//	chosen at construction:
//
//	  - ByRank (default) — attach the shorter tree under the taller,
//	    tracking a height upper bound per root.
//	  - BySize — attach the smaller group under the larger, tracking
//	    exact cardinalities per root.
//
//	Both bound tree height by O(log n); combined with path compression
//	every operation costs amortized O(α(n)), effectively constant. The
//	two strategies grow different internal tree shapes for the same
//	input sequence, but always the same partition. Ties are broken
//	deterministically: the first argument's root survives.
//
// Concurrency
//
//	A DisjointSet is single-owner and sequential. Find mutates shared
//	internal state (path compression) even though it is conceptually a
//	read, so a plain RWMutex read-lock is NOT enough for concurrent use:
//	wrap every operation, including the read-looking ones, in one
//	exclusive lock, or confine the structure to a single goroutine.
//	Operations never block, suspend, or perform I/O.
//
// Determinism
//
//	Identical operation sequences on identical constructions produce
//	identical partitions and identical canonical roots. Repeated Find(i)
//	with no intervening Union involving i's group always returns the
//	same root, even while compression rewires intermediate pointers.
//
// Complexity (n = universe size, α = inverse Ackermann)
//
//   - New: O(n)
//   - Union / Find / SameGroup: amortized O(α(n))
//   - FindOnly / SameOnly: O(log n) per call, no amortization
//   - GroupCount / Size: O(1)
//   - MembersOf / Groups / Clone: O(n) scans
//
// Usage
//
//	d, err := dsu.New(10)
//	if err != nil {
//	    // ErrInvalidSize (n < 0) or ErrUnknownStrategy
//	}
//
//	merged, _ := d.Union(0, 1) // true: two singletons became one group
//	same, _ := d.SameGroup(0, 1)
//	root, _ := d.Find(1)
//	k := d.GroupCount()
//
//	// Size-guided merging instead of rank-guided:
//	d2, err := dsu.New(10, dsu.WithStrategy(dsu.BySize))
//
// Errors
//
//   - ErrInvalidSize      if New is given a negative element count.
//   - ErrOutOfRange       if an index operation receives i outside [0, n).
//   - ErrUnknownStrategy  if WithStrategy is given an unrecognized value.
//
// All are sentinels matched with errors.Is; out-of-range indices are
// always surfaced, never clamped, because tolerating one would corrupt
// the forest arrays. No operation panics on user input.
//
// See docs/DSU.md for a walkthrough of the forest representation, the
// compression mechanics, and the rank/size trade-off.
package dsu
