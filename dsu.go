package dsu

import "fmt"

// New creates a DisjointSet over the universe [0, n), each element
// starting as its own singleton group.
//
// Steps:
//  1. Reject n < 0 with ErrInvalidSize (n == 0 is a valid empty structure).
//  2. Gather options; reject unrecognized Strategy values with
//     ErrUnknownStrategy.
//  3. Allocate the parent and auxiliary slices: parent[i] = i for all i,
//     aux[i] = 0 under ByRank (height bound of a singleton) or 1 under
//     BySize (cardinality of a singleton).
//
// Error Conditions:
//   - ErrInvalidSize     : n < 0.
//   - ErrUnknownStrategy : WithStrategy supplied a value that is neither
//     ByRank nor BySize.
//
// Complexity: O(n) time and memory.
func New(n int, opts ...Option) (*DisjointSet, error) {
	// 1. Negative sizes are a caller contract violation, never clamped.
	if n < 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidSize, n)
	}

	// 2. Apply options over the defaults, then validate the result.
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	switch cfg.strategy {
	case ByRank, BySize:
		// ok
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownStrategy, cfg.strategy)
	}

	// 3. Allocate both arrays in one shot and initialize singletons.
	d := &DisjointSet{
		parent:   make([]int, n),
		aux:      make([]int, n),
		groups:   n,
		strategy: cfg.strategy,
	}
	for i := 0; i < n; i++ {
		d.parent[i] = i // every element is its own root
		if cfg.strategy == BySize {
			d.aux[i] = 1 // singleton cardinality; ranks stay zero
		}
	}

	return d, nil
}

// Size returns the fixed number of elements n the structure was built
// over. Complexity: O(1).
func (d *DisjointSet) Size() int {
	return len(d.parent)
}

// GroupCount returns the number of distinct groups currently present:
// n after construction, decremented by one on each merging Union.
// Complexity: O(1), no mutation.
func (d *DisjointSet) GroupCount() int {
	return d.groups
}

// Strategy returns the merge heuristic this instance was built with.
// Complexity: O(1).
func (d *DisjointSet) Strategy() Strategy {
	return d.strategy
}

// checkIndex guards the public index-taking operations. Out-of-range
// indices are always surfaced, never clamped: silently tolerating one
// would corrupt the forest by addressing outside the arrays' domain.
// Complexity: O(1).
func (d *DisjointSet) checkIndex(i int) error {
	if i < 0 || i >= len(d.parent) {
		return fmt.Errorf("%w: index %d, size %d", ErrOutOfRange, i, len(d.parent))
	}

	return nil
}

// Find returns the canonical root of i's group, compressing the traversed
// path as a side effect: after the walk reaches the root, every node on
// the path is repointed directly at it, so subsequent finds on any of
// those nodes are O(1). Compression changes parent pointers only — which
// group each node belongs to, the root label, the auxiliary slots, and
// the group count are all untouched.
//
// Error Conditions:
//   - ErrOutOfRange : i outside [0, Size()).
//
// Complexity: amortized O(α(n)) over any operation sequence; the single
// worst-case walk is bounded by the O(log n) tree height the merge
// heuristic maintains.
func (d *DisjointSet) Find(i int) (int, error) {
	if err := d.checkIndex(i); err != nil {
		return 0, err
	}

	return d.find(i), nil
}

// find is the internal, bounds-unchecked Find.
//
// Two passes: walk up to the root, then re-walk the same path repointing
// every visited node directly at the root. Iterative on purpose — no
// recursion, so deep trees cannot exhaust the stack.
func (d *DisjointSet) find(i int) int {
	// Pass 1: locate the root (the unique self-parenting ancestor).
	root := i
	for d.parent[root] != root {
		root = d.parent[root]
	}

	// Pass 2: path compression. Repoint each node on the walked path
	// straight at the root before stepping to its old parent.
	for i != root {
		i, d.parent[i] = d.parent[i], root
	}

	return root
}

// FindOnly returns the canonical root of i's group without mutating the
// structure: the read-only twin of Find. It forgoes path compression, so
// repeated calls re-walk the same chain; prefer Find wherever mutable
// access is possible.
//
// Error Conditions:
//   - ErrOutOfRange : i outside [0, Size()).
//
// Complexity: O(log n) worst case per call (tree height is bounded by the
// merge heuristic) with no amortized improvement across calls.
func (d *DisjointSet) FindOnly(i int) (int, error) {
	if err := d.checkIndex(i); err != nil {
		return 0, err
	}

	// Walk up without touching anything.
	for d.parent[i] != i {
		i = d.parent[i]
	}

	return i, nil
}

// Union merges the groups containing a and b.
//
// Steps:
//  1. Bounds-check both indices before any mutation.
//  2. Resolve both roots (compressing both paths).
//  3. If the roots coincide, the elements already share a group: no
//     structural change, the group count is untouched, and Union reports
//     false. The false return is the cycle-detection signal Kruskal-style
//     algorithms rely on.
//  4. Otherwise merge per the construction Strategy — the lighter root is
//     attached below the heavier one; ties keep a's root and, under
//     ByRank, grow its rank by one — then decrement the group count and
//     report true.
//
// Error Conditions:
//   - ErrOutOfRange : a or b outside [0, Size()).
//
// Complexity: amortized O(α(n)), dominated by the two internal finds.
func (d *DisjointSet) Union(a, b int) (bool, error) {
	// 1. Validate both endpoints up front so a bad b cannot leave behind
	//    a half-performed operation (a's path would otherwise compress).
	if err := d.checkIndex(a); err != nil {
		return false, err
	}
	if err := d.checkIndex(b); err != nil {
		return false, err
	}

	// 2. Canonicalize both endpoints.
	ra, rb := d.find(a), d.find(b)

	// 3. Idempotent: already one group.
	if ra == rb {
		return false, nil
	}

	// 4. Merge, steering by the strategy's auxiliary weights.
	switch d.strategy {
	case BySize:
		// Attach the smaller group under the larger; ra keeps ties.
		if d.aux[ra] < d.aux[rb] {
			ra, rb = rb, ra
		}
		d.parent[rb] = ra
		d.aux[ra] += d.aux[rb]
	default: // ByRank
		// Attach the shorter tree under the taller; ra keeps ties and
		// grows, since attaching an equal-height tree adds a level.
		if d.aux[ra] < d.aux[rb] {
			d.parent[ra] = rb
		} else {
			d.parent[rb] = ra
			if d.aux[ra] == d.aux[rb] {
				d.aux[ra]++
			}
		}
	}
	d.groups--

	return true, nil
}

// SameGroup reports whether a and b currently belong to the same group,
// compressing both lookup paths on the way.
//
// Error Conditions:
//   - ErrOutOfRange : a or b outside [0, Size()).
//
// Complexity: amortized O(α(n)).
func (d *DisjointSet) SameGroup(a, b int) (bool, error) {
	if err := d.checkIndex(a); err != nil {
		return false, err
	}
	if err := d.checkIndex(b); err != nil {
		return false, err
	}

	return d.find(a) == d.find(b), nil
}

// SameOnly reports whether a and b currently belong to the same group
// without mutating the structure: the read-only twin of SameGroup, built
// on FindOnly. Prefer SameGroup wherever mutable access is possible.
//
// Error Conditions:
//   - ErrOutOfRange : a or b outside [0, Size()).
//
// Complexity: O(log n) per call, no amortized improvement.
func (d *DisjointSet) SameOnly(a, b int) (bool, error) {
	ra, err := d.FindOnly(a)
	if err != nil {
		return false, err
	}
	rb, err := d.FindOnly(b)
	if err != nil {
		return false, err
	}

	return ra == rb, nil
}
